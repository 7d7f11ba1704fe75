package response

import (
	"github.com/jinzhu/copier"
)

// mapAll copies each source view into a fresh T by matching field names.
func mapAll[S any, T any](src []*S) ([]T, error) {
	out := make([]T, 0, len(src))
	for _, s := range src {
		var t T
		if err := copier.Copy(&t, s); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func mapOne[S any, T any](src *S) (*T, error) {
	var t T
	if err := copier.Copy(&t, src); err != nil {
		return nil, err
	}
	return &t, nil
}

type IDResponse struct {
	ID int64 `json:"id"`
}
