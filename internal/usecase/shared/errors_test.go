//go:build unit

package shared_test

import (
	"errors"
	"testing"

	"carconnect/internal/infra"
	"carconnect/internal/pkg/errs"
	"carconnect/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages_Translate(t *testing.T) {
	msgs := shared.ErrorMessages{
		NotFound:  "vehicle not found",
		Conflict:  "a vehicle with this registration number already exists",
		Integrity: "vehicle is referenced by reservations",
	}

	cases := []struct {
		name    string
		kind    infra.RepositoryErrorKind
		mark    error
		message string
	}{
		{name: "not found", kind: infra.KindNotFound, mark: errs.ErrNotFound, message: "vehicle not found"},
		{name: "duplicate", kind: infra.KindDuplicateKey, mark: errs.ErrConflict, message: "a vehicle with this registration number already exists"},
		{name: "foreign key", kind: infra.KindForeignKeyViolated, mark: errs.ErrReferentialIntegrity, message: "vehicle is referenced by reservations"},
		{name: "connectivity", kind: infra.KindConnectivity, mark: errs.ErrDatabaseConnectivity, message: "database is unreachable"},
		{name: "anything else", kind: infra.KindDBFailure, mark: errs.ErrGenericPersistence, message: "persistence failure"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repoErr := infra.WrapRepoErr("low level detail", errors.New("driver says no"), c.kind)

			got := msgs.Translate(repoErr)
			assert.True(t, errs.Is(got, c.mark))
			assert.Equal(t, c.message, got.Error())
		})
	}

	t.Run("empty messages fall back to generic text", func(t *testing.T) {
		repoErr := infra.WrapRepoErr("x", nil, infra.KindNotFound)
		assert.Equal(t, "record not found", shared.ErrorMessages{}.Translate(repoErr).Error())
	})

	t.Run("non repository errors pass through", func(t *testing.T) {
		plain := errors.New("plain")
		assert.Same(t, plain, msgs.Translate(plain))
	})
}

func TestValidation(t *testing.T) {
	assert.Nil(t, shared.Validation(nil))

	err := shared.Validation(errors.New("make cannot be empty"))
	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.Equal(t, "make cannot be empty", err.Error())
}
