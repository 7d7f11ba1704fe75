package httperr

import (
	"log/slog"
	"net/http"

	"carconnect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

var statusByKind = []struct {
	kind   error
	status int
}{
	{errs.ErrValidation, http.StatusBadRequest},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrInvalidTransition, http.StatusConflict},
	{errs.ErrReferentialIntegrity, http.StatusUnprocessableEntity},
	{errs.ErrCorruptedState, http.StatusUnprocessableEntity},
	{errs.ErrDatabaseConnectivity, http.StatusServiceUnavailable},
}

// StatusOf returns the HTTP status for an error kind, 500 when unmarked.
func StatusOf(err error) int {
	for _, m := range statusByKind {
		if errs.Is(err, m.kind) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// AbortWithUsecaseError maps a marked usecase error to its status. Messages of
// unmarked errors stay in the logs.
func AbortWithUsecaseError(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !errs.Is(err, errs.ErrGenericPersistence) {
		slog.Error("unhandled usecase error",
			"path", c.FullPath(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, nil)
}
