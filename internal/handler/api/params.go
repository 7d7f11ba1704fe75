package api

import (
	"net/http"
	"strconv"

	"carconnect/internal/domain/auth"
	"carconnect/internal/handler/httperr"
	"carconnect/internal/handler/middleware"
	"carconnect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidID        = errs.New("id must be a positive integer")
	errMissingPrincipal = errs.New("principal missing from context")
)

// pathID parses a positive int64 path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingPrincipal, "Unauthorized", nil)
		return auth.Principal{}, false
	}
	return p, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

func respond[T any](c *gin.Context, status int, body T, mapErr error) {
	if mapErr != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, mapErr, "Internal server error", nil)
		return
	}
	c.JSON(status, body)
}
