//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"carconnect/internal/handler/dto/request"
	"carconnect/tests/common/dbtest"
	"carconnect/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginCustomer(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	return login(t, router, "/api/auth/customers/login", username, password)
}

func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	return login(t, router, "/api/auth/admins/login", username, password)
}

func login(t *testing.T, router *gin.Engine, path, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, path,
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLoginCustomer returns the new customer's id and an access token.
func CreateAndLoginCustomer(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestCustomer(t, db, username)
	return id, LoginCustomer(t, router, username, dbtest.DefaultPassword)
}

func CreateAndLoginAdmin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestAdmin(t, db, username)
	return id, LoginAdmin(t, router, username, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
