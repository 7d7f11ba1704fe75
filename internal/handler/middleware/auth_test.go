//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"carconnect/internal/domain/auth"
	"carconnect/internal/handler/middleware"
	"carconnect/internal/pkg/cookie"
	"carconnect/internal/pkg/jwt"
	"carconnect/tests/common/httptest"
	usecasemock "carconnect/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.mockValidator)

	whoami := func(c *gin.Context) {
		p, ok := middleware.GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "username": p.Username, "role": p.Role})
	}

	s.router.GET("/private", m.RequireAuth(), whoami)
	s.router.GET("/admin", m.RequireAuth(), m.RequireAdmin(), whoami)
	s.router.GET("/misconfigured", m.RequireAdmin(), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	customer := auth.Principal{ID: 3, Username: "jdoe", Role: auth.RoleCustomer}

	s.Run("success: bearer header", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(customer, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "good-token")

		var body struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(3), body.ID)
		s.Equal("customer", body.Role)
	})

	s.Run("success: cookie wins over header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(customer, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/private", nil, cookies, "header-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: no token at all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: expired token", func() {
		s.mockValidator.EXPECT().ValidateToken("old-token").Return(auth.Principal{}, jwt.ErrExpiredToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/private", nil, "old-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	testCases := []struct {
		name       string
		principal  auth.Principal
		expectCode int
		expectMsg  string
	}{
		{name: "admin passes", principal: auth.Principal{ID: 1, Username: "root", Role: auth.RoleAdmin}, expectCode: http.StatusOK},
		{name: "customer is forbidden", principal: auth.Principal{ID: 1, Username: "jdoe", Role: auth.RoleCustomer}, expectCode: http.StatusForbidden, expectMsg: "Insufficient permissions"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockValidator.EXPECT().ValidateToken("token").Return(tc.principal, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "token")
			if tc.expectCode == http.StatusOK {
				s.Equal(http.StatusOK, rec.Code)
				return
			}
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: used without RequireAuth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/misconfigured", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
