package api

import (
	"context"
	"net/http"

	reqdto "carconnect/internal/handler/dto/request"
	resdto "carconnect/internal/handler/dto/response"
	"carconnect/internal/handler/httperr"
	"carconnect/internal/pkg/config"
	"carconnect/internal/pkg/cookie"
	"carconnect/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Customer login
// @Description Login with username and password as a customer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/customers/login [post]
func (h *AuthHandler) LoginCustomer(c *gin.Context) {
	h.login(c, h.cmds.LoginCustomer)
}

// @Summary Admin login
// @Description Login with username and password as an admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/admins/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	h.login(c, h.cmds.LoginAdmin)
}

type loginFunc func(ctx context.Context, req reqdto.LoginRequest) (*commands.LoginResult, error)

func (h *AuthHandler) login(c *gin.Context, login loginFunc) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := login(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		AccountID:   result.Principal.ID,
		Username:    result.Principal.Username,
		Role:        result.Principal.Role.String(),
	})
}

// @Summary Logout
// @Description Clear the access token cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
