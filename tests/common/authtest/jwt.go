//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"carconnect/internal/domain/auth"
	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/config"
	"carconnect/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, p auth.Principal) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.cfg.Issuer, clock.NewRealClock())
	token, err := service.GenerateToken(p)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock set far enough back that the token is already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, p auth.Principal) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Duration, h.cfg.Issuer, past)
	token, err := service.GenerateToken(p)
	require.NoError(t, err)
	return token
}

func CustomerPrincipal(id int64, username string) auth.Principal {
	return auth.Principal{ID: id, Username: username, Role: auth.RoleCustomer}
}

func AdminPrincipal(id int64, username string) auth.Principal {
	return auth.Principal{ID: id, Username: username, Role: auth.RoleAdmin}
}
