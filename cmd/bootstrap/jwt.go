package bootstrap

import (
	"carconnect/internal/pkg/clock"
	"carconnect/internal/pkg/config"
	"carconnect/internal/pkg/jwt"
	"carconnect/internal/pkg/password"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewPasswordHasher,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.JWT.Duration <= 0 {
		panic("invalid JWT_DURATION: must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, cfg.JWT.Issuer, clk)
}

func NewPasswordHasher(cfg config.Config) *password.Hasher {
	return password.NewHasher(cfg.Password.BcryptCost)
}
