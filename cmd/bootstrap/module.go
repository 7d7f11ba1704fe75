package bootstrap

import (
	"carconnect/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
	JWTModule,
	SchedulerModule,
	components.HandlerModule,
)
