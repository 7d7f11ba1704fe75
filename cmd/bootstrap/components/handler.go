package components

import (
	"carconnect/internal/handler"
	"carconnect/internal/handler/api"
	"carconnect/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCustomerHandler,
		api.NewAdminHandler,
		api.NewVehicleHandler,
		api.NewReservationHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
