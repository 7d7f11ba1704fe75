package components

import (
	"carconnect/internal/domain/reservation"
	"carconnect/internal/pkg/clock"
	"carconnect/internal/usecase"
	"carconnect/internal/usecase/commands"
	"carconnect/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewDailyRateCostCalculator,
		fx.As(new(reservation.CostCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewVehicleCommands,
		commands.NewCustomerCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewVehicleQueries,
		queries.NewCustomerQueries,
		queries.NewAdminQueries,
		queries.NewCostQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
