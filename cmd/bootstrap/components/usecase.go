package components

import (
	"controlpay/internal/pkg/clock"
	"controlpay/internal/usecase"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewControlNumberCommands,
		commands.NewPaymentCommands,
		commands.NewReconciliationCommands,
		fx.Annotate(
			commands.NewDispatchCommands,
			fx.As(new(commands.DispatchCommands)),
			fx.As(new(commands.CompletionHandler)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewControlNumberQueries,
		queries.NewPaymentQueries,
		queries.NewEntitlementQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
