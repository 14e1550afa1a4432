package components

import (
	"beautyspace/internal/pkg/clock"
	"beautyspace/internal/usecase"
	"beautyspace/internal/usecase/commands"
	"beautyspace/internal/usecase/queries"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewBookingUseCase,
		commands.NewReviewUseCase,
		commands.NewWalletUseCase,
		commands.NewAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWorkspaceQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewWalletQueries,
		queries.NewUserQueries,
		queries.NewAdminQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
