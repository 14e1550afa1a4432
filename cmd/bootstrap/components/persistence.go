package components

import (
	"beautyspace/internal/infra/cache"
	"beautyspace/internal/infra/db"
	"beautyspace/internal/infra/readstore"
	"beautyspace/internal/infra/uow"
	"beautyspace/internal/usecase/commands"
	"beautyspace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	// UnitOfWork
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Workspace
		fx.Annotate(
			readstore.NewWorkspaceReadStore,
			fx.As(new(queries.WorkspaceViewRepo)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		// Review
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewViewRepo)),
		),
		// Wallet
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.WalletViewRepo)),
		),
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
		// Admin
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminViewRepo)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			cache.NewOccupiedSlotsCache,
			fx.As(new(queries.OccupiedSlotsCache)),
			fx.As(new(commands.SlotCacheInvalidator)),
		),
		fx.Annotate(
			cache.NewTopUpCodeStore,
			fx.As(new(commands.TopUpCodeStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
