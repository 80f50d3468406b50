package components

import (
	"controlpay/internal/infra/db"
	"controlpay/internal/infra/provider"
	"controlpay/internal/infra/readstore"
	repo_impl "controlpay/internal/infra/repository"
	"controlpay/internal/infra/uow"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Write side
		fx.Annotate(
			repo_impl.NewControlNumberRepository,
			fx.As(new(commands.ControlNumberRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repo_impl.NewEntitlementRepository,
			fx.As(new(commands.EntitlementRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewControlNumberReadStore,
			fx.As(new(queries.ControlNumberReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewEntitlementReadStore,
			fx.As(new(queries.EntitlementReadStore)),
		),
		// Provider boundary
		fx.Annotate(
			provider.NewHTTPAdapter,
			fx.As(new(commands.ProviderAdapter)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
