package components

import (
	"tablebook/internal/infra/notify"
	"tablebook/internal/infra/readstore"
	"tablebook/internal/infra/repository"
	"tablebook/internal/infra/uow"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableReadStore)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
		),
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(queries.StaffReadStore)),
		),
		fx.Annotate(
			readstore.NewBlobReadStore,
			fx.As(new(queries.BlobReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork owns the per-transaction repositories
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewBlobStore,
			fx.As(new(commands.BlobStore)),
		),
		fx.Annotate(
			notify.NewRedisPublisher,
			fx.As(new(commands.InvalidationPublisher)),
			fx.As(new(queries.InvalidationSource)),
		),
	),
)
