package components

import (
	"context"
	"errors"
	"log/slog"

	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/flow"
	"tablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseFlowModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFreeTableCache,
		queries.NewAvailabilityQueries,
		queries.NewPromotionQueries,
		queries.NewTrackingQueries,
		queries.NewReservationQueries,
	),
	fx.Invoke(runInvalidationListener),
)

// runInvalidationListener keeps the free-table cache honest for the process
// lifetime: each published service date drops the listings it could affect.
func runInvalidationListener(lc fx.Lifecycle, src queries.InvalidationSource, cache *queries.FreeTableCache) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := src.Subscribe(ctx, cache.InvalidateDate); err != nil && !errors.Is(err, context.Canceled) {
					slog.Warn("invalidation subscription ended", "error", err.Error())
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewWorkflowCommands,
	),
)

var usecaseFlowModule = fx.Module("usecase/flow",
	fx.Provide(
		flow.NewStore,
	),
)
