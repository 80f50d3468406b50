package bootstrap

import (
	"context"

	"controlpay/internal/infra/events"
	"controlpay/internal/pkg/config"
	"controlpay/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Invoke(StartConsumer),
)

func StartConsumer(lc fx.Lifecycle, cfg config.Config, reconcile commands.ReconciliationCommands) {
	if !cfg.Events.Enabled {
		return
	}

	consumer := events.NewConsumer(cfg, reconcile)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go consumer.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return consumer.Close()
		},
	})
}
