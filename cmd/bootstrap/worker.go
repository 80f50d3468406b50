package bootstrap

import (
	"context"

	"controlpay/internal/pkg/config"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartSweeper),
)

func StartSweeper(lc fx.Lifecycle, cfg config.Config, controlNumbers commands.ControlNumberCommands, dispatch commands.DispatchCommands) {
	sweeper := worker.NewSweeper(controlNumbers, dispatch, cfg.Sweeper.Interval)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
