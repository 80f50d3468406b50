package worker

import (
	"context"
	"log/slog"
	"time"

	"controlpay/internal/usecase/commands"
)

// Sweeper periodically flips expired control numbers and entitlements to
// their expired status. Every sweep is an idempotent conditional update, so
// overlapping runs and restarts are harmless.
type Sweeper struct {
	controlNumbers commands.ControlNumberCommands
	dispatch       commands.DispatchCommands
	interval       time.Duration
}

func NewSweeper(controlNumbers commands.ControlNumberCommands, dispatch commands.DispatchCommands, interval time.Duration) *Sweeper {
	return &Sweeper{
		controlNumbers: controlNumbers,
		dispatch:       dispatch,
		interval:       interval,
	}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

func (s *Sweeper) SweepOnce(ctx context.Context) {
	codes, err := s.controlNumbers.SweepExpired(ctx)
	if err != nil {
		slog.Error("control number sweep failed", "error", err.Error())
	} else if codes > 0 {
		slog.Info("expired control numbers swept", "count", codes)
	}

	entitlements, err := s.dispatch.SweepExpiredEntitlements(ctx)
	if err != nil {
		slog.Error("entitlement sweep failed", "error", err.Error())
	} else if entitlements > 0 {
		slog.Info("expired entitlements swept", "count", entitlements)
	}
}
