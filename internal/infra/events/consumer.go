package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"controlpay/internal/pkg/config"
	"controlpay/internal/usecase/commands"
)

// Consumer feeds provider notifications from the event topic into the same
// reconciliation path as the webhook. Delivery is at-least-once; the ledger's
// no-op rules absorb duplicates, so messages are committed unconditionally.
type Consumer struct {
	reader    *kafka.Reader
	reconcile commands.ReconciliationCommands
}

func NewConsumer(cfg config.Config, reconcile commands.ReconciliationCommands) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Events.Brokers,
		Topic:    cfg.Events.Topic,
		GroupID:  cfg.Events.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	return &Consumer{
		reader:    reader,
		reconcile: reconcile,
	}
}

// Run blocks until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	slog.Info("payment event consumer started",
		"topic", c.reader.Config().Topic, "group", c.reader.Config().GroupID)

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			slog.Error("failed to read payment event", "error", err.Error())
			return
		}

		var event commands.ExternalEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			slog.Warn("discarding malformed payment event",
				"offset", msg.Offset, "error", err.Error())
			continue
		}

		if _, err := c.reconcile.SubmitExternalEvent(ctx, event); err != nil {
			// An unknown order stays on the log for the operator; retrying
			// here cannot resolve it.
			slog.Error("failed to reconcile payment event",
				"order_id", event.OrderID, "provider", event.Provider, "error", err.Error())
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
