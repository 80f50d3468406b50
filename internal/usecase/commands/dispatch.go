package commands

import (
	"context"
	"log/slog"

	"controlpay/internal/domain/entitlement"
	"controlpay/internal/domain/payment"
	"controlpay/internal/infra"
	"controlpay/internal/pkg/clock"
	"controlpay/internal/pkg/config"
	"controlpay/internal/pkg/errs"
	"controlpay/internal/pkg/metrics"

	"github.com/google/uuid"
)

type DispatchCommands interface {
	CompletionHandler
	CheckServiceAccess(ctx context.Context, serviceID uuid.UUID) (*entitlement.Entitlement, bool, error)
	SweepExpiredEntitlements(ctx context.Context) (int64, error)
}

type dispatchCommandsImpl struct {
	entitlementRepo EntitlementRepository
	cfg             config.Config
	clock           clock.Clock
}

func NewDispatchCommands(entitlementRepo EntitlementRepository, cfg config.Config, clock clock.Clock) DispatchCommands {
	return &dispatchCommandsImpl{
		entitlementRepo: entitlementRepo,
		cfg:             cfg,
		clock:           clock,
	}
}

// OnPaymentCompleted activates every pending entitlement attached to the
// payment. Activation is a conditional pending-to-active write, so a
// redelivered completion finds nothing pending and does nothing. One
// entitlement failing does not block its siblings.
func (d *dispatchCommandsImpl) OnPaymentCompleted(ctx context.Context, p *payment.Payment) error {
	pending, err := d.entitlementRepo.FindPendingByPayment(ctx, p.ID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := d.clock.Now()
	expiresAt := now.Add(d.cfg.Delivery.ServiceDuration)

	var failures int
	for _, ent := range pending {
		token := uuid.NewString()
		if ent.AccessToken() != nil {
			token = *ent.AccessToken()
		}

		activated, err := d.entitlementRepo.Activate(ctx, ent.ID(), token, now, &expiresAt)
		if err != nil {
			failures++
			slog.Error("service activation failed",
				"entitlement_id", ent.ID(), "order_id", p.OrderID(), "error", err.Error())
			if markErr := d.entitlementRepo.MarkDeliveryFailed(ctx, ent.ID(), err.Error()); markErr != nil {
				slog.Error("failed to record delivery failure",
					"entitlement_id", ent.ID(), "error", markErr.Error())
			}
			continue
		}
		if !activated {
			// Lost the race to another delivery attempt; already active.
			continue
		}
		metrics.ServicesActivated.Inc()
	}

	if failures > 0 {
		return errs.New("one or more service activations failed")
	}
	return nil
}

// CheckServiceAccess evaluates accessibility fresh on every call; nothing is
// cached, expiry takes effect on the next check. A granted check bumps the
// access counter.
func (d *dispatchCommandsImpl) CheckServiceAccess(ctx context.Context, serviceID uuid.UUID) (*entitlement.Entitlement, bool, error) {
	ent, err := d.entitlementRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, false, ErrEntitlementNotFound
		}
		return nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !ent.IsAccessibleAt(d.clock.Now()) {
		return ent, false, nil
	}

	if err := d.entitlementRepo.IncrementAccessCount(ctx, ent.ID()); err != nil {
		slog.Warn("failed to bump access counter",
			"entitlement_id", ent.ID(), "error", err.Error())
	}

	return ent, true, nil
}

func (d *dispatchCommandsImpl) SweepExpiredEntitlements(ctx context.Context) (int64, error) {
	swept, err := d.entitlementRepo.SweepExpired(ctx, d.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return swept, nil
}
