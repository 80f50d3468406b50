package commands

import (
	"context"
	"errors"
	"log/slog"

	"controlpay/internal/domain/entitlement"
	"controlpay/internal/domain/money"
	"controlpay/internal/domain/payment"
	"controlpay/internal/infra"
	"controlpay/internal/infra/db"
	"controlpay/internal/pkg/clock"
	"controlpay/internal/pkg/config"
	"controlpay/internal/pkg/errs"

	"github.com/google/uuid"
)

// InitiateOrder is one payment attempt plus the services it buys.
type InitiateOrder struct {
	OrderID     string
	LegacyRef   *string
	AmountMinor int64
	ControlCode *string
	Payer       PayerInfo
	Services    []string
}

type PaymentCommands interface {
	InitiatePayment(ctx context.Context, order InitiateOrder) (*payment.Payment, error)
	ApplyStatus(ctx context.Context, orderID string, next payment.Status, message string, source payment.Source) (*payment.Payment, error)
	FindByOrder(ctx context.Context, orderID string) (*payment.Payment, error)
}

type paymentCommandsImpl struct {
	paymentRepo     PaymentRepository
	entitlementRepo EntitlementRepository
	provider        ProviderAdapter
	completion      CompletionHandler
	uow             UnitOfWork
	cfg             config.Config
	clock           clock.Clock
}

func NewPaymentCommands(
	paymentRepo PaymentRepository,
	entitlementRepo EntitlementRepository,
	provider ProviderAdapter,
	completion CompletionHandler,
	uow UnitOfWork,
	cfg config.Config,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		paymentRepo:     paymentRepo,
		entitlementRepo: entitlementRepo,
		provider:        provider,
		completion:      completion,
		uow:             uow,
		cfg:             cfg,
		clock:           clock,
	}
}

func (p *paymentCommandsImpl) InitiatePayment(ctx context.Context, order InitiateOrder) (*payment.Payment, error) {
	amount, err := money.New(order.AmountMinor, p.cfg.ControlNumber.DefaultCurrency)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmount)
	}

	pay, err := payment.NewPayment(order.OrderID, amount, order.LegacyRef, order.ControlCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := p.persistNewPayment(ctx, pay, order.Services); err != nil {
		return nil, err
	}

	// Provider initiation happens outside the transaction; nothing exclusive
	// is held across the wait. Non-response leaves the payment pending with
	// the outcome unknown; only a provider-reported rejection fails it.
	result, err := p.provider.InitiatePayment(ctx, pay.OrderID(), amount, order.Payer)
	switch {
	case err == nil:
		if err := p.paymentRepo.SetExternalRef(ctx, pay.ID(), result.ExternalRef); err != nil {
			slog.Error("failed to record external reference",
				"order_id", pay.OrderID(), "error", err.Error())
		}
	case errors.Is(err, ErrProviderRejected):
		return p.ApplyStatus(ctx, pay.OrderID(), payment.StatusFailed,
			"provider rejected initiation", payment.SourceProvider)
	default:
		slog.Warn("provider unresponsive during initiation, outcome unknown",
			"order_id", pay.OrderID(), "error", err.Error())
		p.recordInformational(ctx, pay.ID(), payment.StatusPending,
			"provider unresponsive, outcome unknown", payment.SourceProvider)
	}

	return p.paymentRepo.FindByOrder(ctx, pay.OrderID())
}

func (p *paymentCommandsImpl) persistNewPayment(ctx context.Context, pay *payment.Payment, services []string) error {
	err := p.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := p.paymentRepo.Create(ctx, tx, pay); err != nil {
			return err
		}

		entry := payment.HistoryEntry{
			ID:        uuid.New(),
			PaymentID: pay.ID(),
			Status:    payment.StatusPending,
			Message:   "payment created",
			Source:    payment.SourceCreated,
			At:        p.clock.Now(),
		}
		if err := p.paymentRepo.AppendHistory(ctx, tx, entry); err != nil {
			return err
		}

		for _, name := range services {
			ent, err := entitlement.NewEntitlement(pay.ID(), name)
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			if err := p.entitlementRepo.Create(ctx, tx, ent); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrDuplicateOrder
		}
		if errors.Is(err, ErrValidation) {
			return err
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

// ApplyStatus folds one status report into the ledger. Duplicates and
// out-of-order reports degrade to informational history entries; the
// completion event fires only when the guarded write itself moved the
// payment into completed.
func (p *paymentCommandsImpl) ApplyStatus(
	ctx context.Context,
	orderID string,
	next payment.Status,
	message string,
	source payment.Source,
) (*payment.Payment, error) {
	if !next.IsValid() {
		return nil, ErrValidation
	}

	pay, err := p.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Same status again: idempotent no-op, nothing recorded.
	if pay.Status() == next {
		return pay, nil
	}

	var moved bool
	err = p.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		moved, txErr = p.paymentRepo.ApplyStatusGuarded(ctx, tx, pay.ID(), next)
		if txErr != nil {
			return txErr
		}

		entry := payment.HistoryEntry{
			ID:            uuid.New(),
			PaymentID:     pay.ID(),
			Status:        next,
			Message:       message,
			Source:        source,
			Informational: !moved,
			At:            p.clock.Now(),
		}
		return p.paymentRepo.AppendHistory(ctx, tx, entry)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !moved {
		slog.Info("status update rejected by ledger guard, recorded as informational",
			"order_id", pay.OrderID(), "current", pay.Status().String(), "attempted", next.String())
	}

	updated, err := p.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if moved && next == payment.StatusCompleted {
		if err := p.completion.OnPaymentCompleted(ctx, updated); err != nil {
			// Delivery failures are recorded per entitlement; the ledger
			// transition itself stands.
			slog.Error("service delivery after completion failed",
				"order_id", orderID, "error", err.Error())
		}
	}

	return updated, nil
}

func (p *paymentCommandsImpl) FindByOrder(ctx context.Context, orderID string) (*payment.Payment, error) {
	pay, err := p.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return pay, nil
}

func (p *paymentCommandsImpl) recordInformational(
	ctx context.Context,
	paymentID uuid.UUID,
	status payment.Status,
	message string,
	source payment.Source,
) {
	entry := payment.HistoryEntry{
		ID:            uuid.New(),
		PaymentID:     paymentID,
		Status:        status,
		Message:       message,
		Source:        source,
		Informational: true,
		At:            p.clock.Now(),
	}
	err := p.uow.WithDB(ctx, func(ctx context.Context, db db.DBTX) error {
		return p.paymentRepo.AppendHistory(ctx, db, entry)
	})
	if err != nil {
		slog.Error("failed to record informational history entry", "error", err.Error())
	}
}
