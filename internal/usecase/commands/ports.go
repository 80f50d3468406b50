package commands

import (
	"context"
	"time"

	"controlpay/internal/domain/controlnumber"
	"controlpay/internal/domain/entitlement"
	"controlpay/internal/domain/money"
	"controlpay/internal/domain/payment"
	"controlpay/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork runs fn inside one database transaction; the tx handle is
// passed to every repository call made within fn.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

// Repository ports. Implementations live in internal/infra/repository; the
// conditional-write semantics documented there are part of the contract.

type ControlNumberRepository interface {
	Create(ctx context.Context, cn *controlnumber.ControlNumber) error
	FindByCode(ctx context.Context, code controlnumber.Code) (*controlnumber.ControlNumber, error)
	Redeem(ctx context.Context, code controlnumber.Code, paymentRef string, redeemer controlnumber.RedeemerInfo, now time.Time) (*controlnumber.ControlNumber, error)
	ExtendValidity(ctx context.Context, code controlnumber.Code, newExpiresAt, newValidUntil time.Time) (*controlnumber.ControlNumber, error)
	Cancel(ctx context.Context, code controlnumber.Code) (*controlnumber.ControlNumber, error)
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error
	FindByOrder(ctx context.Context, orderID string) (*payment.Payment, error)
	ApplyStatusGuarded(ctx context.Context, tx db.DBTX, paymentID uuid.UUID, next payment.Status) (bool, error)
	SetExternalRef(ctx context.Context, paymentID uuid.UUID, ref string) error
	AppendHistory(ctx context.Context, tx db.DBTX, entry payment.HistoryEntry) error
}

type EntitlementRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *entitlement.Entitlement) error
	FindByID(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error)
	FindPendingByPayment(ctx context.Context, paymentID uuid.UUID) ([]*entitlement.Entitlement, error)
	Activate(ctx context.Context, id uuid.UUID, accessToken string, grantedAt time.Time, expiresAt *time.Time) (bool, error)
	MarkDeliveryFailed(ctx context.Context, id uuid.UUID, reason string) error
	IncrementAccessCount(ctx context.Context, id uuid.UUID) error
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

// ProviderAdapter is the boundary to an external payment rail. Calls run
// under a bounded timeout; a timeout is reported as ErrProviderTimeout and
// must never be interpreted as a definitive failure.
type ProviderAdapter interface {
	InitiatePayment(ctx context.Context, orderID string, amount money.Money, payer PayerInfo) (*InitiationResult, error)
	QueryStatus(ctx context.Context, orderID string) (*ProviderStatusResult, error)
}

type PayerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type InitiationResult struct {
	ExternalRef    string
	ProviderStatus string
}

type ProviderStatusResult struct {
	Provider       string
	ProviderStatus string
}

// CompletionHandler receives the completion event emitted on a payment's
// first transition into completed. Exactly one event per payment.
type CompletionHandler interface {
	OnPaymentCompleted(ctx context.Context, p *payment.Payment) error
}
