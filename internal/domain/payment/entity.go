package payment

import (
	"errors"
	"strings"
	"time"

	"controlpay/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrderID = errors.New("order id must not be empty")
)

// Payment is the canonical record of one payment attempt, addressed by
// orderID (optionally by a legacy alias carried over from older systems).
// The denormalized status column is authoritative; history is append-only.
type Payment struct {
	id           uuid.UUID
	orderID      string
	legacyRef    *string
	amount       money.Money
	status       Status
	externalRef  *string
	controlCode  *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPayment(orderID string, amount money.Money, legacyRef, controlCode *string) (*Payment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrEmptyOrderID
	}

	return &Payment{
		id:          uuid.New(),
		orderID:     orderID,
		legacyRef:   legacyRef,
		amount:      amount,
		status:      StatusPending,
		controlCode: controlCode,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	orderID string,
	legacyRef *string,
	amount money.Money,
	status Status,
	externalRef *string,
	controlCode *string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:          id,
		orderID:     orderID,
		legacyRef:   legacyRef,
		amount:      amount,
		status:      status,
		externalRef: externalRef,
		controlCode: controlCode,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Payment) IsTerminal() bool {
	return p.status.IsTerminal()
}

func (p *Payment) IsCompleted() bool {
	return p.status == StatusCompleted
}

func (p *Payment) ID() uuid.UUID        { return p.id }
func (p *Payment) OrderID() string      { return p.orderID }
func (p *Payment) LegacyRef() *string   { return p.legacyRef }
func (p *Payment) Amount() money.Money  { return p.amount }
func (p *Payment) Status() Status       { return p.status }
func (p *Payment) ExternalRef() *string { return p.externalRef }
func (p *Payment) ControlCode() *string { return p.controlCode }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// HistoryEntry is one row of the append-only status history. Informational
// entries record rejected out-of-order updates without moving the status.
type HistoryEntry struct {
	ID            uuid.UUID
	PaymentID     uuid.UUID
	Status        Status
	Message       string
	Source        Source
	Informational bool
	At            time.Time
}
