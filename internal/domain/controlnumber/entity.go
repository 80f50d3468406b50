package controlnumber

import (
	"errors"
	"time"

	"controlpay/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidMaxUses  = errors.New("max uses must be at least 1")
	ErrInvalidWindow   = errors.New("validity window must not precede expiry")
	ErrInvalidMethod   = errors.New("invalid payment method constraint")
	ErrNotActive       = errors.New("control number is not active")
	ErrAlreadyTerminal = errors.New("control number is in a terminal status")
)

// ControlNumber is an immutable snapshot of an issued redemption code.
// Mutation happens only through the repository's conditional writes; entities
// are reconstructed from whatever the store returned.
type ControlNumber struct {
	id            uuid.UUID
	code          Code
	amount        money.Money
	method        PaymentMethod
	merchantID    uuid.UUID
	customerName  *string
	customerPhone *string
	status        Status
	expiresAt     time.Time
	validUntil    time.Time
	isReusable    bool
	maxUses       int
	currentUses   int
	usedAt        *time.Time
	redeemedBy    *RedeemerInfo
	paymentRef    *string
	batchID       *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

func NewControlNumber(
	code Code,
	amount money.Money,
	method PaymentMethod,
	merchantID uuid.UUID,
	customerName, customerPhone *string,
	expiresAt, validUntil time.Time,
	isReusable bool,
	maxUses int,
	batchID *uuid.UUID,
) (*ControlNumber, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if maxUses < 1 {
		return nil, ErrInvalidMaxUses
	}
	if validUntil.Before(expiresAt) {
		return nil, ErrInvalidWindow
	}

	return &ControlNumber{
		id:            uuid.New(),
		code:          code,
		amount:        amount,
		method:        method,
		merchantID:    merchantID,
		customerName:  customerName,
		customerPhone: customerPhone,
		status:        StatusActive,
		expiresAt:     expiresAt,
		validUntil:    validUntil,
		isReusable:    isReusable,
		maxUses:       maxUses,
		batchID:       batchID,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code Code,
	amount money.Money,
	method PaymentMethod,
	merchantID uuid.UUID,
	customerName, customerPhone *string,
	status Status,
	expiresAt, validUntil time.Time,
	isReusable bool,
	maxUses, currentUses int,
	usedAt *time.Time,
	redeemedBy *RedeemerInfo,
	paymentRef *string,
	batchID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *ControlNumber {
	return &ControlNumber{
		id:            id,
		code:          code,
		amount:        amount,
		method:        method,
		merchantID:    merchantID,
		customerName:  customerName,
		customerPhone: customerPhone,
		status:        status,
		expiresAt:     expiresAt,
		validUntil:    validUntil,
		isReusable:    isReusable,
		maxUses:       maxUses,
		currentUses:   currentUses,
		usedAt:        usedAt,
		redeemedBy:    redeemedBy,
		paymentRef:    paymentRef,
		batchID:       batchID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// IsExpiredAt checks wall-clock validity without consulting status; a code
// past either window is unusable even before the sweep marks it.
func (c *ControlNumber) IsExpiredAt(now time.Time) bool {
	return now.After(c.expiresAt) || now.After(c.validUntil)
}

func (c *ControlNumber) IsExhausted() bool {
	return c.currentUses >= c.maxUses
}

// CanBeUsedAt is the single usability predicate behind both validate and the
// redemption guard: active, inside both windows, uses remaining.
func (c *ControlNumber) CanBeUsedAt(now time.Time) bool {
	return c.status == StatusActive && !c.IsExpiredAt(now) && !c.IsExhausted()
}

// UsabilityAt reports the precise reason a code cannot be used, in the order
// checks are applied: status, windows, uses.
func (c *ControlNumber) UsabilityAt(now time.Time) (bool, Reason) {
	if c.status != StatusActive {
		if c.status == StatusExpired {
			return false, ReasonExpired
		}
		return false, ReasonInactive
	}
	if c.IsExpiredAt(now) {
		return false, ReasonExpired
	}
	if c.IsExhausted() {
		return false, ReasonExhausted
	}
	return true, ""
}

// MatchesAmount verifies the payer committed the exact amount. Currency is
// fixed per deployment, so a currency mismatch is also a mismatch here.
func (c *ControlNumber) MatchesAmount(expected money.Money) bool {
	return c.amount.Equals(expected)
}

func (c *ControlNumber) ID() uuid.UUID          { return c.id }
func (c *ControlNumber) Code() Code             { return c.code }
func (c *ControlNumber) Amount() money.Money    { return c.amount }
func (c *ControlNumber) Method() PaymentMethod  { return c.method }
func (c *ControlNumber) MerchantID() uuid.UUID  { return c.merchantID }
func (c *ControlNumber) CustomerName() *string  { return c.customerName }
func (c *ControlNumber) CustomerPhone() *string { return c.customerPhone }
func (c *ControlNumber) Status() Status         { return c.status }
func (c *ControlNumber) ExpiresAt() time.Time   { return c.expiresAt }
func (c *ControlNumber) ValidUntil() time.Time  { return c.validUntil }
func (c *ControlNumber) IsReusable() bool       { return c.isReusable }
func (c *ControlNumber) MaxUses() int           { return c.maxUses }
func (c *ControlNumber) CurrentUses() int       { return c.currentUses }
func (c *ControlNumber) UsedAt() *time.Time     { return c.usedAt }
func (c *ControlNumber) RedeemedBy() *RedeemerInfo {
	return c.redeemedBy
}
func (c *ControlNumber) PaymentRef() *string   { return c.paymentRef }
func (c *ControlNumber) BatchID() *uuid.UUID   { return c.batchID }
func (c *ControlNumber) CreatedAt() time.Time  { return c.createdAt }
func (c *ControlNumber) UpdatedAt() time.Time  { return c.updatedAt }
