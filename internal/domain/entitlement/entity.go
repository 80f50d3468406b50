package entitlement

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("entitlement name must not be empty")
)

// Entitlement is a deliverable service linked to the payment that bought it.
// The link is a weak reference by payment ID; the payment owns nothing here.
type Entitlement struct {
	id              uuid.UUID
	paymentID       uuid.UUID
	name            string
	status          Status
	deliveryStatus  DeliveryStatus
	deliveryError   *string
	accessToken     *string
	accessGrantedAt *time.Time
	expiresAt       *time.Time
	accessCount     int64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEntitlement(paymentID uuid.UUID, name string) (*Entitlement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Entitlement{
		id:             uuid.New(),
		paymentID:      paymentID,
		name:           name,
		status:         StatusPending,
		deliveryStatus: DeliveryPending,
	}, nil
}

func Reconstruct(
	id, paymentID uuid.UUID,
	name string,
	status Status,
	deliveryStatus DeliveryStatus,
	deliveryError *string,
	accessToken *string,
	accessGrantedAt, expiresAt *time.Time,
	accessCount int64,
	createdAt, updatedAt time.Time,
) *Entitlement {
	return &Entitlement{
		id:              id,
		paymentID:       paymentID,
		name:            name,
		status:          status,
		deliveryStatus:  deliveryStatus,
		deliveryError:   deliveryError,
		accessToken:     accessToken,
		accessGrantedAt: accessGrantedAt,
		expiresAt:       expiresAt,
		accessCount:     accessCount,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// IsAccessibleAt is evaluated fresh on every access check, never cached:
// active, and either no expiry or not yet past it.
func (e *Entitlement) IsAccessibleAt(now time.Time) bool {
	if e.status != StatusActive {
		return false
	}
	if e.expiresAt != nil && now.After(*e.expiresAt) {
		return false
	}
	return true
}

func (e *Entitlement) IsPending() bool {
	return e.status == StatusPending
}

func (e *Entitlement) HasExpiredAt(now time.Time) bool {
	return e.expiresAt != nil && now.After(*e.expiresAt)
}

func (e *Entitlement) ID() uuid.UUID                  { return e.id }
func (e *Entitlement) PaymentID() uuid.UUID           { return e.paymentID }
func (e *Entitlement) Name() string                   { return e.name }
func (e *Entitlement) Status() Status                 { return e.status }
func (e *Entitlement) DeliveryStatus() DeliveryStatus { return e.deliveryStatus }
func (e *Entitlement) DeliveryError() *string         { return e.deliveryError }
func (e *Entitlement) AccessToken() *string           { return e.accessToken }
func (e *Entitlement) AccessGrantedAt() *time.Time    { return e.accessGrantedAt }
func (e *Entitlement) ExpiresAt() *time.Time          { return e.expiresAt }
func (e *Entitlement) AccessCount() int64             { return e.accessCount }
func (e *Entitlement) CreatedAt() time.Time           { return e.createdAt }
func (e *Entitlement) UpdatedAt() time.Time           { return e.updatedAt }
