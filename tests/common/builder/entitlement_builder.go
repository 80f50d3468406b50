//go:build unit || e2e

package builder

import (
	"time"

	doment "controlpay/internal/domain/entitlement"
	"controlpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type EntitlementBuilder struct {
	ID              uuid.UUID
	PaymentID       uuid.UUID
	Name            string
	Status          doment.Status
	DeliveryStatus  doment.DeliveryStatus
	DeliveryError   *string
	AccessToken     *string
	AccessGrantedAt *time.Time
	ExpiresAt       *time.Time
	AccessCount     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewEntitlementBuilder() *EntitlementBuilder {
	now := time.Now()
	return &EntitlementBuilder{
		ID:             uuid.New(),
		PaymentID:      uuid.New(),
		Name:           "premium-report",
		Status:         doment.StatusPending,
		DeliveryStatus: doment.DeliveryPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *EntitlementBuilder) With(mutate func(*EntitlementBuilder)) *EntitlementBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EntitlementBuilder) BuildDomain() (*doment.Entitlement, error) {
	return doment.NewEntitlement(b.PaymentID, b.Name)
}

// BuildReconstructed bypasses constructor validation so tests can place an
// entitlement in any lifecycle state.
func (b *EntitlementBuilder) BuildReconstructed() *doment.Entitlement {
	return doment.Reconstruct(
		b.ID, b.PaymentID,
		b.Name,
		b.Status,
		b.DeliveryStatus,
		b.DeliveryError,
		b.AccessToken,
		b.AccessGrantedAt, b.ExpiresAt,
		b.AccessCount,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *EntitlementBuilder) BuildView() *queries.EntitlementView {
	return &queries.EntitlementView{
		ID:              b.ID,
		PaymentID:       b.PaymentID,
		Name:            b.Name,
		Status:          string(b.Status),
		DeliveryStatus:  string(b.DeliveryStatus),
		DeliveryError:   b.DeliveryError,
		AccessGrantedAt: b.AccessGrantedAt,
		ExpiresAt:       b.ExpiresAt,
		AccessCount:     b.AccessCount,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *EntitlementBuilder) WithPaymentID(paymentID uuid.UUID) *EntitlementBuilder {
	b.PaymentID = paymentID
	return b
}

func (b *EntitlementBuilder) WithName(name string) *EntitlementBuilder {
	b.Name = name
	return b
}

func (b *EntitlementBuilder) WithStatus(status doment.Status) *EntitlementBuilder {
	b.Status = status
	return b
}

func (b *EntitlementBuilder) WithExpiresAt(expiresAt time.Time) *EntitlementBuilder {
	b.ExpiresAt = &expiresAt
	return b
}

func (b *EntitlementBuilder) WithAccessToken(token string) *EntitlementBuilder {
	b.AccessToken = &token
	return b
}

func (b *EntitlementBuilder) AsActive(grantedAt time.Time, expiresAt *time.Time) *EntitlementBuilder {
	token := uuid.NewString()
	b.Status = doment.StatusActive
	b.DeliveryStatus = doment.DeliveryDelivered
	b.AccessToken = &token
	b.AccessGrantedAt = &grantedAt
	b.ExpiresAt = expiresAt
	return b
}
