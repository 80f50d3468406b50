package response

import (
	"time"

	"controlpay/internal/domain/entitlement"
	"controlpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceAccessResponse struct {
	ServiceID   uuid.UUID  `json:"serviceId"`
	ServiceName string     `json:"serviceName"`
	Allowed     bool       `json:"allowed"`
	Status      string     `json:"status"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	AccessCount int64      `json:"accessCount"`
}

func FromServiceAccess(ent *entitlement.Entitlement, allowed bool) *ServiceAccessResponse {
	return &ServiceAccessResponse{
		ServiceID:   ent.ID(),
		ServiceName: ent.Name(),
		Allowed:     allowed,
		Status:      ent.Status().String(),
		ExpiresAt:   ent.ExpiresAt(),
		AccessCount: ent.AccessCount(),
	}
}

type EntitlementResponse struct {
	ID              uuid.UUID  `json:"id"`
	PaymentID       uuid.UUID  `json:"paymentId"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	DeliveryStatus  string     `json:"deliveryStatus"`
	DeliveryError   *string    `json:"deliveryError,omitempty"`
	AccessGrantedAt *time.Time `json:"accessGrantedAt,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	AccessCount     int64      `json:"accessCount"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func FromEntitlementView(view *queries.EntitlementView) EntitlementResponse {
	return EntitlementResponse{
		ID:              view.ID,
		PaymentID:       view.PaymentID,
		Name:            view.Name,
		Status:          view.Status,
		DeliveryStatus:  view.DeliveryStatus,
		DeliveryError:   view.DeliveryError,
		AccessGrantedAt: view.AccessGrantedAt,
		ExpiresAt:       view.ExpiresAt,
		AccessCount:     view.AccessCount,
		CreatedAt:       view.CreatedAt,
	}
}
