package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ControlNumberView struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	AmountMinor   int64      `json:"amount_minor"`
	Currency      string     `json:"currency"`
	PaymentMethod string     `json:"payment_method"`
	MerchantID    uuid.UUID  `json:"merchant_id"`
	CustomerName  *string    `json:"customer_name,omitempty"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	Status        string     `json:"status"`
	ExpiresAt     time.Time  `json:"expires_at"`
	ValidUntil    time.Time  `json:"valid_until"`
	IsReusable    bool       `json:"is_reusable"`
	MaxUses       int32      `json:"max_uses"`
	CurrentUses   int32      `json:"current_uses"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	PaymentRef    *string    `json:"payment_ref,omitempty"`
	BatchID       *uuid.UUID `json:"batch_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ControlNumberListItem struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	AmountMinor int64     `json:"amount_minor"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expires_at"`
	ValidUntil  time.Time `json:"valid_until"`
	CurrentUses int32     `json:"current_uses"`
	MaxUses     int32     `json:"max_uses"`
	CreatedAt   time.Time `json:"created_at"`
}

type ValidationView struct {
	Valid         bool               `json:"valid"`
	Reason        *string            `json:"reason,omitempty"`
	ControlNumber *ControlNumberView `json:"control_number,omitempty"`
}

type HistoryEntryView struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	Source        string    `json:"source"`
	Informational bool      `json:"informational"`
	At            time.Time `json:"at"`
}

type PaymentView struct {
	ID          uuid.UUID          `json:"id"`
	OrderID     string             `json:"order_id"`
	LegacyRef   *string            `json:"legacy_ref,omitempty"`
	AmountMinor int64              `json:"amount_minor"`
	Currency    string             `json:"currency"`
	Status      string             `json:"status"`
	ExternalRef *string            `json:"external_ref,omitempty"`
	ControlCode *string            `json:"control_code,omitempty"`
	History     []HistoryEntryView `json:"history,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type EntitlementView struct {
	ID              uuid.UUID  `json:"id"`
	PaymentID       uuid.UUID  `json:"payment_id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	DeliveryStatus  string     `json:"delivery_status"`
	DeliveryError   *string    `json:"delivery_error,omitempty"`
	AccessGrantedAt *time.Time `json:"access_granted_at,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	AccessCount     int64      `json:"access_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
