package request

import (
	"strings"
)

type InitiatePaymentRequest struct {
	OrderID     string   `json:"orderId" binding:"required"`
	LegacyRef   *string  `json:"legacyRef,omitempty"`
	AmountMinor int64    `json:"amountMinor" binding:"required"`
	ControlCode *string  `json:"controlCode,omitempty"`
	PayerName   string   `json:"payerName,omitempty"`
	PayerPhone  string   `json:"payerPhone,omitempty"`
	Services    []string `json:"services,omitempty"`
}

func (r InitiatePaymentRequest) GetLegacyRef() *string {
	if r.LegacyRef == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.LegacyRef)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r InitiatePaymentRequest) GetControlCode() *string {
	if r.ControlCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.ControlCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type PaymentEventRequest struct {
	Provider    string `json:"provider" binding:"required"`
	OrderID     string `json:"orderId" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Message     string `json:"message,omitempty"`
	ExternalRef string `json:"externalRef,omitempty"`
}
