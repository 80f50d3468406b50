package response

import (
	"time"

	"controlpay/internal/domain/payment"
	"controlpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentResponse struct {
	ID          uuid.UUID              `json:"id"`
	OrderID     string                 `json:"orderId"`
	LegacyRef   *string                `json:"legacyRef,omitempty"`
	AmountMinor int64                  `json:"amountMinor"`
	Currency    string                 `json:"currency"`
	Status      string                 `json:"status"`
	ExternalRef *string                `json:"externalRef,omitempty"`
	ControlCode *string                `json:"controlCode,omitempty"`
	History     []HistoryEntryResponse `json:"history,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type HistoryEntryResponse struct {
	Status        string    `json:"status"`
	Message       string    `json:"message"`
	Source        string    `json:"source"`
	Informational bool      `json:"informational"`
	At            time.Time `json:"at"`
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:          p.ID(),
		OrderID:     p.OrderID(),
		LegacyRef:   p.LegacyRef(),
		AmountMinor: p.Amount().Minor(),
		Currency:    p.Amount().Currency(),
		Status:      p.Status().String(),
		ExternalRef: p.ExternalRef(),
		ControlCode: p.ControlCode(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func FromPaymentView(view *queries.PaymentView) *PaymentResponse {
	resp := &PaymentResponse{
		ID:          view.ID,
		OrderID:     view.OrderID,
		LegacyRef:   view.LegacyRef,
		AmountMinor: view.AmountMinor,
		Currency:    view.Currency,
		Status:      view.Status,
		ExternalRef: view.ExternalRef,
		ControlCode: view.ControlCode,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
	for _, entry := range view.History {
		resp.History = append(resp.History, HistoryEntryResponse{
			Status:        entry.Status,
			Message:       entry.Message,
			Source:        entry.Source,
			Informational: entry.Informational,
			At:            entry.At,
		})
	}
	return resp
}
