//go:build unit || e2e

package builder

import (
	"time"

	"controlpay/internal/domain/money"
	dompay "controlpay/internal/domain/payment"
	reqdto "controlpay/internal/handler/dto/request"
	"controlpay/internal/usecase/commands"
	"controlpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentBuilder struct {
	ID          uuid.UUID
	OrderID     string
	LegacyRef   *string
	AmountMinor int64
	Currency    string
	Status      dompay.Status
	ExternalRef *string
	ControlCode *string
	Services    []string
	PayerName   string
	PayerPhone  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Now()
	return &PaymentBuilder{
		ID:          uuid.New(),
		OrderID:     "ORD-2026-0001",
		AmountMinor: 50000,
		Currency:    "TZS",
		Status:      dompay.StatusPending,
		Services:    []string{"premium-report"},
		PayerName:   "John Payer",
		PayerPhone:  "+255700000001",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PaymentBuilder) BuildDomain() (*dompay.Payment, error) {
	return dompay.NewPayment(b.OrderID, money.Reconstruct(b.AmountMinor, b.Currency), b.LegacyRef, b.ControlCode)
}

// BuildReconstructed bypasses constructor validation so tests can place a
// payment in any ledger status.
func (b *PaymentBuilder) BuildReconstructed() *dompay.Payment {
	return dompay.Reconstruct(
		b.ID,
		b.OrderID,
		b.LegacyRef,
		money.Reconstruct(b.AmountMinor, b.Currency),
		b.Status,
		b.ExternalRef,
		b.ControlCode,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *PaymentBuilder) BuildInitiateOrder() commands.InitiateOrder {
	return commands.InitiateOrder{
		OrderID:     b.OrderID,
		LegacyRef:   b.LegacyRef,
		AmountMinor: b.AmountMinor,
		ControlCode: b.ControlCode,
		Payer: commands.PayerInfo{
			Name:  b.PayerName,
			Phone: b.PayerPhone,
		},
		Services: b.Services,
	}
}

func (b *PaymentBuilder) BuildInitiateRequestDTO() reqdto.InitiatePaymentRequest {
	return reqdto.InitiatePaymentRequest{
		OrderID:     b.OrderID,
		LegacyRef:   b.LegacyRef,
		AmountMinor: b.AmountMinor,
		ControlCode: b.ControlCode,
		PayerName:   b.PayerName,
		PayerPhone:  b.PayerPhone,
		Services:    b.Services,
	}
}

func (b *PaymentBuilder) BuildEventRequestDTO(provider, status string) reqdto.PaymentEventRequest {
	return reqdto.PaymentEventRequest{
		Provider: provider,
		OrderID:  b.OrderID,
		Status:   status,
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:          b.ID,
		OrderID:     b.OrderID,
		LegacyRef:   b.LegacyRef,
		AmountMinor: b.AmountMinor,
		Currency:    b.Currency,
		Status:      string(b.Status),
		ExternalRef: b.ExternalRef,
		ControlCode: b.ControlCode,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *PaymentBuilder) WithOrderID(orderID string) *PaymentBuilder {
	b.OrderID = orderID
	return b
}

func (b *PaymentBuilder) WithLegacyRef(ref string) *PaymentBuilder {
	b.LegacyRef = &ref
	return b
}

func (b *PaymentBuilder) WithAmountMinor(minor int64) *PaymentBuilder {
	b.AmountMinor = minor
	return b
}

func (b *PaymentBuilder) WithStatus(status dompay.Status) *PaymentBuilder {
	b.Status = status
	return b
}

func (b *PaymentBuilder) WithControlCode(code string) *PaymentBuilder {
	b.ControlCode = &code
	return b
}

func (b *PaymentBuilder) WithServices(services ...string) *PaymentBuilder {
	b.Services = services
	return b
}
