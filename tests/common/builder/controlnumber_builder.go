//go:build unit || e2e

package builder

import (
	"time"

	domcn "controlpay/internal/domain/controlnumber"
	"controlpay/internal/domain/money"
	reqdto "controlpay/internal/handler/dto/request"
	"controlpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ControlNumberBuilder struct {
	Code          string
	AmountMinor   int64
	Currency      string
	Method        domcn.PaymentMethod
	MerchantID    uuid.UUID
	CustomerName  *string
	CustomerPhone *string
	Status        domcn.Status
	ExpiresAt     time.Time
	ValidUntil    time.Time
	IsReusable    bool
	MaxUses       int
	CurrentUses   int
	UsedAt        *time.Time
	PaymentRef    *string
	BatchID       *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewControlNumberBuilder() *ControlNumberBuilder {
	now := time.Now()
	return &ControlNumberBuilder{
		Code:        "991260830120012345",
		AmountMinor: 50000,
		Currency:    "TZS",
		Method:      domcn.MethodAny,
		MerchantID:  uuid.New(),
		Status:      domcn.StatusActive,
		ExpiresAt:   now.Add(24 * time.Hour),
		ValidUntil:  now.Add(7 * 24 * time.Hour),
		IsReusable:  false,
		MaxUses:     1,
		CurrentUses: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ControlNumberBuilder) With(mutate func(*ControlNumberBuilder)) *ControlNumberBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ControlNumberBuilder) BuildDomain() (*domcn.ControlNumber, error) {
	code, err := domcn.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	return domcn.NewControlNumber(
		code,
		money.Reconstruct(b.AmountMinor, b.Currency),
		b.Method,
		b.MerchantID,
		b.CustomerName, b.CustomerPhone,
		b.ExpiresAt, b.ValidUntil,
		b.IsReusable,
		b.MaxUses,
		b.BatchID,
	)
}

// BuildReconstructed bypasses constructor validation so tests can place a
// code in any status or usage state.
func (b *ControlNumberBuilder) BuildReconstructed() *domcn.ControlNumber {
	return domcn.Reconstruct(
		uuid.New(),
		domcn.Code(b.Code),
		money.Reconstruct(b.AmountMinor, b.Currency),
		b.Method,
		b.MerchantID,
		b.CustomerName, b.CustomerPhone,
		b.Status,
		b.ExpiresAt, b.ValidUntil,
		b.IsReusable,
		b.MaxUses, b.CurrentUses,
		b.UsedAt,
		nil,
		b.PaymentRef,
		b.BatchID,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *ControlNumberBuilder) BuildGenerateRequestDTO() reqdto.GenerateControlNumberRequest {
	return reqdto.GenerateControlNumberRequest{
		AmountMinor:   b.AmountMinor,
		PaymentMethod: string(b.Method),
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		IsReusable:    b.IsReusable,
	}
}

func (b *ControlNumberBuilder) BuildRedeemRequestDTO() reqdto.RedeemControlNumberRequest {
	return reqdto.RedeemControlNumberRequest{
		PaymentRef:      "TXN-001",
		RedeemerName:    "John Payer",
		RedeemerPhone:   "+255700000001",
		RedeemerChannel: "mobile_money",
	}
}

func (b *ControlNumberBuilder) BuildView() *queries.ControlNumberView {
	return &queries.ControlNumberView{
		ID:            uuid.New(),
		Code:          b.Code,
		AmountMinor:   b.AmountMinor,
		Currency:      b.Currency,
		PaymentMethod: string(b.Method),
		MerchantID:    b.MerchantID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Status:        string(b.Status),
		ExpiresAt:     b.ExpiresAt,
		ValidUntil:    b.ValidUntil,
		IsReusable:    b.IsReusable,
		MaxUses:       int32(b.MaxUses),
		CurrentUses:   int32(b.CurrentUses),
		UsedAt:        b.UsedAt,
		PaymentRef:    b.PaymentRef,
		BatchID:       b.BatchID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ControlNumberBuilder) BuildListItem() queries.ControlNumberListItem {
	return queries.ControlNumberListItem{
		ID:          uuid.New(),
		Code:        b.Code,
		AmountMinor: b.AmountMinor,
		Status:      string(b.Status),
		ExpiresAt:   b.ExpiresAt,
		ValidUntil:  b.ValidUntil,
		CurrentUses: int32(b.CurrentUses),
		MaxUses:     int32(b.MaxUses),
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ControlNumberBuilder) WithCode(code string) *ControlNumberBuilder {
	b.Code = code
	return b
}

func (b *ControlNumberBuilder) WithAmountMinor(minor int64) *ControlNumberBuilder {
	b.AmountMinor = minor
	return b
}

func (b *ControlNumberBuilder) WithMethod(method domcn.PaymentMethod) *ControlNumberBuilder {
	b.Method = method
	return b
}

func (b *ControlNumberBuilder) WithMerchantID(merchantID uuid.UUID) *ControlNumberBuilder {
	b.MerchantID = merchantID
	return b
}

func (b *ControlNumberBuilder) WithStatus(status domcn.Status) *ControlNumberBuilder {
	b.Status = status
	return b
}

func (b *ControlNumberBuilder) WithWindow(expiresAt, validUntil time.Time) *ControlNumberBuilder {
	b.ExpiresAt = expiresAt
	b.ValidUntil = validUntil
	return b
}

func (b *ControlNumberBuilder) WithUses(current, max int) *ControlNumberBuilder {
	b.CurrentUses = current
	b.MaxUses = max
	return b
}

func (b *ControlNumberBuilder) WithReusable(maxUses int) *ControlNumberBuilder {
	b.IsReusable = true
	b.MaxUses = maxUses
	return b
}

func (b *ControlNumberBuilder) AsExpired(now time.Time) *ControlNumberBuilder {
	b.ExpiresAt = now.Add(-2 * time.Hour)
	b.ValidUntil = now.Add(-1 * time.Hour)
	return b
}

func (b *ControlNumberBuilder) AsUsed() *ControlNumberBuilder {
	b.Status = domcn.StatusUsed
	b.CurrentUses = b.MaxUses
	return b
}
