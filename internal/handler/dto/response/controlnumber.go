package response

import (
	"time"

	"controlpay/internal/domain/controlnumber"
	"controlpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type ControlNumberResponse struct {
	ID            uuid.UUID  `json:"id"`
	Code          string     `json:"code"`
	AmountMinor   int64      `json:"amountMinor"`
	Currency      string     `json:"currency"`
	PaymentMethod string     `json:"paymentMethod"`
	MerchantID    uuid.UUID  `json:"merchantId"`
	Status        string     `json:"status"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	ValidUntil    time.Time  `json:"validUntil"`
	IsReusable    bool       `json:"isReusable"`
	MaxUses       int        `json:"maxUses"`
	CurrentUses   int        `json:"currentUses"`
	UsedAt        *time.Time `json:"usedAt,omitempty"`
	PaymentRef    *string    `json:"paymentRef,omitempty"`
	BatchID       *uuid.UUID `json:"batchId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type ControlNumberListResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	AmountMinor int64     `json:"amountMinor"`
	Status      string    `json:"status"`
	ExpiresAt   time.Time `json:"expiresAt"`
	ValidUntil  time.Time `json:"validUntil"`
	CurrentUses int32     `json:"currentUses"`
	MaxUses     int32     `json:"maxUses"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ValidationResponse struct {
	Valid         bool                   `json:"valid"`
	Reason        *string                `json:"reason,omitempty"`
	ControlNumber *ControlNumberResponse `json:"controlNumber,omitempty"`
}

func FromControlNumber(cn *controlnumber.ControlNumber) *ControlNumberResponse {
	return &ControlNumberResponse{
		ID:            cn.ID(),
		Code:          cn.Code().String(),
		AmountMinor:   cn.Amount().Minor(),
		Currency:      cn.Amount().Currency(),
		PaymentMethod: string(cn.Method()),
		MerchantID:    cn.MerchantID(),
		Status:        cn.Status().String(),
		ExpiresAt:     cn.ExpiresAt(),
		ValidUntil:    cn.ValidUntil(),
		IsReusable:    cn.IsReusable(),
		MaxUses:       cn.MaxUses(),
		CurrentUses:   cn.CurrentUses(),
		UsedAt:        cn.UsedAt(),
		PaymentRef:    cn.PaymentRef(),
		BatchID:       cn.BatchID(),
		CreatedAt:     cn.CreatedAt(),
	}
}

func FromControlNumbers(cns []*controlnumber.ControlNumber) []*ControlNumberResponse {
	result := make([]*ControlNumberResponse, 0, len(cns))
	for _, cn := range cns {
		result = append(result, FromControlNumber(cn))
	}
	return result
}

func FromControlNumberView(view *queries.ControlNumberView) *ControlNumberResponse {
	return &ControlNumberResponse{
		ID:            view.ID,
		Code:          view.Code,
		AmountMinor:   view.AmountMinor,
		Currency:      view.Currency,
		PaymentMethod: view.PaymentMethod,
		MerchantID:    view.MerchantID,
		Status:        view.Status,
		ExpiresAt:     view.ExpiresAt,
		ValidUntil:    view.ValidUntil,
		IsReusable:    view.IsReusable,
		MaxUses:       int(view.MaxUses),
		CurrentUses:   int(view.CurrentUses),
		UsedAt:        view.UsedAt,
		PaymentRef:    view.PaymentRef,
		BatchID:       view.BatchID,
		CreatedAt:     view.CreatedAt,
	}
}

func FromValidationView(view *queries.ValidationView) *ValidationResponse {
	resp := &ValidationResponse{
		Valid:  view.Valid,
		Reason: view.Reason,
	}
	if view.ControlNumber != nil {
		resp.ControlNumber = FromControlNumberView(view.ControlNumber)
	}
	return resp
}

func FromControlNumberListItem(item queries.ControlNumberListItem) ControlNumberListResponse {
	return ControlNumberListResponse{
		ID:          item.ID,
		Code:        item.Code,
		AmountMinor: item.AmountMinor,
		Status:      item.Status,
		ExpiresAt:   item.ExpiresAt,
		ValidUntil:  item.ValidUntil,
		CurrentUses: item.CurrentUses,
		MaxUses:     item.MaxUses,
		CreatedAt:   item.CreatedAt,
	}
}
