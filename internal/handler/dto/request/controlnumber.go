package request

import (
	"strings"
)

type GenerateControlNumberRequest struct {
	AmountMinor   int64   `json:"amountMinor" binding:"required"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	ExpiryHours   *int    `json:"expiryHours,omitempty"`
	ValidityHours *int    `json:"validityHours,omitempty"`
	IsReusable    bool    `json:"isReusable,omitempty"`
	MaxUses       *int    `json:"maxUses,omitempty"`
}

type BatchGenerateRequest struct {
	GenerateControlNumberRequest
	Count int `json:"count" binding:"required,min=1"`
}

type RedeemControlNumberRequest struct {
	PaymentRef      string `json:"paymentRef" binding:"required"`
	RedeemerName    string `json:"redeemerName,omitempty"`
	RedeemerPhone   string `json:"redeemerPhone,omitempty"`
	RedeemerChannel string `json:"redeemerChannel,omitempty"`
}

type ExtendValidityRequest struct {
	ExtraHours int `json:"extraHours" binding:"required,min=1"`
}

func (r GenerateControlNumberRequest) Method() string {
	method := strings.TrimSpace(strings.ToLower(r.PaymentMethod))
	if method == "" {
		return "any"
	}
	return method
}
