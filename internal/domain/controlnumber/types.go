package controlnumber

type Status string

const (
	StatusActive    Status = "active"
	StatusUsed      Status = "used"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusUsed, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status archives the code. Terminal codes are
// never deleted and never move back to active.
func (s Status) IsTerminal() bool {
	return s == StatusUsed || s == StatusExpired || s == StatusCancelled
}

// PaymentMethod constrains which rail may redeem a code.
type PaymentMethod string

const (
	MethodAny         PaymentMethod = "any"
	MethodMobileMoney PaymentMethod = "mobile_money"
	MethodBank        PaymentMethod = "bank"
	MethodCard        PaymentMethod = "card"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodAny, MethodMobileMoney, MethodBank, MethodCard:
		return true
	default:
		return false
	}
}

// Reason classifies why a code failed validation.
type Reason string

const (
	ReasonNotFound       Reason = "not_found"
	ReasonInactive       Reason = "inactive"
	ReasonExpired        Reason = "expired"
	ReasonExhausted      Reason = "exhausted"
	ReasonAmountMismatch Reason = "amount_mismatch"
)

func (r Reason) String() string {
	return string(r)
}
