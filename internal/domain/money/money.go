package money

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidCurrency   = errors.New("invalid currency code")
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Money is an amount in minor units. Integer arithmetic only; summing
// notification amounts must never drift.
type Money struct {
	minor    int64
	currency string
}

func New(minor int64, currency string) (Money, error) {
	if minor <= 0 {
		return Money{}, ErrNonPositiveAmount
	}
	if !currencyRegex.MatchString(currency) {
		return Money{}, ErrInvalidCurrency
	}
	return Money{minor: minor, currency: currency}, nil
}

// Reconstruct rebuilds a Money from persisted columns without validation.
func Reconstruct(minor int64, currency string) Money {
	return Money{minor: minor, currency: currency}
}

func (m Money) Minor() int64     { return m.minor }
func (m Money) Currency() string { return m.currency }

func (m Money) Equals(other Money) bool {
	return m.minor == other.minor && m.currency == other.currency
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.minor, m.currency)
}
