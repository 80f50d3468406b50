package controlnumber

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidCode = errors.New("invalid control number format")
)

var codeRegex = regexp.MustCompile(`^[0-9]{8,24}$`)

// Code is the human-enterable digit string a payer types into a payment
// channel. Globally unique; uniqueness is enforced by the store.
type Code string

func NewCode(raw string) (Code, error) {
	raw = strings.TrimSpace(raw)
	if !codeRegex.MatchString(raw) {
		return Code(""), ErrInvalidCode
	}
	return Code(raw), nil
}

func (c Code) String() string {
	return string(c)
}

// NewCandidateCode builds a fresh candidate: prefix, then seconds-resolution
// time digits, then a random suffix sized so collisions stay negligible at
// expected issue volume. Callers retry on a store-level duplicate.
func NewCandidateCode(prefix string, now time.Time, randomDigits int) (Code, error) {
	if randomDigits < 4 {
		randomDigits = 4
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(now.UTC().Format("0601021504"))

	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(randomDigits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return Code(""), err
	}
	digits := n.String()
	for len(digits) < randomDigits {
		digits = "0" + digits
	}
	b.WriteString(digits)

	return NewCode(b.String())
}

// RedeemerInfo captures who consumed the code, as reported by the rail.
type RedeemerInfo struct {
	Name    string
	Phone   string
	Channel string
}
