//go:build unit

package controlnumber_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"controlpay/internal/domain/controlnumber"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "minimum length", raw: "12345678"},
		{name: "maximum length", raw: strings.Repeat("9", 24)},
		{name: "surrounding whitespace trimmed", raw: "  991234567890  "},
		{name: "too short", raw: "1234567", errIs: controlnumber.ErrInvalidCode},
		{name: "too long", raw: strings.Repeat("9", 25), errIs: controlnumber.ErrInvalidCode},
		{name: "letters rejected", raw: "99123456AB", errIs: controlnumber.ErrInvalidCode},
		{name: "inner whitespace rejected", raw: "9912 34567890", errIs: controlnumber.ErrInvalidCode},
		{name: "empty", raw: "", errIs: controlnumber.ErrInvalidCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := controlnumber.NewCode(tt.raw)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.raw), code.String())
		})
	}
}

func TestNewCandidateCode(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("shape: prefix, time digits, random suffix", func(t *testing.T) {
		code, err := controlnumber.NewCandidateCode("991", now, 6)
		require.NoError(t, err)

		s := code.String()
		assert.True(t, strings.HasPrefix(s, "991"))
		assert.Len(t, s, len("991")+10+6)
		assert.Regexp(t, regexp.MustCompile(`^[0-9]+$`), s)
	})

	t.Run("time component is seconds resolution UTC", func(t *testing.T) {
		code, err := controlnumber.NewCandidateCode("991", now, 6)
		require.NoError(t, err)
		assert.Equal(t, now.UTC().Format("0601021504"), code.String()[3:13])
	})

	t.Run("random suffix floor is four digits", func(t *testing.T) {
		code, err := controlnumber.NewCandidateCode("991", now, 1)
		require.NoError(t, err)
		assert.Len(t, code.String(), len("991")+10+4)
	})

	t.Run("candidates within one second differ", func(t *testing.T) {
		seen := map[string]bool{}
		for range 20 {
			code, err := controlnumber.NewCandidateCode("991", now, 6)
			require.NoError(t, err)
			seen[code.String()] = true
		}
		// 20 draws from a 10^6 space colliding down to one value is not luck.
		assert.Greater(t, len(seen), 1)
	})
}
