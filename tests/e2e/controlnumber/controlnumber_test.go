//go:build e2e

package controlnumber_test

import (
	"bytes"
	"net/http"
	"sync"
	"testing"

	"controlpay/internal/handler/dto/response"
	"controlpay/internal/usecase"
	"controlpay/tests/common/authtest"
	"controlpay/tests/common/builder"
	"controlpay/tests/common/httptest"
	"controlpay/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const controlNumbersURL = "/api/control-numbers"

type ControlNumberSuite struct {
	e2e.SharedSuite
}

func (s *ControlNumberSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestControlNumberSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ControlNumberSuite))
}

func (s *ControlNumberSuite) merchantToken(t *testing.T) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), usecase.RoleMerchant)
}

func (s *ControlNumberSuite) issue(t *testing.T, token string, amountMinor int64) response.ControlNumberResponse {
	reqBody := builder.NewControlNumberBuilder().WithAmountMinor(amountMinor).BuildGenerateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, controlNumbersURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, "issuance should succeed: %s", w.Body.String())

	var created response.ControlNumberResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEmpty(t, created.Code)
	return created
}

// =============================================================================
// TestLifecycle - issue, validate, redeem, redeem again
// =============================================================================

func (s *ControlNumberSuite) TestLifecycle() {
	s.Run("Normal case: issued code is usable exactly once", func() {
		t := s.T()
		token := s.merchantToken(t)

		created := s.issue(t, token, 50000)
		s.Equal("active", created.Status)
		s.Equal(int64(50000), created.AmountMinor)
		s.True(created.ValidUntil.After(created.ExpiresAt) || created.ValidUntil.Equal(created.ExpiresAt))

		// Validation is read-only and reports usability
		vw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			controlNumbersURL+"/"+created.Code+"/validate?amountMinor=50000", nil, token)
		require.Equal(t, http.StatusOK, vw.Code)

		var validation response.ValidationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, vw.Body, &validation))
		s.True(validation.Valid)

		// First redemption wins
		redeemBody := builder.NewControlNumberBuilder().BuildRedeemRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			controlNumbersURL+"/"+created.Code+"/redeem", redeemBody, token)
		require.Equal(t, http.StatusOK, rw.Code, "redemption should succeed: %s", rw.Body.String())

		var redeemed response.ControlNumberResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &redeemed))
		s.Equal("used", redeemed.Status)
		s.Equal(1, redeemed.CurrentUses)
		s.NotNil(redeemed.UsedAt)
		s.NotNil(redeemed.PaymentRef)

		// Second redemption is a conflict, not a second consumption
		rw2 := httptest.PerformRequest(t, s.Router, http.MethodPost,
			controlNumbersURL+"/"+created.Code+"/redeem", redeemBody, token)
		s.Equal(http.StatusConflict, rw2.Code)

		// The used code now validates as unusable
		vw2 := httptest.PerformRequest(t, s.Router, http.MethodGet,
			controlNumbersURL+"/"+created.Code+"/validate", nil, token)
		require.Equal(t, http.StatusOK, vw2.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, vw2.Body, &validation))
		s.False(validation.Valid)
	})

	s.Run("Normal case: amount mismatch fails validation but leaves the code usable", func() {
		t := s.T()
		token := s.merchantToken(t)
		created := s.issue(t, token, 50000)

		vw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			controlNumbersURL+"/"+created.Code+"/validate?amountMinor=99999", nil, token)
		require.Equal(t, http.StatusOK, vw.Code)

		var validation response.ValidationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, vw.Body, &validation))
		s.False(validation.Valid)

		redeemBody := builder.NewControlNumberBuilder().BuildRedeemRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			controlNumbersURL+"/"+created.Code+"/redeem", redeemBody, token)
		s.Equal(http.StatusOK, rw.Code)
	})

	s.Run("Error case: redeeming an unknown code returns 404", func() {
		t := s.T()
		token := s.merchantToken(t)

		redeemBody := builder.NewControlNumberBuilder().BuildRedeemRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			controlNumbersURL+"/991000000000999999/redeem", redeemBody, token)
		s.Equal(http.StatusNotFound, rw.Code)
	})

	s.Run("Error case: cancelled code cannot be redeemed", func() {
		t := s.T()
		token := s.merchantToken(t)
		created := s.issue(t, token, 50000)

		cw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			controlNumbersURL+"/"+created.Code, nil, token)
		require.Equal(t, http.StatusOK, cw.Code)

		redeemBody := builder.NewControlNumberBuilder().BuildRedeemRequestDTO()
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			controlNumbersURL+"/"+created.Code+"/redeem", redeemBody, token)
		s.Equal(http.StatusConflict, rw.Code)
	})
}

// =============================================================================
// TestConcurrentRedemption - exactly one winner under contention
// =============================================================================

func (s *ControlNumberSuite) TestConcurrentRedemption() {
	s.Run("Concurrency: parallel redemptions consume a single-use code exactly once", func() {
		t := s.T()
		token := s.merchantToken(t)
		created := s.issue(t, token, 50000)

		const workers = 8
		codes := make([]int, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				redeemBody := builder.NewControlNumberBuilder().BuildRedeemRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost,
					controlNumbersURL+"/"+created.Code+"/redeem", redeemBody, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		winners := 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				winners++
			case http.StatusConflict:
				// expected for losers
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		s.Equal(1, winners, "exactly one redemption may win")
	})
}

func (s *ControlNumberSuite) TestConcurrentGeneration() {
	s.Run("Concurrency: parallel issuance yields distinct codes", func() {
		t := s.T()
		token := s.merchantToken(t)

		const workers = 8
		statuses := make([]int, workers)
		bodies := make([]*bytes.Buffer, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				reqBody := builder.NewControlNumberBuilder().WithAmountMinor(50000).BuildGenerateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, controlNumbersURL, reqBody, token)
				statuses[i] = w.Code
				bodies[i] = w.Body
			}()
		}
		wg.Wait()

		seen := make(map[string]struct{}, workers)
		for i := range workers {
			require.Equal(t, http.StatusCreated, statuses[i], "issuance should succeed: %s", bodies[i].String())
			var created response.ControlNumberResponse
			require.NoError(t, httptest.DecodeResponseBody(t, bodies[i], &created))
			seen[created.Code] = struct{}{}
		}
		s.Len(seen, workers, "every issued code must be unique")
	})
}

// =============================================================================
// TestBatchGenerate - batch issuance shares one batch ID
// =============================================================================

func (s *ControlNumberSuite) TestBatchGenerate() {
	s.Run("Normal case: batch members share a batch ID and distinct codes", func() {
		t := s.T()
		token := s.merchantToken(t)

		reqBody := map[string]any{
			"amountMinor": int64(25000),
			"count":       5,
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, controlNumbersURL+"/batch", reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "batch issuance should succeed: %s", w.Body.String())

		var batch []response.ControlNumberResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &batch))
		require.Len(t, batch, 5)

		seen := make(map[string]bool)
		for _, cn := range batch {
			s.False(seen[cn.Code], "codes must be unique")
			seen[cn.Code] = true
			require.NotNil(t, cn.BatchID)
			s.Equal(*batch[0].BatchID, *cn.BatchID)
		}
	})
}

// =============================================================================
// TestExtendAndList
// =============================================================================

func (s *ControlNumberSuite) TestExtendAndList() {
	s.Run("Normal case: extension shifts both windows forward", func() {
		t := s.T()
		token := s.merchantToken(t)
		created := s.issue(t, token, 50000)

		ew := httptest.PerformRequest(t, s.Router, http.MethodPost,
			controlNumbersURL+"/"+created.Code+"/extend", map[string]any{"extraHours": 48}, token)
		require.Equal(t, http.StatusOK, ew.Code)

		var extended response.ControlNumberResponse
		require.NoError(t, httptest.DecodeResponseBody(t, ew.Body, &extended))
		s.True(extended.ExpiresAt.After(created.ExpiresAt))
		s.True(extended.ValidUntil.After(created.ValidUntil))
	})

	s.Run("Normal case: listing is scoped to the token's merchant", func() {
		t := s.T()
		merchantID := uuid.New()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, merchantID, usecase.RoleMerchant)
		otherToken := s.merchantToken(t)

		s.issue(t, token, 10000)
		s.issue(t, token, 20000)
		s.issue(t, otherToken, 30000)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, controlNumbersURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var items []response.ControlNumberListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &items))
		s.Len(items, 2)
	})

	s.Run("Error case: requests without a token are rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, controlNumbersURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
