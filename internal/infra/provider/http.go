package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"controlpay/internal/domain/money"
	"controlpay/internal/pkg/config"
	"controlpay/internal/pkg/errs"
	"controlpay/internal/pkg/metrics"
	"controlpay/internal/usecase/commands"
)

// HTTPAdapter talks JSON over HTTP to the upstream payment gateway. Every
// call runs under the configured timeout; a timeout is reported as a
// distinct outcome from a provider-side rejection.
type HTTPAdapter struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

func NewHTTPAdapter(cfg config.Config) *HTTPAdapter {
	return &HTTPAdapter{
		client:  &http.Client{Timeout: cfg.Provider.Timeout},
		baseURL: cfg.Provider.BaseURL,
		timeout: cfg.Provider.Timeout,
	}
}

type initiateRequest struct {
	OrderID     string             `json:"order_id"`
	AmountMinor int64              `json:"amount_minor"`
	Currency    string             `json:"currency"`
	Payer       commands.PayerInfo `json:"payer"`
}

type initiateResponse struct {
	ExternalRef string `json:"external_ref"`
	Status      string `json:"status"`
	Message     string `json:"message"`
}

type statusResponse struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

func (a *HTTPAdapter) InitiatePayment(ctx context.Context, orderID string, amount money.Money, payer commands.PayerInfo) (*commands.InitiationResult, error) {
	body, err := json.Marshal(initiateRequest{
		OrderID:     orderID,
		AmountMinor: amount.Minor(),
		Currency:    amount.Currency(),
		Payer:       payer,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode initiation request")
	}

	start := time.Now()
	status, payload, err := a.post(ctx, "/v1/payments", body)
	if err != nil {
		metrics.ProviderCallDuration.WithLabelValues("initiate", callOutcome(err)).Observe(time.Since(start).Seconds())
		return nil, err
	}
	metrics.ProviderCallDuration.WithLabelValues("initiate", "ok").Observe(time.Since(start).Seconds())

	if status >= 400 && status < 500 {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider rejected initiation with status %d", status)),
			commands.ErrProviderRejected,
		)
	}
	if status >= 500 {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider returned status %d", status)),
			commands.ErrProviderNetwork,
		)
	}

	var decoded initiateResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode initiation response"), commands.ErrProviderNetwork)
	}

	return &commands.InitiationResult{
		ExternalRef:    decoded.ExternalRef,
		ProviderStatus: decoded.Status,
	}, nil
}

func (a *HTTPAdapter) QueryStatus(ctx context.Context, orderID string) (*commands.ProviderStatusResult, error) {
	start := time.Now()
	status, payload, err := a.get(ctx, "/v1/payments/"+orderID)
	if err != nil {
		metrics.ProviderCallDuration.WithLabelValues("query", callOutcome(err)).Observe(time.Since(start).Seconds())
		return nil, err
	}
	metrics.ProviderCallDuration.WithLabelValues("query", "ok").Observe(time.Since(start).Seconds())

	if status == http.StatusNotFound {
		return nil, errs.Mark(errs.New("provider does not know this order"), commands.ErrPaymentNotFound)
	}
	if status >= 400 {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider returned status %d", status)),
			commands.ErrProviderNetwork,
		)
	}

	var decoded statusResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode status response"), commands.ErrProviderNetwork)
	}

	return &commands.ProviderStatusResult{
		Provider:       decoded.Provider,
		ProviderStatus: decoded.Status,
	}, nil
}

func (a *HTTPAdapter) post(ctx context.Context, path string, body []byte) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errs.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Content-Type", "application/json")

	return a.do(req)
}

func (a *HTTPAdapter) get(ctx context.Context, path string) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return 0, nil, errs.Wrap(err, "failed to build provider request")
	}

	return a.do(req)
}

// do executes the request and drains the body while the request context is
// still alive.
func (a *HTTPAdapter) do(req *http.Request) (int, []byte, error) {
	resp, err := a.client.Do(req)
	if err != nil {
		return 0, nil, classifyTransportErr(err, "provider call failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, classifyTransportErr(err, "failed to read provider response")
	}

	return resp.StatusCode, payload, nil
}

func classifyTransportErr(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(errs.Wrap(err, "provider call timed out"), commands.ErrProviderTimeout)
	}
	return errs.Mark(errs.Wrap(err, msg), commands.ErrProviderNetwork)
}

func callOutcome(err error) string {
	switch {
	case errors.Is(err, commands.ErrProviderTimeout):
		return "timeout"
	case errors.Is(err, commands.ErrProviderRejected):
		return "rejected"
	default:
		return "error"
	}
}
