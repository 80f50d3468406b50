package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"controlpay/internal/domain/payment"
	"controlpay/internal/pkg/metrics"
)

// ExternalEvent is one raw status notification from a payment rail, delivered
// via webhook or the event topic. Delivery is at-least-once and unordered.
type ExternalEvent struct {
	Provider    string `json:"provider"`
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	Message     string `json:"message"`
	ExternalRef string `json:"external_ref"`
}

type ReconciliationCommands interface {
	SubmitExternalEvent(ctx context.Context, event ExternalEvent) (*payment.Payment, error)
	PollStatus(ctx context.Context, orderID string) (*payment.Payment, error)
}

type reconciliationCommandsImpl struct {
	payments PaymentCommands
	provider ProviderAdapter
}

func NewReconciliationCommands(payments PaymentCommands, provider ProviderAdapter) ReconciliationCommands {
	return &reconciliationCommandsImpl{
		payments: payments,
		provider: provider,
	}
}

// Per-provider status vocabularies. Keys are upper-cased raw statuses.
// A raw status missing from its provider's table normalizes to pending so
// that an unknown report can never complete or fail a payment by accident.
var providerVocabularies = map[string]map[string]payment.Status{
	"airtel": {
		"TS":      payment.StatusCompleted,
		"TF":      payment.StatusFailed,
		"TA":      payment.StatusProcessing,
		"TIP":     payment.StatusProcessing,
		"EXPIRED": payment.StatusCancelled,
	},
	"mpesa": {
		"SUCCESS":   payment.StatusCompleted,
		"COMPLETED": payment.StatusCompleted,
		"FAILED":    payment.StatusFailed,
		"CANCELLED": payment.StatusCancelled,
		"PENDING":   payment.StatusProcessing,
	},
	"tigopesa": {
		"PAYMENT_ACCEPTED": payment.StatusCompleted,
		"PAYMENT_FAILED":   payment.StatusFailed,
		"PAYMENT_PENDING":  payment.StatusProcessing,
	},
	"bank": {
		"SETTLED":  payment.StatusCompleted,
		"BOUNCED":  payment.StatusFailed,
		"CLEARING": payment.StatusProcessing,
	},
}

var defaultVocabulary = map[string]payment.Status{
	"SUCCESS":    payment.StatusCompleted,
	"SUCCESSFUL": payment.StatusCompleted,
	"COMPLETED":  payment.StatusCompleted,
	"FAILED":     payment.StatusFailed,
	"FAILURE":    payment.StatusFailed,
	"REJECTED":   payment.StatusFailed,
	"CANCELLED":  payment.StatusCancelled,
	"PROCESSING": payment.StatusProcessing,
	"PENDING":    payment.StatusProcessing,
	"INITIATED":  payment.StatusProcessing,
}

// NormalizeProviderStatus maps a provider's raw status string onto the
// canonical ledger status.
func NormalizeProviderStatus(provider, raw string) (payment.Status, bool) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	vocabulary, ok := providerVocabularies[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		vocabulary = defaultVocabulary
	}
	status, ok := vocabulary[key]
	if !ok {
		return payment.StatusPending, false
	}
	return status, true
}

func (r *reconciliationCommandsImpl) SubmitExternalEvent(ctx context.Context, event ExternalEvent) (*payment.Payment, error) {
	if strings.TrimSpace(event.OrderID) == "" {
		return nil, ErrValidation
	}

	status, mapped := NormalizeProviderStatus(event.Provider, event.Status)
	if !mapped {
		slog.Warn("unmapped provider status, defaulting to pending",
			"provider", event.Provider, "status", event.Status, "order_id", event.OrderID)
		metrics.UnmappedProviderStatus.WithLabelValues(event.Provider).Inc()
	}

	message := event.Message
	if message == "" {
		message = fmt.Sprintf("provider %s reported %s", event.Provider, event.Status)
	}

	pay, err := r.payments.ApplyStatus(ctx, event.OrderID, status, message, payment.SourceProvider)
	if err != nil {
		metrics.EventsReconciled.WithLabelValues(event.Provider, "error").Inc()
		return nil, err
	}

	metrics.EventsReconciled.WithLabelValues(event.Provider, "applied").Inc()
	return pay, nil
}

func (r *reconciliationCommandsImpl) PollStatus(ctx context.Context, orderID string) (*payment.Payment, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrValidation
	}

	// Resolve through the ledger first so an unknown order is a NotFound,
	// not a provider round trip.
	pay, err := r.payments.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if pay.IsTerminal() {
		return pay, nil
	}

	result, err := r.provider.QueryStatus(ctx, pay.OrderID())
	if err != nil {
		return nil, err
	}

	status, mapped := NormalizeProviderStatus(result.Provider, result.ProviderStatus)
	if !mapped {
		slog.Warn("unmapped provider status on poll, defaulting to pending",
			"provider", result.Provider, "status", result.ProviderStatus, "order_id", orderID)
		metrics.UnmappedProviderStatus.WithLabelValues(result.Provider).Inc()
	}

	message := fmt.Sprintf("poll: provider %s reported %s", result.Provider, result.ProviderStatus)
	return r.payments.ApplyStatus(ctx, pay.OrderID(), status, message, payment.SourcePoll)
}
