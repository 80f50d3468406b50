//go:build unit

package commands_test

import (
	"context"
	"testing"

	"controlpay/internal/domain/payment"
	"controlpay/internal/usecase/commands"
	"controlpay/tests/common/builder"
	commandsmock "controlpay/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReconciliationCommands(t *testing.T) (*commandsmock.MockPaymentCommands, *commandsmock.MockProviderAdapter, commands.ReconciliationCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	payments := commandsmock.NewMockPaymentCommands(ctrl)
	provider := commandsmock.NewMockProviderAdapter(ctrl)
	return payments, provider, commands.NewReconciliationCommands(payments, provider)
}

// =============================================================================
// NormalizeProviderStatus Tests
// =============================================================================

func TestNormalizeProviderStatus(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		raw        string
		want       payment.Status
		wantMapped bool
	}{
		{name: "airtel settled", provider: "airtel", raw: "TS", want: payment.StatusCompleted, wantMapped: true},
		{name: "airtel failed", provider: "airtel", raw: "TF", want: payment.StatusFailed, wantMapped: true},
		{name: "airtel ambiguous is in flight", provider: "airtel", raw: "TA", want: payment.StatusProcessing, wantMapped: true},
		{name: "airtel in progress", provider: "airtel", raw: "TIP", want: payment.StatusProcessing, wantMapped: true},
		{name: "airtel expired", provider: "airtel", raw: "EXPIRED", want: payment.StatusCancelled, wantMapped: true},
		{name: "mpesa success", provider: "mpesa", raw: "SUCCESS", want: payment.StatusCompleted, wantMapped: true},
		{name: "tigopesa accepted", provider: "tigopesa", raw: "PAYMENT_ACCEPTED", want: payment.StatusCompleted, wantMapped: true},
		{name: "bank settled", provider: "bank", raw: "SETTLED", want: payment.StatusCompleted, wantMapped: true},
		{name: "raw status is case insensitive", provider: "airtel", raw: "ts", want: payment.StatusCompleted, wantMapped: true},
		{name: "provider is case insensitive", provider: "Airtel", raw: "TS", want: payment.StatusCompleted, wantMapped: true},
		{name: "whitespace tolerated", provider: " airtel ", raw: " TS ", want: payment.StatusCompleted, wantMapped: true},
		{name: "unknown provider falls back to default vocabulary", provider: "halopesa", raw: "SUCCESS", want: payment.StatusCompleted, wantMapped: true},
		{name: "unknown provider with default failure term", provider: "halopesa", raw: "REJECTED", want: payment.StatusFailed, wantMapped: true},
		{name: "unmapped status defaults to pending", provider: "airtel", raw: "WAT", want: payment.StatusPending, wantMapped: false},
		{name: "unmapped status on unknown provider", provider: "halopesa", raw: "WAT", want: payment.StatusPending, wantMapped: false},
		{name: "empty status is unmapped", provider: "airtel", raw: "", want: payment.StatusPending, wantMapped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mapped := commands.NormalizeProviderStatus(tt.provider, tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMapped, mapped)
		})
	}
}

// =============================================================================
// SubmitExternalEvent Tests
// =============================================================================

func TestReconciliationCommands_SubmitExternalEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success: mapped status applied with provider source", func(t *testing.T) {
		payments, _, uc := newReconciliationCommands(t)

		completed := builder.NewPaymentBuilder().WithStatus(payment.StatusCompleted).BuildReconstructed()
		payments.EXPECT().ApplyStatus(gomock.Any(), "ORD-1", payment.StatusCompleted, "paid in full", payment.SourceProvider).
			Return(completed, nil)

		actual, err := uc.SubmitExternalEvent(ctx, commands.ExternalEvent{
			Provider: "airtel",
			OrderID:  "ORD-1",
			Status:   "TS",
			Message:  "paid in full",
		})
		require.NoError(t, err)
		assert.Same(t, completed, actual)
	})

	t.Run("empty message gets a synthesized one", func(t *testing.T) {
		payments, _, uc := newReconciliationCommands(t)

		pay := builder.NewPaymentBuilder().WithStatus(payment.StatusFailed).BuildReconstructed()
		payments.EXPECT().ApplyStatus(gomock.Any(), "ORD-1", payment.StatusFailed,
			"provider airtel reported TF", payment.SourceProvider).
			Return(pay, nil)

		_, err := uc.SubmitExternalEvent(ctx, commands.ExternalEvent{
			Provider: "airtel",
			OrderID:  "ORD-1",
			Status:   "TF",
		})
		require.NoError(t, err)
	})

	t.Run("unmapped status is folded in as pending", func(t *testing.T) {
		payments, _, uc := newReconciliationCommands(t)

		// Pending has no legal predecessors, so the ledger guard degrades
		// this to an informational entry downstream.
		pay := builder.NewPaymentBuilder().BuildReconstructed()
		payments.EXPECT().ApplyStatus(gomock.Any(), "ORD-1", payment.StatusPending, gomock.Any(), payment.SourceProvider).
			Return(pay, nil)

		actual, err := uc.SubmitExternalEvent(ctx, commands.ExternalEvent{
			Provider: "airtel",
			OrderID:  "ORD-1",
			Status:   "SOMETHING_NEW",
		})
		require.NoError(t, err)
		assert.Same(t, pay, actual)
	})

	t.Run("error: empty order id", func(t *testing.T) {
		_, _, uc := newReconciliationCommands(t)

		actual, err := uc.SubmitExternalEvent(ctx, commands.ExternalEvent{
			Provider: "airtel",
			Status:   "TS",
		})
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Nil(t, actual)
	})

	t.Run("error: unknown order surfaces", func(t *testing.T) {
		payments, _, uc := newReconciliationCommands(t)

		payments.EXPECT().ApplyStatus(gomock.Any(), "ORD-404", payment.StatusCompleted, gomock.Any(), payment.SourceProvider).
			Return(nil, commands.ErrPaymentNotFound)

		actual, err := uc.SubmitExternalEvent(ctx, commands.ExternalEvent{
			Provider: "airtel",
			OrderID:  "ORD-404",
			Status:   "TS",
		})
		assert.ErrorIs(t, err, commands.ErrPaymentNotFound)
		assert.Nil(t, actual)
	})
}

// =============================================================================
// PollStatus Tests
// =============================================================================

func TestReconciliationCommands_PollStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: provider answer folds in with poll source", func(t *testing.T) {
		payments, provider, uc := newReconciliationCommands(t)

		pending := builder.NewPaymentBuilder().WithOrderID("ORD-1").BuildReconstructed()
		completed := builder.NewPaymentBuilder().WithOrderID("ORD-1").WithStatus(payment.StatusCompleted).BuildReconstructed()

		payments.EXPECT().FindByOrder(gomock.Any(), "ORD-1").Return(pending, nil)
		provider.EXPECT().QueryStatus(gomock.Any(), "ORD-1").
			Return(&commands.ProviderStatusResult{Provider: "airtel", ProviderStatus: "TS"}, nil)
		payments.EXPECT().ApplyStatus(gomock.Any(), "ORD-1", payment.StatusCompleted,
			"poll: provider airtel reported TS", payment.SourcePoll).
			Return(completed, nil)

		actual, err := uc.PollStatus(ctx, "ORD-1")
		require.NoError(t, err)
		assert.True(t, actual.IsCompleted())
	})

	t.Run("terminal payment short-circuits without a provider round trip", func(t *testing.T) {
		payments, _, uc := newReconciliationCommands(t)

		completed := builder.NewPaymentBuilder().WithOrderID("ORD-1").WithStatus(payment.StatusCompleted).BuildReconstructed()
		payments.EXPECT().FindByOrder(gomock.Any(), "ORD-1").Return(completed, nil)

		actual, err := uc.PollStatus(ctx, "ORD-1")
		require.NoError(t, err)
		assert.Same(t, completed, actual)
	})

	t.Run("error: unknown order is resolved before the provider call", func(t *testing.T) {
		payments, _, uc := newReconciliationCommands(t)

		payments.EXPECT().FindByOrder(gomock.Any(), "ORD-404").Return(nil, commands.ErrPaymentNotFound)

		actual, err := uc.PollStatus(ctx, "ORD-404")
		assert.ErrorIs(t, err, commands.ErrPaymentNotFound)
		assert.Nil(t, actual)
	})

	t.Run("error: provider timeout surfaces without touching the ledger", func(t *testing.T) {
		payments, provider, uc := newReconciliationCommands(t)

		pending := builder.NewPaymentBuilder().WithOrderID("ORD-1").BuildReconstructed()
		payments.EXPECT().FindByOrder(gomock.Any(), "ORD-1").Return(pending, nil)
		provider.EXPECT().QueryStatus(gomock.Any(), "ORD-1").Return(nil, commands.ErrProviderTimeout)

		actual, err := uc.PollStatus(ctx, "ORD-1")
		assert.ErrorIs(t, err, commands.ErrProviderTimeout)
		assert.Nil(t, actual)
	})

	t.Run("error: empty order id", func(t *testing.T) {
		_, _, uc := newReconciliationCommands(t)

		actual, err := uc.PollStatus(ctx, "")
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Nil(t, actual)
	})
}
