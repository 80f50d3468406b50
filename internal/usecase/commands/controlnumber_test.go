//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"controlpay/internal/domain/controlnumber"
	"controlpay/internal/infra"
	"controlpay/internal/pkg/clock"
	"controlpay/internal/pkg/config"
	"controlpay/internal/usecase/commands"
	"controlpay/tests/common/builder"
	commandsmock "controlpay/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newControlNumberCommands(t *testing.T) (*commandsmock.MockControlNumberRepository, *clock.MockClock, commands.ControlNumberCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockControlNumberRepository(ctrl)
	clk := clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	return repo, clk, commands.NewControlNumberCommands(repo, config.NewTestConfig(), clk)
}

func defaultGenerateSpec() commands.GenerateSpec {
	return commands.GenerateSpec{
		AmountMinor: 50000,
		MerchantID:  uuid.New(),
	}
}

// =============================================================================
// Generate Tests
// =============================================================================

func TestControlNumberCommands_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: issues a code on the first attempt", func(t *testing.T) {
		repo, clk, uc := newControlNumberCommands(t)

		var created *controlnumber.ControlNumber
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cn *controlnumber.ControlNumber) error {
				created = cn
				return nil
			})

		actual, err := uc.Generate(ctx, defaultGenerateSpec())
		require.NoError(t, err)
		require.NotNil(t, actual)
		assert.Same(t, created, actual)
		assert.Equal(t, controlnumber.StatusActive, actual.Status())
		assert.Equal(t, int64(50000), actual.Amount().Minor())
		assert.Equal(t, "TZS", actual.Amount().Currency())
		assert.Equal(t, controlnumber.MethodAny, actual.Method())
		assert.Equal(t, 1, actual.MaxUses())
		assert.Equal(t, clk.Now().Add(24*time.Hour), actual.ExpiresAt())
		assert.Equal(t, clk.Now().Add(7*24*time.Hour), actual.ValidUntil())
		assert.Nil(t, actual.BatchID())
	})

	t.Run("success: retries once past a code collision", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		dup := infra.WrapRepoErr("duplicate code", errors.New("unique violation"), infra.KindDuplicateKey)
		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dup),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		)

		actual, err := uc.Generate(ctx, defaultGenerateSpec())
		require.NoError(t, err)
		require.NotNil(t, actual)
	})

	t.Run("error: retry budget exhausted on persistent collisions", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		dup := infra.WrapRepoErr("duplicate code", errors.New("unique violation"), infra.KindDuplicateKey)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dup).Times(config.NewTestConfig().ControlNumber.MaxAttempts)

		actual, err := uc.Generate(ctx, defaultGenerateSpec())
		assert.ErrorIs(t, err, commands.ErrGenerationFailed)
		assert.Nil(t, actual)
	})

	t.Run("error: non-duplicate store failure does not retry", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert failed", errors.New("connection reset")))

		actual, err := uc.Generate(ctx, defaultGenerateSpec())
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		assert.Nil(t, actual)
	})

	t.Run("error: non-positive amount", func(t *testing.T) {
		_, _, uc := newControlNumberCommands(t)

		spec := defaultGenerateSpec()
		spec.AmountMinor = 0

		actual, err := uc.Generate(ctx, spec)
		assert.ErrorIs(t, err, commands.ErrInvalidAmount)
		assert.Nil(t, actual)
	})
}

// =============================================================================
// BatchGenerate Tests
// =============================================================================

func TestControlNumberCommands_BatchGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: all codes share one batch id", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		batch, err := uc.BatchGenerate(ctx, defaultGenerateSpec(), 3)
		require.NoError(t, err)
		require.Len(t, batch, 3)

		require.NotNil(t, batch[0].BatchID())
		for _, cn := range batch[1:] {
			require.NotNil(t, cn.BatchID())
			assert.Equal(t, *batch[0].BatchID(), *cn.BatchID())
		}
	})

	t.Run("error: count below one", func(t *testing.T) {
		_, _, uc := newControlNumberCommands(t)

		batch, err := uc.BatchGenerate(ctx, defaultGenerateSpec(), 0)
		assert.ErrorIs(t, err, commands.ErrBatchTooLarge)
		assert.Nil(t, batch)
	})

	t.Run("error: count above the batch limit", func(t *testing.T) {
		_, _, uc := newControlNumberCommands(t)

		batch, err := uc.BatchGenerate(ctx, defaultGenerateSpec(), config.NewTestConfig().ControlNumber.MaxBatchSize+1)
		assert.ErrorIs(t, err, commands.ErrBatchTooLarge)
		assert.Nil(t, batch)
	})

	t.Run("error: mid-batch failure aborts", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		gomock.InOrder(
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(infra.WrapRepoErr("insert failed", errors.New("connection reset"))),
		)

		batch, err := uc.BatchGenerate(ctx, defaultGenerateSpec(), 3)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		assert.Nil(t, batch)
	})
}

// =============================================================================
// Redeem Tests
// =============================================================================

func TestControlNumberCommands_Redeem(t *testing.T) {
	ctx := context.Background()
	code := "991260830120012345"
	redeemer := controlnumber.RedeemerInfo{Name: "John Payer", Phone: "+255700000001", Channel: "mobile_money"}
	conflict := infra.WrapRepoErr("redeem guard rejected", nil, infra.KindConflict)

	t.Run("success: guarded write consumed one use", func(t *testing.T) {
		repo, clk, uc := newControlNumberCommands(t)

		redeemed := builder.NewControlNumberBuilder().WithCode(code).AsUsed().BuildReconstructed()
		repo.EXPECT().Redeem(gomock.Any(), controlnumber.Code(code), "TXN-001", redeemer, clk.Now()).
			Return(redeemed, nil)

		actual, err := uc.Redeem(ctx, code, "TXN-001", redeemer)
		require.NoError(t, err)
		assert.Same(t, redeemed, actual)
	})

	t.Run("error: malformed code never reaches the store", func(t *testing.T) {
		_, _, uc := newControlNumberCommands(t)

		actual, err := uc.Redeem(ctx, "not-a-code", "TXN-001", redeemer)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Nil(t, actual)
	})

	// Conflict diagnosis: the guard already rejected the write; the re-read
	// only picks the precise error.
	diagnosisCases := []struct {
		name    string
		current func(now time.Time) *controlnumber.ControlNumber
		errIs   error
	}{
		{
			name: "expired window reports expired",
			current: func(now time.Time) *controlnumber.ControlNumber {
				return builder.NewControlNumberBuilder().WithCode(code).AsExpired(now).BuildReconstructed()
			},
			errIs: commands.ErrControlNumberExpired,
		},
		{
			name: "exhausted uses report already redeemed",
			current: func(now time.Time) *controlnumber.ControlNumber {
				return builder.NewControlNumberBuilder().WithCode(code).AsUsed().BuildReconstructed()
			},
			errIs: commands.ErrAlreadyRedeemed,
		},
		{
			name: "cancelled reports not active",
			current: func(now time.Time) *controlnumber.ControlNumber {
				return builder.NewControlNumberBuilder().WithCode(code).WithStatus(controlnumber.StatusCancelled).BuildReconstructed()
			},
			errIs: commands.ErrNotActive,
		},
		{
			name: "usable again still reports already redeemed",
			current: func(now time.Time) *controlnumber.ControlNumber {
				return builder.NewControlNumberBuilder().WithCode(code).WithReusable(3).BuildReconstructed()
			},
			errIs: commands.ErrAlreadyRedeemed,
		},
	}

	for _, tc := range diagnosisCases {
		t.Run("conflict: "+tc.name, func(t *testing.T) {
			repo, clk, uc := newControlNumberCommands(t)

			repo.EXPECT().Redeem(gomock.Any(), controlnumber.Code(code), "TXN-001", redeemer, clk.Now()).
				Return(nil, conflict)
			repo.EXPECT().FindByCode(gomock.Any(), controlnumber.Code(code)).
				Return(tc.current(clk.Now()), nil)

			actual, err := uc.Redeem(ctx, code, "TXN-001", redeemer)
			assert.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, actual)
		})
	}

	t.Run("conflict: code vanished reports not found", func(t *testing.T) {
		repo, clk, uc := newControlNumberCommands(t)

		repo.EXPECT().Redeem(gomock.Any(), controlnumber.Code(code), "TXN-001", redeemer, clk.Now()).
			Return(nil, conflict)
		repo.EXPECT().FindByCode(gomock.Any(), controlnumber.Code(code)).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		actual, err := uc.Redeem(ctx, code, "TXN-001", redeemer)
		assert.ErrorIs(t, err, commands.ErrControlNumberNotFound)
		assert.Nil(t, actual)
	})

	t.Run("error: store failure surfaces as database error", func(t *testing.T) {
		repo, clk, uc := newControlNumberCommands(t)

		repo.EXPECT().Redeem(gomock.Any(), controlnumber.Code(code), "TXN-001", redeemer, clk.Now()).
			Return(nil, infra.WrapRepoErr("update failed", errors.New("connection reset")))

		actual, err := uc.Redeem(ctx, code, "TXN-001", redeemer)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
		assert.Nil(t, actual)
	})
}

// =============================================================================
// ExtendValidity / Cancel / SweepExpired Tests
// =============================================================================

func TestControlNumberCommands_ExtendValidity(t *testing.T) {
	ctx := context.Background()
	code := "991260830120012345"

	t.Run("success: both windows shift by the extension", func(t *testing.T) {
		repo, clk, uc := newControlNumberCommands(t)

		current := builder.NewControlNumberBuilder().WithCode(code).
			WithWindow(clk.Now().Add(24*time.Hour), clk.Now().Add(7*24*time.Hour)).
			BuildReconstructed()
		extended := builder.NewControlNumberBuilder().WithCode(code).BuildReconstructed()

		repo.EXPECT().FindByCode(gomock.Any(), controlnumber.Code(code)).Return(current, nil)
		repo.EXPECT().ExtendValidity(gomock.Any(), controlnumber.Code(code),
			current.ExpiresAt().Add(48*time.Hour), current.ValidUntil().Add(48*time.Hour)).
			Return(extended, nil)

		actual, err := uc.ExtendValidity(ctx, code, 48*time.Hour)
		require.NoError(t, err)
		assert.Same(t, extended, actual)
	})

	t.Run("error: non-positive extension", func(t *testing.T) {
		_, _, uc := newControlNumberCommands(t)

		actual, err := uc.ExtendValidity(ctx, code, 0)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.Nil(t, actual)
	})

	t.Run("error: unknown code", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		repo.EXPECT().FindByCode(gomock.Any(), controlnumber.Code(code)).
			Return(nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound))

		actual, err := uc.ExtendValidity(ctx, code, time.Hour)
		assert.ErrorIs(t, err, commands.ErrControlNumberNotFound)
		assert.Nil(t, actual)
	})

	t.Run("error: terminal code cannot be extended", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		current := builder.NewControlNumberBuilder().WithCode(code).WithStatus(controlnumber.StatusCancelled).BuildReconstructed()
		repo.EXPECT().FindByCode(gomock.Any(), controlnumber.Code(code)).Return(current, nil)
		repo.EXPECT().ExtendValidity(gomock.Any(), controlnumber.Code(code), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("guard rejected", nil, infra.KindConflict))

		actual, err := uc.ExtendValidity(ctx, code, time.Hour)
		assert.ErrorIs(t, err, commands.ErrNotActive)
		assert.Nil(t, actual)
	})
}

func TestControlNumberCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	code := "991260830120012345"

	t.Run("success", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		cancelled := builder.NewControlNumberBuilder().WithCode(code).WithStatus(controlnumber.StatusCancelled).BuildReconstructed()
		repo.EXPECT().Cancel(gomock.Any(), controlnumber.Code(code)).Return(cancelled, nil)

		actual, err := uc.Cancel(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, controlnumber.StatusCancelled, actual.Status())
	})

	t.Run("error: already terminal", func(t *testing.T) {
		repo, _, uc := newControlNumberCommands(t)

		repo.EXPECT().Cancel(gomock.Any(), controlnumber.Code(code)).
			Return(nil, infra.WrapRepoErr("guard rejected", nil, infra.KindConflict))

		actual, err := uc.Cancel(ctx, code)
		assert.ErrorIs(t, err, commands.ErrNotActive)
		assert.Nil(t, actual)
	})
}

func TestControlNumberCommands_SweepExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reports swept count", func(t *testing.T) {
		repo, clk, uc := newControlNumberCommands(t)

		repo.EXPECT().SweepExpired(gomock.Any(), clk.Now()).Return(int64(7), nil)

		count, err := uc.SweepExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})

	t.Run("error: store failure", func(t *testing.T) {
		repo, clk, uc := newControlNumberCommands(t)

		repo.EXPECT().SweepExpired(gomock.Any(), clk.Now()).
			Return(int64(0), infra.WrapRepoErr("update failed", errors.New("connection reset")))

		_, err := uc.SweepExpired(ctx)
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
