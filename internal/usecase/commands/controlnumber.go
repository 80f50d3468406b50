package commands

import (
	"context"
	"log/slog"
	"time"

	"controlpay/internal/domain/controlnumber"
	"controlpay/internal/domain/money"
	"controlpay/internal/infra"
	"controlpay/internal/pkg/clock"
	"controlpay/internal/pkg/config"
	"controlpay/internal/pkg/errs"
	"controlpay/internal/pkg/metrics"

	"github.com/google/uuid"
)

// GenerateSpec describes one control number to issue. Zero window durations
// fall back to the configured defaults (24h expiry, 7d validity).
type GenerateSpec struct {
	AmountMinor   int64
	Method        controlnumber.PaymentMethod
	MerchantID    uuid.UUID
	CustomerName  *string
	CustomerPhone *string
	ExpiresIn     time.Duration
	ValidFor      time.Duration
	IsReusable    bool
	MaxUses       int
}

type ControlNumberCommands interface {
	Generate(ctx context.Context, spec GenerateSpec) (*controlnumber.ControlNumber, error)
	BatchGenerate(ctx context.Context, spec GenerateSpec, count int) ([]*controlnumber.ControlNumber, error)
	Redeem(ctx context.Context, code string, paymentRef string, redeemer controlnumber.RedeemerInfo) (*controlnumber.ControlNumber, error)
	ExtendValidity(ctx context.Context, code string, extra time.Duration) (*controlnumber.ControlNumber, error)
	Cancel(ctx context.Context, code string) (*controlnumber.ControlNumber, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type controlNumberCommandsImpl struct {
	repo  ControlNumberRepository
	cfg   config.ControlNumberConfig
	clock clock.Clock
}

func NewControlNumberCommands(
	repo ControlNumberRepository,
	cfg config.Config,
	clock clock.Clock,
) ControlNumberCommands {
	return &controlNumberCommandsImpl{
		repo:  repo,
		cfg:   cfg.ControlNumber,
		clock: clock,
	}
}

func (c *controlNumberCommandsImpl) Generate(ctx context.Context, spec GenerateSpec) (*controlnumber.ControlNumber, error) {
	return c.generate(ctx, spec, nil)
}

func (c *controlNumberCommandsImpl) BatchGenerate(ctx context.Context, spec GenerateSpec, count int) ([]*controlnumber.ControlNumber, error) {
	if count < 1 || count > c.cfg.MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	batchID := uuid.New()
	result := make([]*controlnumber.ControlNumber, 0, count)
	for i := 0; i < count; i++ {
		cn, err := c.generate(ctx, spec, &batchID)
		if err != nil {
			return nil, errs.Wrap(err, "batch generation aborted")
		}
		result = append(result, cn)
	}

	return result, nil
}

// generate runs the bounded collision loop: build a candidate, attempt the
// insert, retry only on a duplicate-key rejection from the store.
func (c *controlNumberCommandsImpl) generate(ctx context.Context, spec GenerateSpec, batchID *uuid.UUID) (*controlnumber.ControlNumber, error) {
	amount, err := money.New(spec.AmountMinor, c.cfg.DefaultCurrency)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAmount)
	}

	method := spec.Method
	if method == "" {
		method = controlnumber.MethodAny
	}
	maxUses := spec.MaxUses
	if maxUses == 0 {
		maxUses = 1
	}
	expiresIn := spec.ExpiresIn
	if expiresIn == 0 {
		expiresIn = c.cfg.DefaultExpiry
	}
	validFor := spec.ValidFor
	if validFor == 0 {
		validFor = c.cfg.DefaultValidity
	}

	now := c.clock.Now()

	for attempt := 0; attempt < c.cfg.MaxAttempts; attempt++ {
		code, err := controlnumber.NewCandidateCode(c.cfg.Prefix, now, c.cfg.RandomDigits)
		if err != nil {
			return nil, errs.Wrap(err, "failed to build candidate code")
		}

		cn, err := controlnumber.NewControlNumber(
			code, amount, method, spec.MerchantID,
			spec.CustomerName, spec.CustomerPhone,
			now.Add(expiresIn), now.Add(validFor),
			spec.IsReusable, maxUses, batchID,
		)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}

		if err := c.repo.Create(ctx, cn); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				slog.Debug("control number collision, retrying",
					"attempt", attempt+1, "code", code.String())
				continue
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		metrics.ControlNumbersIssued.Inc()
		return cn, nil
	}

	slog.Error("control number generation exhausted retry budget",
		"attempts", c.cfg.MaxAttempts, "merchant_id", spec.MerchantID)
	return nil, ErrGenerationFailed
}

func (c *controlNumberCommandsImpl) Redeem(
	ctx context.Context,
	rawCode string,
	paymentRef string,
	redeemer controlnumber.RedeemerInfo,
) (*controlnumber.ControlNumber, error) {
	code, err := controlnumber.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	cn, err := c.repo.Redeem(ctx, code, paymentRef, redeemer, c.clock.Now())
	if err == nil {
		return cn, nil
	}
	if !infra.IsKind(err, infra.KindConflict) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	metrics.RedemptionConflicts.Inc()
	return nil, c.diagnoseRedeemFailure(ctx, code)
}

// diagnoseRedeemFailure re-reads purely to pick the precise error after the
// guard already rejected the write; the read never influences the outcome.
func (c *controlNumberCommandsImpl) diagnoseRedeemFailure(ctx context.Context, code controlnumber.Code) error {
	cn, err := c.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrControlNumberNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if ok, reason := cn.UsabilityAt(c.clock.Now()); !ok {
		switch reason {
		case controlnumber.ReasonExpired:
			return ErrControlNumberExpired
		case controlnumber.ReasonExhausted:
			return ErrAlreadyRedeemed
		default:
			return ErrNotActive
		}
	}

	// The code looks usable again (e.g. a reusable code freed a slot between
	// the write and this read); the original attempt still lost its race.
	return ErrAlreadyRedeemed
}

func (c *controlNumberCommandsImpl) ExtendValidity(ctx context.Context, rawCode string, extra time.Duration) (*controlnumber.ControlNumber, error) {
	if extra <= 0 {
		return nil, ErrValidation
	}
	code, err := controlnumber.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	current, err := c.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrControlNumberNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cn, err := c.repo.ExtendValidity(ctx, code, current.ExpiresAt().Add(extra), current.ValidUntil().Add(extra))
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrNotActive
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return cn, nil
}

func (c *controlNumberCommandsImpl) Cancel(ctx context.Context, rawCode string) (*controlnumber.ControlNumber, error) {
	code, err := controlnumber.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	cn, err := c.repo.Cancel(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrNotActive
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return cn, nil
}

func (c *controlNumberCommandsImpl) SweepExpired(ctx context.Context) (int64, error) {
	count, err := c.repo.SweepExpired(ctx, c.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count > 0 {
		slog.Info("expired control numbers archived", "count", count)
	}

	return count, nil
}
