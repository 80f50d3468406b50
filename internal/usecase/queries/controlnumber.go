package queries

import (
	"context"

	"github.com/google/uuid"

	"controlpay/internal/domain/controlnumber"
	"controlpay/internal/infra"
	"controlpay/internal/pkg/clock"
	"controlpay/internal/pkg/errs"
)

var ErrControlNumberNotFound = errs.New("control number not found")

type ControlNumberQueries interface {
	Validate(ctx context.Context, code string, expectedAmountMinor *int64) (*ValidationView, error)
	GetByCode(ctx context.Context, code string) (*ControlNumberView, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, status *string) ([]ControlNumberListItem, error)
}

type ControlNumberReadStore interface {
	FindByCode(ctx context.Context, code string) (*ControlNumberView, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, status *string) ([]ControlNumberListItem, error)
}

type controlNumberQueriesImpl struct {
	readStore ControlNumberReadStore
	clock     clock.Clock
}

func NewControlNumberQueries(readStore ControlNumberReadStore, clock clock.Clock) ControlNumberQueries {
	return &controlNumberQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// Validate is a pure read; it never mutates the record. An invalid result
// carries one reason, checked in the same order the redeem guard enforces.
func (q *controlNumberQueriesImpl) Validate(ctx context.Context, code string, expectedAmountMinor *int64) (*ValidationView, error) {
	cn, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return invalidView(controlnumber.ReasonNotFound, nil), nil
		}
		return nil, err
	}

	now := q.clock.Now()
	switch {
	case cn.Status != controlnumber.StatusActive.String():
		return invalidView(controlnumber.ReasonInactive, cn), nil
	case now.After(cn.ExpiresAt) || now.After(cn.ValidUntil):
		return invalidView(controlnumber.ReasonExpired, cn), nil
	case cn.CurrentUses >= cn.MaxUses:
		return invalidView(controlnumber.ReasonExhausted, cn), nil
	case expectedAmountMinor != nil && *expectedAmountMinor != cn.AmountMinor:
		return invalidView(controlnumber.ReasonAmountMismatch, cn), nil
	}

	return &ValidationView{Valid: true, ControlNumber: cn}, nil
}

func (q *controlNumberQueriesImpl) GetByCode(ctx context.Context, code string) (*ControlNumberView, error) {
	cn, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrControlNumberNotFound
		}
		return nil, err
	}
	return cn, nil
}

func (q *controlNumberQueriesImpl) ListByMerchant(ctx context.Context, merchantID uuid.UUID, status *string) ([]ControlNumberListItem, error) {
	return q.readStore.ListByMerchant(ctx, merchantID, status)
}

func invalidView(reason controlnumber.Reason, cn *ControlNumberView) *ValidationView {
	r := reason.String()
	return &ValidationView{Valid: false, Reason: &r, ControlNumber: cn}
}
