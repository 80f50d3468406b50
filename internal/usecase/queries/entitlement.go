package queries

import (
	"context"

	"github.com/google/uuid"

	"controlpay/internal/infra"
	"controlpay/internal/pkg/errs"
)

var ErrEntitlementNotFound = errs.New("entitlement not found")

type EntitlementQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EntitlementView, error)
	ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]EntitlementView, error)
}

type EntitlementReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EntitlementView, error)
	ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]EntitlementView, error)
}

type entitlementQueriesImpl struct {
	readStore EntitlementReadStore
}

func NewEntitlementQueries(readStore EntitlementReadStore) EntitlementQueries {
	return &entitlementQueriesImpl{
		readStore: readStore,
	}
}

func (q *entitlementQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EntitlementView, error) {
	ent, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEntitlementNotFound
		}
		return nil, err
	}
	return ent, nil
}

func (q *entitlementQueriesImpl) ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]EntitlementView, error) {
	return q.readStore.ListByPayment(ctx, paymentID)
}
