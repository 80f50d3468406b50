package queries

import (
	"context"

	"github.com/google/uuid"

	"controlpay/internal/infra"
	"controlpay/internal/pkg/errs"
)

var ErrPaymentNotFound = errs.New("payment not found")

type PaymentQueries interface {
	GetByOrder(ctx context.Context, orderID string) (*PaymentView, error)
}

type PaymentReadStore interface {
	FindByOrder(ctx context.Context, orderID string) (*PaymentView, error)
	History(ctx context.Context, paymentID uuid.UUID) ([]HistoryEntryView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{
		readStore: readStore,
	}
}

// GetByOrder resolves orderID with the legacy alias fallback and attaches the
// full status history, informational entries included.
func (q *paymentQueriesImpl) GetByOrder(ctx context.Context, orderID string) (*PaymentView, error) {
	view, err := q.readStore.FindByOrder(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	history, err := q.readStore.History(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.History = history

	return view, nil
}
