package readstore

import (
	"context"

	"github.com/google/uuid"

	"controlpay/internal/infra"
	"controlpay/internal/infra/db"
	"controlpay/internal/pkg/pgconv"
	"controlpay/internal/usecase/queries"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(db db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		db: db,
	}
}

func (r *PaymentReadStore) FindByOrder(ctx context.Context, orderID string) (*queries.PaymentView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, order_id, legacy_ref, amount_minor, currency, status,
		       external_ref, control_code, created_at, updated_at
		FROM payments
		WHERE order_id = $1 OR legacy_ref = $1`,
		orderID,
	)

	var view queries.PaymentView
	err := row.Scan(
		&view.ID, &view.OrderID, &view.LegacyRef,
		&view.AmountMinor, &view.Currency, &view.Status,
		&view.ExternalRef, &view.ControlCode,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by order", err)
	}

	return &view, nil
}

func (r *PaymentReadStore) History(ctx context.Context, paymentID uuid.UUID) ([]queries.HistoryEntryView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT status, message, source, informational, created_at
		FROM payment_status_history
		WHERE payment_id = $1
		ORDER BY created_at ASC`,
		paymentID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payment history", err)
	}
	defer rows.Close()

	var result []queries.HistoryEntryView
	for rows.Next() {
		var entry queries.HistoryEntryView
		if err := rows.Scan(
			&entry.Status, &entry.Message, &entry.Source,
			&entry.Informational, &entry.At,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}

	return result, nil
}
