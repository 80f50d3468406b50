package readstore

import (
	"context"

	"github.com/google/uuid"

	"controlpay/internal/infra"
	"controlpay/internal/infra/db"
	"controlpay/internal/pkg/pgconv"
	"controlpay/internal/usecase/queries"
)

type ControlNumberReadStore struct {
	db db.DBTX
}

func NewControlNumberReadStore(db db.DBTX) *ControlNumberReadStore {
	return &ControlNumberReadStore{
		db: db,
	}
}

func (r *ControlNumberReadStore) FindByCode(ctx context.Context, code string) (*queries.ControlNumberView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, code, amount_minor, currency, payment_method, merchant_id,
		       customer_name, customer_phone, status, expires_at, valid_until,
		       is_reusable, max_uses, current_uses, used_at, payment_ref,
		       batch_id, created_at, updated_at
		FROM control_numbers
		WHERE code = $1`,
		code,
	)

	var view queries.ControlNumberView
	err := row.Scan(
		&view.ID, &view.Code, &view.AmountMinor, &view.Currency,
		&view.PaymentMethod, &view.MerchantID,
		&view.CustomerName, &view.CustomerPhone, &view.Status,
		&view.ExpiresAt, &view.ValidUntil,
		&view.IsReusable, &view.MaxUses, &view.CurrentUses,
		&view.UsedAt, &view.PaymentRef, &view.BatchID,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("control number not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find control number by code", err)
	}

	return &view, nil
}

func (r *ControlNumberReadStore) ListByMerchant(ctx context.Context, merchantID uuid.UUID, status *string) ([]queries.ControlNumberListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, amount_minor, status, expires_at, valid_until,
		       current_uses, max_uses, created_at
		FROM control_numbers
		WHERE merchant_id = $1
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
		LIMIT 200`,
		merchantID, status,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list control numbers", err)
	}
	defer rows.Close()

	var result []queries.ControlNumberListItem
	for rows.Next() {
		var item queries.ControlNumberListItem
		if err := rows.Scan(
			&item.ID, &item.Code, &item.AmountMinor, &item.Status,
			&item.ExpiresAt, &item.ValidUntil,
			&item.CurrentUses, &item.MaxUses, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan control number row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate control number rows", err)
	}

	return result, nil
}
