package readstore

import (
	"context"

	"github.com/google/uuid"

	"controlpay/internal/infra"
	"controlpay/internal/infra/db"
	"controlpay/internal/pkg/pgconv"
	"controlpay/internal/usecase/queries"
)

const entitlementViewColumns = `
	id, payment_id, name, status, delivery_status, delivery_error,
	access_granted_at, expires_at, access_count, created_at, updated_at`

type EntitlementReadStore struct {
	db db.DBTX
}

func NewEntitlementReadStore(db db.DBTX) *EntitlementReadStore {
	return &EntitlementReadStore{
		db: db,
	}
}

func (r *EntitlementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EntitlementView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+entitlementViewColumns+`
		FROM entitlements
		WHERE id = $1`,
		id,
	)

	view, err := scanEntitlementView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("entitlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find entitlement by ID", err)
	}

	return view, nil
}

func (r *EntitlementReadStore) ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]queries.EntitlementView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+entitlementViewColumns+`
		FROM entitlements
		WHERE payment_id = $1
		ORDER BY created_at ASC`,
		paymentID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list entitlements", err)
	}
	defer rows.Close()

	var result []queries.EntitlementView
	for rows.Next() {
		view, err := scanEntitlementView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan entitlement row", err)
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate entitlement rows", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntitlementView(row rowScanner) (*queries.EntitlementView, error) {
	var view queries.EntitlementView
	err := row.Scan(
		&view.ID, &view.PaymentID, &view.Name, &view.Status,
		&view.DeliveryStatus, &view.DeliveryError,
		&view.AccessGrantedAt, &view.ExpiresAt, &view.AccessCount,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
