package repository

import (
	"context"
	"time"

	"controlpay/internal/domain/entitlement"
	"controlpay/internal/infra"
	"controlpay/internal/infra/db"
	"controlpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const entitlementColumns = `
	id, payment_id, name, status, delivery_status, delivery_error,
	access_token, access_granted_at, expires_at, access_count,
	created_at, updated_at`

type EntitlementRepository struct {
	db db.DBTX
}

func NewEntitlementRepository(pool db.DBTX) *EntitlementRepository {
	return &EntitlementRepository{db: pool}
}

func (r *EntitlementRepository) Create(ctx context.Context, tx db.DBTX, e *entitlement.Entitlement) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO entitlements (
			id, payment_id, name, status, delivery_status, delivery_error,
			access_token, access_granted_at, expires_at, access_count,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,now(),now())`,
		e.ID(), e.PaymentID(), e.Name(), e.Status().String(),
		string(e.DeliveryStatus()), e.DeliveryError(),
		e.AccessToken(), e.AccessGrantedAt(), e.ExpiresAt(), e.AccessCount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create entitlement", err)
	}

	return nil
}

func (r *EntitlementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entitlement.Entitlement, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+entitlementColumns+`
		FROM entitlements
		WHERE id = $1`,
		id,
	)

	e, err := scanEntitlement(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("entitlement not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find entitlement", err)
	}

	return e, nil
}

func (r *EntitlementRepository) FindPendingByPayment(ctx context.Context, paymentID uuid.UUID) ([]*entitlement.Entitlement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+entitlementColumns+`
		FROM entitlements
		WHERE payment_id = $1
		  AND status = 'pending'
		ORDER BY created_at ASC`,
		paymentID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending entitlements", err)
	}
	defer rows.Close()

	var result []*entitlement.Entitlement
	for rows.Next() {
		e, err := scanEntitlement(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan entitlement row", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate entitlement rows", err)
	}

	return result, nil
}

// Activate flips pending → active in one conditional write, which is what
// makes redelivered completion events harmless: an entitlement that is no
// longer pending affects zero rows.
func (r *EntitlementRepository) Activate(
	ctx context.Context,
	id uuid.UUID,
	accessToken string,
	grantedAt time.Time,
	expiresAt *time.Time,
) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE entitlements SET
			status = 'active',
			delivery_status = 'delivered',
			delivery_error = NULL,
			access_token = COALESCE(access_token, $2),
			access_granted_at = $3,
			expires_at = $4,
			updated_at = now()
		WHERE id = $1
		  AND status = 'pending'`,
		id, accessToken, grantedAt, expiresAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to activate entitlement", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *EntitlementRepository) MarkDeliveryFailed(ctx context.Context, id uuid.UUID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE entitlements SET
			delivery_status = 'failed',
			delivery_error = $2,
			updated_at = now()
		WHERE id = $1`,
		id, reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark entitlement delivery failed", err)
	}

	return nil
}

func (r *EntitlementRepository) IncrementAccessCount(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE entitlements SET
			access_count = access_count + 1,
			updated_at = now()
		WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment access count", err)
	}

	return nil
}

func (r *EntitlementRepository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE entitlements SET
			status = 'expired',
			updated_at = now()
		WHERE status = 'active'
		  AND expires_at IS NOT NULL
		  AND expires_at < $1`,
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired entitlements", err)
	}

	return tag.RowsAffected(), nil
}

func scanEntitlement(row rowScanner) (*entitlement.Entitlement, error) {
	var (
		id, paymentID              uuid.UUID
		name, status, delivery     string
		deliveryError, accessToken *string
		grantedAt, expiresAt       *time.Time
		accessCount                int64
		createdAt, updatedAt       time.Time
	)

	err := row.Scan(
		&id, &paymentID, &name, &status, &delivery, &deliveryError,
		&accessToken, &grantedAt, &expiresAt, &accessCount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entitlement.Reconstruct(
		id, paymentID,
		name,
		entitlement.Status(status),
		entitlement.DeliveryStatus(delivery),
		deliveryError,
		accessToken,
		grantedAt, expiresAt,
		accessCount,
		createdAt, updatedAt,
	), nil
}
