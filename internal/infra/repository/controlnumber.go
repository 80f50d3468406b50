package repository

import (
	"context"
	"time"

	"controlpay/internal/domain/controlnumber"
	"controlpay/internal/domain/money"
	"controlpay/internal/infra"
	"controlpay/internal/infra/db"
	"controlpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const controlNumberColumns = `
	id, code, amount_minor, currency, payment_method, merchant_id,
	customer_name, customer_phone, status, expires_at, valid_until,
	is_reusable, max_uses, current_uses, used_at,
	redeemer_name, redeemer_phone, redeemer_channel,
	payment_ref, batch_id, created_at, updated_at`

type ControlNumberRepository struct {
	db db.DBTX
}

func NewControlNumberRepository(pool db.DBTX) *ControlNumberRepository {
	return &ControlNumberRepository{db: pool}
}

func (r *ControlNumberRepository) Create(ctx context.Context, cn *controlnumber.ControlNumber) error {
	var redeemerName, redeemerPhone, redeemerChannel *string
	if rb := cn.RedeemedBy(); rb != nil {
		redeemerName, redeemerPhone, redeemerChannel = &rb.Name, &rb.Phone, &rb.Channel
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO control_numbers (
			id, code, amount_minor, currency, payment_method, merchant_id,
			customer_name, customer_phone, status, expires_at, valid_until,
			is_reusable, max_uses, current_uses, used_at,
			redeemer_name, redeemer_phone, redeemer_channel,
			payment_ref, batch_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,now(),now())`,
		cn.ID(), cn.Code().String(), cn.Amount().Minor(), cn.Amount().Currency(),
		string(cn.Method()), cn.MerchantID(), cn.CustomerName(), cn.CustomerPhone(),
		cn.Status().String(), cn.ExpiresAt(), cn.ValidUntil(),
		cn.IsReusable(), cn.MaxUses(), cn.CurrentUses(), cn.UsedAt(),
		redeemerName, redeemerPhone, redeemerChannel,
		cn.PaymentRef(), cn.BatchID(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("control number code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create control number", err)
	}

	return nil
}

func (r *ControlNumberRepository) FindByCode(ctx context.Context, code controlnumber.Code) (*controlnumber.ControlNumber, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+controlNumberColumns+`
		FROM control_numbers
		WHERE code = $1`,
		code.String(),
	)

	cn, err := scanControlNumber(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("control number not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find control number by code", err)
	}

	return cn, nil
}

// Redeem is the double-spend guard: a single conditional UPDATE that succeeds
// only while the code is active, inside both validity windows and under its
// use budget at write time. Zero rows affected means a concurrent redeemer
// (or the clock) got there first; callers re-read for the precise reason.
func (r *ControlNumberRepository) Redeem(
	ctx context.Context,
	code controlnumber.Code,
	paymentRef string,
	redeemer controlnumber.RedeemerInfo,
	now time.Time,
) (*controlnumber.ControlNumber, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE control_numbers SET
			current_uses = current_uses + 1,
			status = CASE
				WHEN is_reusable AND current_uses + 1 < max_uses THEN 'active'
				ELSE 'used'
			END,
			used_at = $2,
			redeemer_name = $3,
			redeemer_phone = $4,
			redeemer_channel = $5,
			payment_ref = $6,
			updated_at = now()
		WHERE code = $1
		  AND status = 'active'
		  AND current_uses < max_uses
		  AND expires_at >= $2
		  AND valid_until >= $2
		RETURNING `+controlNumberColumns,
		code.String(), now, redeemer.Name, redeemer.Phone, redeemer.Channel, paymentRef,
	)

	cn, err := scanControlNumber(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("control number not redeemable", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to redeem control number", err)
	}

	return cn, nil
}

func (r *ControlNumberRepository) ExtendValidity(
	ctx context.Context,
	code controlnumber.Code,
	newExpiresAt, newValidUntil time.Time,
) (*controlnumber.ControlNumber, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE control_numbers SET
			expires_at = $2,
			valid_until = $3,
			updated_at = now()
		WHERE code = $1
		  AND status = 'active'
		RETURNING `+controlNumberColumns,
		code.String(), newExpiresAt, newValidUntil,
	)

	cn, err := scanControlNumber(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("control number not extendable", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to extend control number", err)
	}

	return cn, nil
}

func (r *ControlNumberRepository) Cancel(ctx context.Context, code controlnumber.Code) (*controlnumber.ControlNumber, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE control_numbers SET
			status = 'cancelled',
			updated_at = now()
		WHERE code = $1
		  AND status = 'active'
		RETURNING `+controlNumberColumns,
		code.String(),
	)

	cn, err := scanControlNumber(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("control number not cancellable", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to cancel control number", err)
	}

	return cn, nil
}

// SweepExpired archives overdue active codes. Idempotent, and safe to race
// with redemption: the redemption guard re-checks the windows inline.
func (r *ControlNumberRepository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE control_numbers SET
			status = 'expired',
			updated_at = now()
		WHERE status = 'active'
		  AND (expires_at < $1 OR valid_until < $1)`,
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired control numbers", err)
	}

	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanControlNumber(row rowScanner) (*controlnumber.ControlNumber, error) {
	var (
		id, merchantID                               uuid.UUID
		codeStr, currency, method, status            string
		amountMinor                                  int64
		customerName, customerPhone                  *string
		expiresAt, validUntil, createdAt, updatedAt  time.Time
		isReusable                                   bool
		maxUses, currentUses                         int
		usedAt                                       *time.Time
		redeemerName, redeemerPhone, redeemerChannel *string
		paymentRef                                   *string
		batchID                                      *uuid.UUID
	)

	err := row.Scan(
		&id, &codeStr, &amountMinor, &currency, &method, &merchantID,
		&customerName, &customerPhone, &status, &expiresAt, &validUntil,
		&isReusable, &maxUses, &currentUses, &usedAt,
		&redeemerName, &redeemerPhone, &redeemerChannel,
		&paymentRef, &batchID, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	var redeemer *controlnumber.RedeemerInfo
	if redeemerName != nil || redeemerPhone != nil || redeemerChannel != nil {
		redeemer = &controlnumber.RedeemerInfo{}
		if redeemerName != nil {
			redeemer.Name = *redeemerName
		}
		if redeemerPhone != nil {
			redeemer.Phone = *redeemerPhone
		}
		if redeemerChannel != nil {
			redeemer.Channel = *redeemerChannel
		}
	}

	return controlnumber.Reconstruct(
		id,
		controlnumber.Code(codeStr),
		money.Reconstruct(amountMinor, currency),
		controlnumber.PaymentMethod(method),
		merchantID,
		customerName, customerPhone,
		controlnumber.Status(status),
		expiresAt, validUntil,
		isReusable,
		maxUses, currentUses,
		usedAt,
		redeemer,
		paymentRef,
		batchID,
		createdAt, updatedAt,
	), nil
}
