package repository

import (
	"context"
	"time"

	"controlpay/internal/domain/money"
	"controlpay/internal/domain/payment"
	"controlpay/internal/infra"
	"controlpay/internal/infra/db"
	"controlpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const paymentColumns = `
	id, order_id, legacy_ref, amount_minor, currency, status,
	external_ref, control_code, created_at, updated_at`

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(pool db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payments (
			id, order_id, legacy_ref, amount_minor, currency, status,
			external_ref, control_code, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())`,
		p.ID(), p.OrderID(), p.LegacyRef(), p.Amount().Minor(), p.Amount().Currency(),
		p.Status().String(), p.ExternalRef(), p.ControlCode(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("payment order id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}

	return nil
}

func (r *PaymentRepository) FindByOrder(ctx context.Context, orderID string) (*payment.Payment, error) {
	p, err := r.findBy(ctx, "order_id", orderID)
	if err == nil {
		return p, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	// Legacy alias fallback for orders migrated from the previous system.
	return r.findBy(ctx, "legacy_ref", orderID)
}

func (r *PaymentRepository) findBy(ctx context.Context, column, value string) (*payment.Payment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE `+column+` = $1`,
		value,
	)

	p, err := scanPayment(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	return p, nil
}

// ApplyStatusGuarded moves the denormalized status in one conditional write.
// The allowed-predecessor set comes from the domain state machine, so a
// terminal or already-equal status at write time simply affects zero rows.
func (r *PaymentRepository) ApplyStatusGuarded(
	ctx context.Context,
	tx db.DBTX,
	paymentID uuid.UUID,
	next payment.Status,
) (bool, error) {
	preds := payment.AllowedPredecessors(next)
	if len(preds) == 0 {
		return false, nil
	}

	allowed := make([]string, len(preds))
	for i, s := range preds {
		allowed[i] = s.String()
	}

	tag, err := tx.Exec(ctx, `
		UPDATE payments SET
			status = $2,
			updated_at = now()
		WHERE id = $1
		  AND status = ANY($3)`,
		paymentID, next.String(), allowed,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to apply payment status", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetExternalRef records the provider reference once; later writes are no-ops.
func (r *PaymentRepository) SetExternalRef(ctx context.Context, paymentID uuid.UUID, ref string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE payments SET
			external_ref = $2,
			updated_at = now()
		WHERE id = $1
		  AND external_ref IS NULL`,
		paymentID, ref,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set external reference", err)
	}

	return nil
}

func (r *PaymentRepository) AppendHistory(ctx context.Context, tx db.DBTX, entry payment.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payment_status_history (
			id, payment_id, status, message, source, informational, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		entry.ID, entry.PaymentID, entry.Status.String(), entry.Message,
		string(entry.Source), entry.Informational, entry.At,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append payment history", err)
	}

	return nil
}

func (r *PaymentRepository) History(ctx context.Context, paymentID uuid.UUID) ([]payment.HistoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, payment_id, status, message, source, informational, created_at
		FROM payment_status_history
		WHERE payment_id = $1
		ORDER BY created_at ASC`,
		paymentID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payment history", err)
	}
	defer rows.Close()

	var entries []payment.HistoryEntry
	for rows.Next() {
		var (
			e      payment.HistoryEntry
			status string
			source string
		)
		if err := rows.Scan(&e.ID, &e.PaymentID, &status, &e.Message, &source, &e.Informational, &e.At); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment history row", err)
		}
		e.Status = payment.Status(status)
		e.Source = payment.Source(source)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment history rows", err)
	}

	return entries, nil
}

func scanPayment(row rowScanner) (*payment.Payment, error) {
	var (
		id                       uuid.UUID
		orderID, currency        string
		legacyRef                *string
		amountMinor              int64
		status                   string
		externalRef, controlCode *string
		createdAt, updatedAt     time.Time
	)

	err := row.Scan(
		&id, &orderID, &legacyRef, &amountMinor, &currency, &status,
		&externalRef, &controlCode, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return payment.Reconstruct(
		id,
		orderID,
		legacyRef,
		money.Reconstruct(amountMinor, currency),
		payment.Status(status),
		externalRef,
		controlCode,
		createdAt, updatedAt,
	), nil
}
