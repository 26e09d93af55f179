package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/models"
	"github.com/unifin/campus_finance_app/internal/utils/mapping"
)

type PgxRefundRepository struct {
	q Querier
}

var _ portsrepo.RefundRepository = (*PgxRefundRepository)(nil)

// SaveRefund inserts a new refund record.
func (r *PgxRefundRepository) SaveRefund(ctx context.Context, refund domain.Refund) error {
	m := mapping.ToModelRefund(refund)

	query := `
		INSERT INTO refunds (refund_id, student_id, refund_type, amount, reason, refund_number, transaction_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.q.Exec(ctx, query,
		m.RefundID,
		m.StudentID,
		m.RefundType,
		m.Amount,
		m.Reason,
		m.RefundNumber,
		m.TransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save refund %s: %w", m.RefundID, err)
	}
	return nil
}

// FindRefundByID retrieves a refund record.
func (r *PgxRefundRepository) FindRefundByID(ctx context.Context, refundID string) (*domain.Refund, error) {
	query := `
		SELECT refund_id, student_id, refund_type, amount, reason, refund_number, transaction_id, created_at, created_by, last_updated_at, last_updated_by
		FROM refunds
		WHERE refund_id = $1;
	`
	var m models.Refund
	err := r.q.QueryRow(ctx, query, refundID).Scan(
		&m.RefundID,
		&m.StudentID,
		&m.RefundType,
		&m.Amount,
		&m.Reason,
		&m.RefundNumber,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("refund %s: %w", refundID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find refund %s: %w", refundID, err)
	}

	refund := mapping.ToDomainRefund(m)
	return &refund, nil
}

// SetRefundTransaction clears or sets the refund's ledger entry link.
func (r *PgxRefundRepository) SetRefundTransaction(ctx context.Context, refundID string, transactionID *string, userID string, now time.Time) error {
	query := `
		UPDATE refunds
		SET transaction_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE refund_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, refundID, transactionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set refund %s transaction: %w", refundID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refund %s: %w", refundID, apperrors.ErrNotFound)
	}
	return nil
}
