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

type PgxDepositRepository struct {
	q Querier
}

var _ portsrepo.DepositRepository = (*PgxDepositRepository)(nil)

// SaveDeposit inserts a new security deposit.
func (r *PgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.SecurityDeposit) error {
	m := mapping.ToModelDeposit(deposit)

	query := `
		INSERT INTO security_deposits (deposit_id, student_id, amount, status, transaction_id, refunded_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.q.Exec(ctx, query,
		m.DepositID,
		m.StudentID,
		m.Amount,
		m.Status,
		m.TransactionID,
		m.RefundedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save security deposit %s: %w", m.DepositID, err)
	}
	return nil
}

// FindDepositByID retrieves a security deposit.
func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.SecurityDeposit, error) {
	query := `
		SELECT deposit_id, student_id, amount, status, transaction_id, refunded_at, created_at, created_by, last_updated_at, last_updated_by
		FROM security_deposits
		WHERE deposit_id = $1;
	`
	var m models.SecurityDeposit
	err := r.q.QueryRow(ctx, query, depositID).Scan(
		&m.DepositID,
		&m.StudentID,
		&m.Amount,
		&m.Status,
		&m.TransactionID,
		&m.RefundedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("security deposit %s: %w", depositID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find security deposit %s: %w", depositID, err)
	}

	deposit := mapping.ToDomainDeposit(m)
	return &deposit, nil
}

// UpdateDepositStatus flips a deposit between HELD and REFUNDED.
func (r *PgxDepositRepository) UpdateDepositStatus(ctx context.Context, depositID string, status domain.DepositStatus, refundedAt *time.Time, userID string, now time.Time) error {
	query := `
		UPDATE security_deposits
		SET status = $2, refunded_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE deposit_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, depositID, string(status), refundedAt, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update security deposit %s status: %w", depositID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("security deposit %s: %w", depositID, apperrors.ErrNotFound)
	}
	return nil
}

// SetDepositTransaction clears or sets the deposit's ledger entry link.
func (r *PgxDepositRepository) SetDepositTransaction(ctx context.Context, depositID string, transactionID *string, userID string, now time.Time) error {
	query := `
		UPDATE security_deposits
		SET transaction_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE deposit_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, depositID, transactionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set security deposit %s transaction: %w", depositID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("security deposit %s: %w", depositID, apperrors.ErrNotFound)
	}
	return nil
}
