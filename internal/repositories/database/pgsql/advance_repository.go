package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/models"
	"github.com/unifin/campus_finance_app/internal/utils/mapping"
)

type PgxAdvanceRepository struct {
	q Querier
}

var _ portsrepo.AdvanceRepository = (*PgxAdvanceRepository)(nil)

// FindAdvanceByStudentID retrieves a student's prepaid credit row.
func (r *PgxAdvanceRepository) FindAdvanceByStudentID(ctx context.Context, studentID string) (*domain.StudentAdvanceBalance, error) {
	query := `
		SELECT student_id, balance, created_at, created_by, last_updated_at, last_updated_by
		FROM student_advance_balances
		WHERE student_id = $1;
	`
	var m models.StudentAdvanceBalance
	err := r.q.QueryRow(ctx, query, studentID).Scan(
		&m.StudentID,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("advance balance for student %s: %w", studentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find advance balance for student %s: %w", studentID, err)
	}

	advance := mapping.ToDomainAdvance(m)
	return &advance, nil
}

// SaveAdvance inserts a new advance balance row.
func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.StudentAdvanceBalance) error {
	m := mapping.ToModelAdvance(advance)

	query := `
		INSERT INTO student_advance_balances (student_id, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.q.Exec(ctx, query,
		m.StudentID,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save advance balance for student %s: %w", m.StudentID, err)
	}
	return nil
}

// ApplyAdvanceDelta atomically increments a student's credit balance and
// returns the post-update value. Missing rows are created on the fly so a
// first-ever credit needs no separate insert.
func (r *PgxAdvanceRepository) ApplyAdvanceDelta(ctx context.Context, studentID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	query := `
		INSERT INTO student_advance_balances (student_id, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $3, $4)
		ON CONFLICT (student_id)
		DO UPDATE SET balance = student_advance_balances.balance + EXCLUDED.balance, last_updated_at = $3, last_updated_by = $4
		RETURNING balance;
	`
	var newBalance decimal.Decimal
	err := r.q.QueryRow(ctx, query, studentID, delta, now, userID).Scan(&newBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to apply advance delta for student %s: %w", studentID, err)
	}
	return newBalance, nil
}
