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

type PgxExpenseRepository struct {
	q Querier
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense record.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expense_records (expense_id, title, category_id, amount, wallet_id, transaction_id, expense_date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.q.Exec(ctx, query,
		m.ExpenseID,
		m.Title,
		m.CategoryID,
		m.Amount,
		m.WalletID,
		m.TransactionID,
		m.ExpenseDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense record.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseRecord, error) {
	query := `
		SELECT expense_id, title, category_id, amount, wallet_id, transaction_id, expense_date, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM expense_records
		WHERE expense_id = $1;
	`
	var m models.ExpenseRecord
	err := r.q.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID,
		&m.Title,
		&m.CategoryID,
		&m.Amount,
		&m.WalletID,
		&m.TransactionID,
		&m.ExpenseDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

// SetExpenseTransaction back-links (or clears, on reversal) the expense's
// ledger entry.
func (r *PgxExpenseRepository) SetExpenseTransaction(ctx context.Context, expenseID string, transactionID *string, userID string, now time.Time) error {
	query := `
		UPDATE expense_records
		SET transaction_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE expense_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, expenseID, transactionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set expense %s transaction: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}
