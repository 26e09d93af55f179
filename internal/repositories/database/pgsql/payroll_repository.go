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

type PgxPayrollRepository struct {
	q Querier
}

var _ portsrepo.PayrollRepository = (*PgxPayrollRepository)(nil)

// FindSlipByID retrieves a salary slip. The slip schema is owned by the HR
// module.
func (r *PgxPayrollRepository) FindSlipByID(ctx context.Context, slipID string) (*domain.SalarySlip, error) {
	query := `
		SELECT slip_id, employee_id, month, year, base_salary, allowances, deductions, status, paid_at, transaction_id, created_at, created_by, last_updated_at, last_updated_by
		FROM salary_slips
		WHERE slip_id = $1;
	`
	var m models.SalarySlip
	err := r.q.QueryRow(ctx, query, slipID).Scan(
		&m.SlipID,
		&m.EmployeeID,
		&m.Month,
		&m.Year,
		&m.BaseSalary,
		&m.Allowances,
		&m.Deductions,
		&m.Status,
		&m.PaidAt,
		&m.TransactionID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("salary slip %s: %w", slipID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find salary slip %s: %w", slipID, err)
	}

	slip := mapping.ToDomainSlip(m)
	return &slip, nil
}

// UpdateSlipPayment writes back disbursement state: PAID with the paid date
// and transaction link, or back to DRAFT with both cleared on reversal.
func (r *PgxPayrollRepository) UpdateSlipPayment(ctx context.Context, slipID string, status domain.SlipStatus, paidAt *time.Time, transactionID *string, userID string, now time.Time) error {
	query := `
		UPDATE salary_slips
		SET status = $2, paid_at = $3, transaction_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE slip_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, slipID, string(status), paidAt, transactionID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update salary slip %s payment: %w", slipID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("salary slip %s: %w", slipID, apperrors.ErrNotFound)
	}
	return nil
}
