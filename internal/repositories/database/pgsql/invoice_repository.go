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

type PgxInvoiceRepository struct {
	q Querier
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

// FindInvoiceByID retrieves the fields of a fee invoice the ledger engine
// reads. The invoice schema is owned by the fee-structure module.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.FeeInvoice, error) {
	query := `
		SELECT invoice_id, student_id, total_amount, discount, penalty, amount_paid, discount_from_advance, due_date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM fee_invoices
		WHERE invoice_id = $1;
	`
	var m models.FeeInvoice
	err := r.q.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.StudentID,
		&m.TotalAmount,
		&m.Discount,
		&m.Penalty,
		&m.AmountPaid,
		&m.DiscountFromAdvance,
		&m.DueDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	invoice := mapping.ToDomainInvoice(m)
	return &invoice, nil
}

// UpdateInvoicePayment writes back the derived payment fields after a
// settlement or a reversal.
func (r *PgxInvoiceRepository) UpdateInvoicePayment(ctx context.Context, invoiceID string, amountPaid decimal.Decimal, discountFromAdvance decimal.Decimal, status domain.InvoiceStatus, userID string, now time.Time) error {
	query := `
		UPDATE fee_invoices
		SET amount_paid = $2, discount_from_advance = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE invoice_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, invoiceID, amountPaid, discountFromAdvance, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s payment: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return nil
}
