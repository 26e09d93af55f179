package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// InvoiceRepository reads fee invoices and writes back the derived payment
// fields. Invoice creation and schema belong to the fee-structure module.
type InvoiceRepository interface {
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.FeeInvoice, error)
	UpdateInvoicePayment(ctx context.Context, invoiceID string, amountPaid decimal.Decimal, discountFromAdvance decimal.Decimal, status domain.InvoiceStatus, userID string, now time.Time) error
}

// PayrollRepository reads salary slips and writes back disbursement state.
type PayrollRepository interface {
	FindSlipByID(ctx context.Context, slipID string) (*domain.SalarySlip, error)
	UpdateSlipPayment(ctx context.Context, slipID string, status domain.SlipStatus, paidAt *time.Time, transactionID *string, userID string, now time.Time) error
}

// ExpenseRepository persists expense records created by the expense workflow.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseRecord, error)

	// SetExpenseTransaction back-links (or clears, on reversal) the expense's
	// ledger entry.
	SetExpenseTransaction(ctx context.Context, expenseID string, transactionID *string, userID string, now time.Time) error
}
