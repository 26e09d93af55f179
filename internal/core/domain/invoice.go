package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the derived payment state of a fee invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePartial InvoiceStatus = "PARTIAL"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
	InvoiceWaived  InvoiceStatus = "WAIVED"
)

// FeeInvoice is owned by the fee-structure module; the ledger engine reads
// the amount fields and writes back amountPaid, discountFromAdvance and the
// derived status inside the same unit of work as the ledger entry.
type FeeInvoice struct {
	InvoiceID           string          `json:"invoiceID"` // Primary Key (UUID)
	StudentID           string          `json:"studentID"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	Discount            decimal.Decimal `json:"discount"`
	Penalty             decimal.Decimal `json:"penalty"`
	AmountPaid          decimal.Decimal `json:"amountPaid"`
	DiscountFromAdvance decimal.Decimal `json:"discountFromAdvance"`
	DueDate             time.Time       `json:"dueDate"`
	Status              InvoiceStatus   `json:"status"`
	AuditFields
}

// EffectiveTotal is the amount actually owed: total - discount + penalty.
func (i FeeInvoice) EffectiveTotal() decimal.Decimal {
	return i.TotalAmount.Sub(i.Discount).Add(i.Penalty)
}

// Arrears is the outstanding part of the effective total, floored at zero.
func (i FeeInvoice) Arrears() decimal.Decimal {
	arrears := i.EffectiveTotal().Sub(i.AmountPaid)
	if arrears.IsNegative() {
		return decimal.Zero
	}
	return arrears
}

// DeriveInvoiceStatus recomputes the payment status for the given paid amount.
// PAID if fully covered, else PARTIAL if any payment exists, else OVERDUE if
// past the due date, else PENDING.
func DeriveInvoiceStatus(effectiveTotal, amountPaid decimal.Decimal, dueDate time.Time, now time.Time) InvoiceStatus {
	if amountPaid.GreaterThanOrEqual(effectiveTotal) && effectiveTotal.IsPositive() {
		return InvoicePaid
	}
	if amountPaid.IsPositive() {
		return InvoicePartial
	}
	if now.After(dueDate) {
		return InvoiceOverdue
	}
	return InvoicePending
}
