package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeInvoice mirrors the fee_invoices table.
type FeeInvoice struct {
	InvoiceID           string          `json:"invoiceID"`
	StudentID           string          `json:"studentID"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	Discount            decimal.Decimal `json:"discount"`
	Penalty             decimal.Decimal `json:"penalty"`
	AmountPaid          decimal.Decimal `json:"amountPaid"`
	DiscountFromAdvance decimal.Decimal `json:"discountFromAdvance"`
	DueDate             time.Time       `json:"dueDate"`
	Status              string          `json:"status"`
	AuditFields
}
