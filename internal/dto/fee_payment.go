package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeePaymentRequest is the boundary input for recording a fee payment.
// Amount is the cash component only; advance credit is applied automatically.
type FeePaymentRequest struct {
	InvoiceID     string          `json:"invoiceID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	WalletID      string          `json:"walletID" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Notes         string          `json:"notes"`
	Date          *time.Time      `json:"date"`
}

// FeePaymentResult reports what one fee payment actually applied.
type FeePaymentResult struct {
	TransactionID  *string         `json:"transactionID"` // nil when the payment was covered by advance only
	ReceiptNumber  string          `json:"receiptNumber"`
	AdvanceApplied decimal.Decimal `json:"advanceApplied"`
	ExcessCredited decimal.Decimal `json:"excessCredited"`
	AmountApplied  decimal.Decimal `json:"amountApplied"`
	InvoiceStatus  string          `json:"invoiceStatus"`
}

// AdvanceApplicationRequest applies existing advance credit to an invoice
// with zero cash movement.
type AdvanceApplicationRequest struct {
	InvoiceID string          `json:"invoiceID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Notes     string          `json:"notes"`
	Date      *time.Time      `json:"date"`
}

// AdvanceApplicationResult reports the applied advance amount.
type AdvanceApplicationResult struct {
	TransactionID string          `json:"transactionID"`
	AmountApplied decimal.Decimal `json:"amountApplied"`
	InvoiceStatus string          `json:"invoiceStatus"`
}
