package models

import (
	"github.com/shopspring/decimal"
)

// Refund mirrors the refunds table.
type Refund struct {
	RefundID      string          `json:"refundID"`
	StudentID     string          `json:"studentID"`
	RefundType    string          `json:"refundType"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	RefundNumber  string          `json:"refundNumber"`
	TransactionID *string         `json:"transactionID"`
	AuditFields
}
