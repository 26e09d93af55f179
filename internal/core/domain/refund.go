package domain

import (
	"github.com/shopspring/decimal"
)

// RefundType classifies what a refund pays back.
type RefundType string

const (
	RefundFee             RefundType = "FEE"
	RefundSecurityDeposit RefundType = "SECURITY_DEPOSIT"
	RefundOther           RefundType = "OTHER"
)

// Refund is an outflow paying money back to a student.
type Refund struct {
	RefundID      string          `json:"refundID"` // Primary Key (UUID)
	StudentID     string          `json:"studentID"`
	RefundType    RefundType      `json:"refundType"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        string          `json:"reason"`
	RefundNumber  string          `json:"refundNumber"` // Sequence-derived, e.g. RFD-000042
	TransactionID *string         `json:"transactionID"`
	AuditFields
}
