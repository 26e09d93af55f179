package domain

import (
	"github.com/shopspring/decimal"
)

// StudentAdvanceBalance is a student's non-wallet prepaid credit. It may be
// drawn to zero, never negative, and is mutated only by the fee-payment and
// advance-application workflows.
type StudentAdvanceBalance struct {
	StudentID string          `json:"studentID"` // Primary Key
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}
