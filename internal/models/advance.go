package models

import (
	"github.com/shopspring/decimal"
)

// StudentAdvanceBalance mirrors the student_advance_balances table.
type StudentAdvanceBalance struct {
	StudentID string          `json:"studentID"`
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}
