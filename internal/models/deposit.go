package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SecurityDeposit mirrors the security_deposits table.
type SecurityDeposit struct {
	DepositID     string          `json:"depositID"`
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transactionID"`
	RefundedAt    *time.Time      `json:"refundedAt"`
	AuditFields
}
