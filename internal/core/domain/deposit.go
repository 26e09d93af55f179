package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus is the lifecycle state of a security deposit.
type DepositStatus string

const (
	DepositHeld     DepositStatus = "HELD"
	DepositRefunded DepositStatus = "REFUNDED"
)

// SecurityDeposit is refundable money held on a student's behalf. Receiving
// it is an inflow; paying it back goes through the refund workflow, which
// flips the status to REFUNDED exactly once.
type SecurityDeposit struct {
	DepositID     string          `json:"depositID"` // Primary Key (UUID)
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	Status        DepositStatus   `json:"status"`
	TransactionID *string         `json:"transactionID"`
	RefundedAt    *time.Time      `json:"refundedAt"`
	AuditFields
}
