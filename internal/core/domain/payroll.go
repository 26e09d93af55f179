package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlipStatus is the lifecycle state of a payroll slip.
type SlipStatus string

const (
	SlipDraft SlipStatus = "DRAFT"
	SlipPaid  SlipStatus = "PAID"
)

// SalarySlip is owned by the HR module; the ledger engine disburses it and
// stamps the paid date and transaction link, or clears them on reversal.
type SalarySlip struct {
	SlipID        string          `json:"slipID"` // Primary Key (UUID)
	EmployeeID    string          `json:"employeeID"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	Status        SlipStatus      `json:"status"`
	PaidAt        *time.Time      `json:"paidAt"`
	TransactionID *string         `json:"transactionID"`
	AuditFields
}

// NetPayable recomputes base + allowances - deductions, floored at zero.
// Always recomputed at disbursement time; a pre-stored value is never trusted.
func (s SalarySlip) NetPayable() decimal.Decimal {
	net := s.BaseSalary.Add(s.Allowances).Sub(s.Deductions)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}
