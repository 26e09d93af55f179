package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalarySlip mirrors the salary_slips table.
type SalarySlip struct {
	SlipID        string          `json:"slipID"`
	EmployeeID    string          `json:"employeeID"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BaseSalary    decimal.Decimal `json:"baseSalary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paidAt"`
	TransactionID *string         `json:"transactionID"`
	AuditFields
}
