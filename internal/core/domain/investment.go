package domain

import (
	"github.com/shopspring/decimal"
)

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentActive  InvestmentStatus = "ACTIVE"
	InvestmentMatured InvestmentStatus = "MATURED"
	InvestmentClosed  InvestmentStatus = "CLOSED"
)

// Investment is owned by the treasury module; the ledger engine records the
// placement outflow and the maturity inflow for it. Both operations require
// the investment to be ACTIVE.
type Investment struct {
	InvestmentID   string           `json:"investmentID"` // Primary Key (UUID)
	Name           string           `json:"name"`
	Principal      decimal.Decimal  `json:"principal"`
	MaturityAmount *decimal.Decimal `json:"maturityAmount"` // Set when the return is recorded
	Status         InvestmentStatus `json:"status"`
	PlacedTxID     *string          `json:"placedTxID"`
	MaturedTxID    *string          `json:"maturedTxID"`
	AuditFields
}
