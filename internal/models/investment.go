package models

import (
	"github.com/shopspring/decimal"
)

// Investment mirrors the investments table.
type Investment struct {
	InvestmentID   string           `json:"investmentID"`
	Name           string           `json:"name"`
	Principal      decimal.Decimal  `json:"principal"`
	MaturityAmount *decimal.Decimal `json:"maturityAmount"`
	Status         string           `json:"status"`
	PlacedTxID     *string          `json:"placedTxID"`
	MaturedTxID    *string          `json:"maturedTxID"`
	AuditFields
}
