package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryDisbursementRequest pays out a draft payroll slip.
type SalaryDisbursementRequest struct {
	SlipID   string     `json:"slipID" binding:"required"`
	WalletID string     `json:"walletID" binding:"required"`
	Date     *time.Time `json:"date"`
}

// SalaryDisbursementResult reports the recorded outflow.
type SalaryDisbursementResult struct {
	TransactionID string          `json:"transactionID"`
	NetPayable    decimal.Decimal `json:"netPayable"`
}
