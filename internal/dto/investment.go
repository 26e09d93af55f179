package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentOutflowRequest places an active investment's principal.
type InvestmentOutflowRequest struct {
	InvestmentID string     `json:"investmentID"` // taken from the URL path
	WalletID     string     `json:"walletID" binding:"required"`
	Date         *time.Time `json:"date"`
}

// InvestmentReturnRequest records the maturity proceeds of an investment.
type InvestmentReturnRequest struct {
	InvestmentID string          `json:"investmentID"` // taken from the URL path
	WalletID     string          `json:"walletID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Date         *time.Time      `json:"date"`
}

// InvestmentResult carries the recorded ledger entry.
type InvestmentResult struct {
	TransactionID string `json:"transactionID"`
}
