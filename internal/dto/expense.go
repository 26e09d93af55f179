package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpensePaymentRequest creates an expense record together with its outflow.
type ExpensePaymentRequest struct {
	Title      string          `json:"title" binding:"required"`
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	WalletID   string          `json:"walletID" binding:"required"`
	Notes      string          `json:"notes"`
	Date       *time.Time      `json:"date"`
}

// ExpensePaymentResult carries the created pair.
type ExpensePaymentResult struct {
	ExpenseID     string `json:"expenseID"`
	TransactionID string `json:"transactionID"`
}
