package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord mirrors the expense_records table.
type ExpenseRecord struct {
	ExpenseID     string          `json:"expenseID"`
	Title         string          `json:"title"`
	CategoryID    string          `json:"categoryID"`
	Amount        decimal.Decimal `json:"amount"`
	WalletID      string          `json:"walletID"`
	TransactionID *string         `json:"transactionID"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Notes         string          `json:"notes"`
	AuditFields
}
