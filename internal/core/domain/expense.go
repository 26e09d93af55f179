package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is created together with its outflow transaction in one unit
// of work. An expense whose TransactionID is nil is considered reversed/void.
type ExpenseRecord struct {
	ExpenseID     string          `json:"expenseID"` // Primary Key (UUID)
	Title         string          `json:"title"`
	CategoryID    string          `json:"categoryID"`
	Amount        decimal.Decimal `json:"amount"`
	WalletID      string          `json:"walletID"`
	TransactionID *string         `json:"transactionID"`
	ExpenseDate   time.Time       `json:"expenseDate"`
	Notes         string          `json:"notes"`
	AuditFields
}
