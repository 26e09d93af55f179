package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Reference kind/id are stored as
// two nullable text columns; the domain layer folds them into a typed pair.
type Transaction struct {
	TransactionID  string          `json:"transactionID"`
	TxType         string          `json:"txType"`
	Amount         decimal.Decimal `json:"amount"`
	WalletID       *string         `json:"walletID"` // NULL for advance deductions
	LinkedTxID     *string         `json:"linkedTxID"`
	ReferenceKind  *string         `json:"referenceKind"`
	ReferenceID    *string         `json:"referenceID"`
	Notes          string          `json:"notes"`
	PerformedBy    string          `json:"performedBy"`
	TxDate         time.Time       `json:"txDate"`
	IsReversed     bool            `json:"isReversed"`
	ReversedByTxID *string         `json:"reversedByTxID"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	AuditFields
}
