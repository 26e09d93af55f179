package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// TransactionResponse is the boundary view of one ledger entry.
type TransactionResponse struct {
	TransactionID  string            `json:"transactionID"`
	TxType         string            `json:"txType"`
	Amount         decimal.Decimal   `json:"amount"`
	WalletID       string            `json:"walletID,omitempty"`
	LinkedTxID     *string           `json:"linkedTxID,omitempty"`
	Reference      *domain.Reference `json:"reference,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	PerformedBy    string            `json:"performedBy"`
	Date           time.Time         `json:"date"`
	IsReversed     bool              `json:"isReversed"`
	ReversedByTxID *string           `json:"reversedByTxID,omitempty"`
	RunningBalance decimal.Decimal   `json:"runningBalance"`
}

// ToTransactionResponse converts a domain transaction to its boundary view.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		TxType:         string(t.TxType),
		Amount:         t.Amount,
		WalletID:       t.WalletID,
		LinkedTxID:     t.LinkedTxID,
		Reference:      t.Reference,
		Notes:          t.Notes,
		PerformedBy:    t.PerformedBy,
		Date:           t.Date,
		IsReversed:     t.IsReversed,
		ReversedByTxID: t.ReversedByTxID,
		RunningBalance: t.RunningBalance,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	rs := make([]TransactionResponse, len(ts))
	for i := range ts {
		rs[i] = ToTransactionResponse(&ts[i])
	}
	return rs
}

// ListTransactionsParams paginates a wallet's ledger listing with a cursor
// token.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse is one page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// AdvanceBalanceResponse is the boundary view of a student's prepaid credit.
type AdvanceBalanceResponse struct {
	StudentID   string          `json:"studentID"`
	Balance     decimal.Decimal `json:"balance"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
