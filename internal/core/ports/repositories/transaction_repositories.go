package repositories

import (
	"context"
	"time"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// TransactionRepository persists immutable ledger entries. Rows are never
// deleted and only the reversal-tracking fields or the transfer cross-link
// ever change after insert.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, txID string) (*domain.Transaction, error)

	// MarkReversed flips is_reversed false -> true and links the reversal
	// entry. It fails with ErrNotFound if the row is missing and with no rows
	// affected if the transaction was already reversed, so the flip happens
	// exactly once even under concurrent reversals.
	MarkReversed(ctx context.Context, txID string, reversedByTxID string, userID string, now time.Time) error

	// SetLinkedTransaction back-links the first side of a transfer pair.
	SetLinkedTransaction(ctx context.Context, txID string, linkedTxID string) error

	ListTransactionsByWallet(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
	ListTransactionsByReference(ctx context.Context, kind domain.ReferenceKind, referenceID string) ([]domain.Transaction, error)
}
