package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/models"
	"github.com/unifin/campus_finance_app/internal/utils/mapping"
	"github.com/unifin/campus_finance_app/internal/utils/pagination"
)

const transactionColumns = `transaction_id, tx_type, amount, wallet_id, linked_tx_id, reference_kind, reference_id, notes, performed_by, tx_date, is_reversed, reversed_by_tx_id, running_balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	q Querier
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TxType,
		&m.Amount,
		&m.WalletID,
		&m.LinkedTxID,
		&m.ReferenceKind,
		&m.ReferenceID,
		&m.Notes,
		&m.PerformedBy,
		&m.TxDate,
		&m.IsReversed,
		&m.ReversedByTxID,
		&m.RunningBalance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts one immutable ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.q.Exec(ctx, query,
		m.TransactionID,
		m.TxType,
		m.Amount,
		m.WalletID,
		m.LinkedTxID,
		m.ReferenceKind,
		m.ReferenceID,
		m.Notes,
		m.PerformedBy,
		m.TxDate,
		m.IsReversed,
		m.ReversedByTxID,
		m.RunningBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves one ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, txID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.q.QueryRow(ctx, query, txID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", txID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", txID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// MarkReversed flips is_reversed and links the reversal entry. The WHERE
// clause only matches un-reversed rows, so under concurrent reversals exactly
// one caller wins and the loser gets TxAlreadyReversed.
func (r *PgxTransactionRepository) MarkReversed(ctx context.Context, txID string, reversedByTxID string, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET is_reversed = TRUE, reversed_by_tx_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND is_reversed = FALSE;
	`
	tag, err := r.q.Exec(ctx, query, txID, reversedByTxID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction %s reversed: %w", txID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Newf(apperrors.KindTxAlreadyReversed, "transaction %s is already reversed", txID)
	}
	return nil
}

// SetLinkedTransaction back-links the first side of a transfer pair.
func (r *PgxTransactionRepository) SetLinkedTransaction(ctx context.Context, txID string, linkedTxID string) error {
	query := `UPDATE transactions SET linked_tx_id = $2 WHERE transaction_id = $1;`

	tag, err := r.q.Exec(ctx, query, txID, linkedTxID)
	if err != nil {
		return fmt.Errorf("failed to link transaction %s: %w", txID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", txID, apperrors.ErrNotFound)
	}
	return nil
}

// ListTransactionsByWallet pages a wallet's ledger newest first, keyed on
// (tx_date, created_at) so entries sharing an accounting date keep a stable
// order across pages.
func (r *PgxTransactionRepository) ListTransactionsByWallet(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []any{walletID}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE wallet_id = $1`

	if nextToken != nil && *nextToken != "" {
		txDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (tx_date, created_at) < ($2, $3)`
		args = append(args, txDate, createdAt)
	}

	query += fmt.Sprintf(` ORDER BY tx_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // fetch one extra row to know whether another page exists

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.TxDate, last.CreatedAt)
		newNextToken = &token
	}

	return mapping.ToDomainTransactionSlice(ms), newNextToken, nil
}

// ListTransactionsByReference retrieves every ledger entry settling one
// external entity, oldest first.
func (r *PgxTransactionRepository) ListTransactionsByReference(ctx context.Context, kind domain.ReferenceKind, referenceID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_kind = $1 AND reference_id = $2 ORDER BY tx_date, created_at;`

	rows, err := r.q.Query(ctx, query, string(kind), referenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for %s %s: %w", kind, referenceID, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}
