package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/models"
	"github.com/unifin/campus_finance_app/internal/utils/mapping"
)

type PgxWalletRepository struct {
	q Querier
}

var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

// SaveWallet inserts a new wallet.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)

	query := `
		INSERT INTO wallets (wallet_id, name, wallet_type, current_balance, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.q.Exec(ctx, query,
		m.WalletID,
		m.Name,
		m.WalletType,
		m.CurrentBalance,
		m.CurrencyCode,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: wallet named %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save wallet %s: %w", m.WalletID, err)
	}
	return nil
}

// FindWalletByID retrieves a wallet by its ID.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, name, wallet_type, current_balance, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		WHERE wallet_id = $1;
	`
	var m models.Wallet
	err := r.q.QueryRow(ctx, query, walletID).Scan(
		&m.WalletID,
		&m.Name,
		&m.WalletType,
		&m.CurrentBalance,
		&m.CurrencyCode,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find wallet %s: %w", walletID, err)
	}

	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// ListWallets retrieves wallets ordered by name.
func (r *PgxWalletRepository) ListWallets(ctx context.Context, limit int, offset int) ([]domain.Wallet, error) {
	query := `
		SELECT wallet_id, name, wallet_type, current_balance, currency_code, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM wallets
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	var ms []models.Wallet
	for rows.Next() {
		var m models.Wallet
		if err := rows.Scan(
			&m.WalletID,
			&m.Name,
			&m.WalletType,
			&m.CurrentBalance,
			&m.CurrencyCode,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wallet row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet rows: %w", err)
	}

	return mapping.ToDomainWalletSlice(ms), nil
}

// UpdateWallet updates the mutable descriptive fields of a wallet. The
// balance is deliberately not touched here.
func (r *PgxWalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)

	query := `
		UPDATE wallets
		SET name = $2, wallet_type = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE wallet_id = $1;
	`
	tag, err := r.q.Exec(ctx, query,
		m.WalletID,
		m.Name,
		m.WalletType,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet %s: %w", m.WalletID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet %s: %w", m.WalletID, apperrors.ErrNotFound)
	}
	return nil
}

// DeactivateWallet marks a wallet inactive.
func (r *PgxWalletRepository) DeactivateWallet(ctx context.Context, walletID string, userID string, now time.Time) error {
	query := `
		UPDATE wallets
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE wallet_id = $1;
	`
	tag, err := r.q.Exec(ctx, query, walletID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate wallet %s: %w", walletID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
	}
	return nil
}

// ApplyBalanceDelta atomically increments the wallet balance and returns the
// post-update value. The increment runs as a single UPDATE so concurrent
// deltas serialise on the row lock and never lose updates.
func (r *PgxWalletRepository) ApplyBalanceDelta(ctx context.Context, walletID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET current_balance = current_balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE wallet_id = $1
		RETURNING current_balance;
	`
	var newBalance decimal.Decimal
	err := r.q.QueryRow(ctx, query, walletID, delta, now, userID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to apply balance delta to wallet %s: %w", walletID, err)
	}
	return newBalance, nil
}
