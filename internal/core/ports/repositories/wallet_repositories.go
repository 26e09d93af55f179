package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// WalletRepository persists wallets. ApplyBalanceDelta is the only way any
// code path changes a wallet balance.
type WalletRepository interface {
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	ListWallets(ctx context.Context, limit int, offset int) ([]domain.Wallet, error)
	UpdateWallet(ctx context.Context, wallet domain.Wallet) error
	DeactivateWallet(ctx context.Context, walletID string, userID string, now time.Time) error

	// ApplyBalanceDelta atomically increments the wallet balance by delta
	// (which may be negative) and returns the post-update balance. Callers
	// check the non-negativity post-condition and abort the unit of work on
	// violation.
	ApplyBalanceDelta(ctx context.Context, walletID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)
}
