package domain

import (
	"github.com/shopspring/decimal"
)

// WalletType distinguishes the pools of funds the back office operates.
type WalletType string

const (
	WalletBank       WalletType = "BANK"
	WalletCash       WalletType = "CASH"
	WalletInvestment WalletType = "INVESTMENT"
)

// Wallet is a named pool of funds. CurrentBalance is mutated exclusively via
// an atomic signed increment inside the same unit of work as the ledger entry
// that justifies it, and must be >= 0 at the end of every committed unit.
type Wallet struct {
	WalletID       string          `json:"walletID"` // Primary Key (UUID)
	Name           string          `json:"name"`     // Unique
	WalletType     WalletType      `json:"walletType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CurrencyCode   string          `json:"currencyCode"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
