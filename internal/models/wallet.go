package models

import (
	"github.com/shopspring/decimal"
)

// Wallet mirrors the wallets table.
type Wallet struct {
	WalletID       string          `json:"walletID"`
	Name           string          `json:"name"`
	WalletType     string          `json:"walletType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CurrencyCode   string          `json:"currencyCode"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
