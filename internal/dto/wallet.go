package dto

import (
	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// CreateWalletRequest opens a new pool of funds. OpeningBalance defaults to
// zero; it is set at creation time only and every later change goes through
// the recorder.
type CreateWalletRequest struct {
	Name           string          `json:"name" binding:"required"`
	WalletType     string          `json:"walletType" binding:"required,oneof=BANK CASH INVESTMENT"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,currencycode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// WalletResponse is the boundary view of a wallet.
type WalletResponse struct {
	WalletID       string          `json:"walletID"`
	Name           string          `json:"name"`
	WalletType     string          `json:"walletType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CurrencyCode   string          `json:"currencyCode"`
	IsActive       bool            `json:"isActive"`
}

// ToWalletResponse converts a domain wallet to its boundary view.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:       w.WalletID,
		Name:           w.Name,
		WalletType:     string(w.WalletType),
		CurrentBalance: w.CurrentBalance,
		CurrencyCode:   w.CurrencyCode,
		IsActive:       w.IsActive,
	}
}

// ListWalletsParams paginates the wallet listing.
type ListWalletsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
