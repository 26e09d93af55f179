package mapping

import (
	"github.com/unifin/campus_finance_app/internal/core/domain"
	"github.com/unifin/campus_finance_app/internal/models"
)

// ToModelWallet converts a domain Wallet to a model Wallet.
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:       d.WalletID,
		Name:           d.Name,
		WalletType:     string(d.WalletType),
		CurrentBalance: d.CurrentBalance,
		CurrencyCode:   d.CurrencyCode,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWallet converts a model Wallet to a domain Wallet.
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:       m.WalletID,
		Name:           m.Name,
		WalletType:     domain.WalletType(m.WalletType),
		CurrentBalance: m.CurrentBalance,
		CurrencyCode:   m.CurrencyCode,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWalletSlice converts a slice of model Wallets.
func ToDomainWalletSlice(ms []models.Wallet) []domain.Wallet {
	ds := make([]domain.Wallet, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWallet(m)
	}
	return ds
}
