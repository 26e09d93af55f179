package services

import (
	"context"

	"github.com/unifin/campus_finance_app/internal/core/domain"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// WalletSvcFacade manages the wallet registry. Balance changes are NOT part
// of this facade; they happen only through the recorder.
type WalletSvcFacade interface {
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest, creatorUserID string) (*domain.Wallet, error)
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	ListWallets(ctx context.Context, params dto.ListWalletsParams) ([]domain.Wallet, error)
	DeactivateWallet(ctx context.Context, walletID string, userID string) error
}

// AdvanceSvcFacade reads student advance balances. Mutation happens only
// inside the payment workflows.
type AdvanceSvcFacade interface {
	GetAdvanceBalance(ctx context.Context, studentID string) (*domain.StudentAdvanceBalance, error)
}
