package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// walletService manages the wallet registry.
type walletService struct {
	registry portsrepo.Registry
}

// NewWalletService creates the wallet administration service.
func NewWalletService(registry portsrepo.Registry) portssvc.WalletSvcFacade {
	return &walletService{registry: registry}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest, creatorUserID string) (*domain.Wallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningBalance.IsNegative() {
		return nil, apperrors.NewInvalidAmount(req.OpeningBalance)
	}

	now := time.Now().UTC()
	wallet := domain.Wallet{
		WalletID:       uuid.NewString(),
		Name:           req.Name,
		WalletType:     domain.WalletType(req.WalletType),
		CurrentBalance: req.OpeningBalance,
		CurrencyCode:   strings.ToUpper(req.CurrencyCode),
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.registry.Wallet().SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}

	logger.Info("Wallet created",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("wallet_type", string(wallet.WalletType)),
	)
	return &wallet, nil
}

func (s *walletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	return s.registry.Wallet().FindWalletByID(ctx, walletID)
}

func (s *walletService) ListWallets(ctx context.Context, params dto.ListWalletsParams) ([]domain.Wallet, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.registry.Wallet().ListWallets(ctx, limit, offset)
}

func (s *walletService) DeactivateWallet(ctx context.Context, walletID string, userID string) error {
	return s.registry.Wallet().DeactivateWallet(ctx, walletID, userID, time.Now().UTC())
}
