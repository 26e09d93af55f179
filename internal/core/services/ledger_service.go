package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ledgerService is the transaction recorder: the single code path through
// which ledger entries come into existence and wallet balances change.
type ledgerService struct {
	registry portsrepo.Registry
}

// NewLedgerService creates the recorder over the given persistence registry.
func NewLedgerService(registry portsrepo.Registry) portssvc.LedgerSvcFacade {
	return &ledgerService{registry: registry}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Record writes one immutable ledger entry and applies its signed delta to
// the wallet, all on the caller's transaction-bound repository bundle. The
// wallet balance must be non-negative after the delta or the whole unit of
// work aborts.
func (s *ledgerService) Record(ctx context.Context, r portsrepo.Repositories, p portssvc.RecordParams) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !p.TxType.Valid() || p.TxType == domain.TxAdvanceDeduction {
		return nil, apperrors.Newf(apperrors.KindValidationError, "transaction type %q cannot be recorded against a wallet", p.TxType)
	}
	if !p.Amount.IsPositive() {
		return nil, apperrors.NewInvalidAmount(p.Amount)
	}
	if p.WalletID == "" {
		return nil, apperrors.New(apperrors.KindValidationError, "walletID is required")
	}

	direction := p.TxType.Direction()
	if p.DirectionOverride != nil {
		direction = *p.DirectionOverride
	}

	delta := p.Amount
	if direction == domain.DirectionOutflow {
		delta = delta.Neg()
	}

	newBalance, err := r.Wallet().ApplyBalanceDelta(ctx, p.WalletID, delta, p.PerformedBy, p.Date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.KindWalletNotFound, "wallet %s not found", p.WalletID)
		}
		return nil, err
	}
	if newBalance.IsNegative() {
		available := newBalance.Sub(delta)
		logger.Warn("Wallet balance would go negative, aborting",
			slog.String("wallet_id", p.WalletID),
			slog.String("required", p.Amount.String()),
			slog.String("available", available.String()),
		)
		return nil, apperrors.NewInsufficientBalance(p.Amount, available)
	}

	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		TxType:         p.TxType,
		Amount:         p.Amount,
		WalletID:       p.WalletID,
		LinkedTxID:     p.LinkedTxID,
		Reference:      p.Reference,
		Notes:          p.Notes,
		PerformedBy:    p.PerformedBy,
		Date:           p.Date,
		RunningBalance: newBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     p.Date,
			CreatedBy:     p.PerformedBy,
			LastUpdatedAt: p.Date,
			LastUpdatedBy: p.PerformedBy,
		},
	}
	if err := r.Transaction().SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// RecordAdvanceDeduction writes the audit-only entry for drawing down a
// student's prepaid credit. No wallet is touched; the advance balance must
// stay non-negative.
func (s *ledgerService) RecordAdvanceDeduction(ctx context.Context, r portsrepo.Repositories, p portssvc.AdvanceDeductionParams) (*domain.Transaction, error) {
	if !p.Amount.IsPositive() {
		return nil, apperrors.NewInvalidAmount(p.Amount)
	}

	newBalance, err := r.Advance().ApplyAdvanceDelta(ctx, p.StudentID, p.Amount.Neg(), p.PerformedBy, p.Date)
	if err != nil {
		return nil, err
	}
	if newBalance.IsNegative() {
		available := newBalance.Add(p.Amount)
		return nil, apperrors.NewInsufficientBalance(p.Amount, available)
	}

	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		TxType:         domain.TxAdvanceDeduction,
		Amount:         p.Amount,
		Reference:      p.Reference,
		Notes:          p.Notes,
		PerformedBy:    p.PerformedBy,
		Date:           p.Date,
		RunningBalance: newBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     p.Date,
			CreatedBy:     p.PerformedBy,
			LastUpdatedAt: p.Date,
			LastUpdatedBy: p.PerformedBy,
		},
	}
	if err := r.Transaction().SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, txID string) (*domain.Transaction, error) {
	txn, err := s.registry.Transaction().FindTransactionByID(ctx, txID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.KindTxNotFound, "transaction %s not found", txID)
		}
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListTransactionsByWallet(ctx context.Context, walletID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	if _, err := s.registry.Wallet().FindWalletByID(ctx, walletID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.KindWalletNotFound, "wallet %s not found", walletID)
		}
		return nil, err
	}

	txns, nextToken, err := s.registry.Transaction().ListTransactionsByWallet(ctx, walletID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *ledgerService) ListTransactionsByReference(ctx context.Context, kind domain.ReferenceKind, referenceID string) ([]domain.Transaction, error) {
	return s.registry.Transaction().ListTransactionsByReference(ctx, kind, referenceID)
}
