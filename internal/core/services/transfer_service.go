package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// transferService moves money between wallets as a cross-linked entry pair.
type transferService struct {
	registry portsrepo.Registry
	ledger   portssvc.LedgerSvcFacade
	period   portssvc.PeriodSvcFacade
}

// NewTransferService creates the transfer workflow.
func NewTransferService(registry portsrepo.Registry, ledger portssvc.LedgerSvcFacade, period portssvc.PeriodSvcFacade) portssvc.TransferSvcFacade {
	return &transferService{registry: registry, ledger: ledger, period: period}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// RecordTransfer records the outflow side first, so an insufficient source
// balance aborts before the destination is ever touched, then the inflow,
// and cross-links the pair.
func (s *transferService) RecordTransfer(ctx context.Context, req dto.TransferRequest, performedBy string) (*dto.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	if req.FromWalletID == req.ToWalletID {
		return nil, apperrors.New(apperrors.KindSameWalletTransfer, "source and destination wallets must differ")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewInvalidAmount(req.Amount)
	}

	var result dto.TransferResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		from, err := findWallet(ctx, r, req.FromWalletID)
		if err != nil {
			return err
		}
		to, err := findWallet(ctx, r, req.ToWalletID)
		if err != nil {
			return err
		}
		if from.CurrencyCode != to.CurrencyCode {
			return apperrors.Newf(apperrors.KindValidationError,
				"cannot transfer between %s and %s wallets", from.CurrencyCode, to.CurrencyCode)
		}

		outTx, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxTransferOut,
			Amount:      req.Amount,
			WalletID:    req.FromWalletID,
			Notes:       req.Notes,
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		inTx, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxTransferIn,
			Amount:      req.Amount,
			WalletID:    req.ToWalletID,
			LinkedTxID:  &outTx.TransactionID,
			Notes:       req.Notes,
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		if err := r.Transaction().SetLinkedTransaction(ctx, outTx.TransactionID, inTx.TransactionID); err != nil {
			return err
		}

		result.OutTxID = outTx.TransactionID
		result.InTxID = inTx.TransactionID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transfer recorded",
		slog.String("from_wallet", req.FromWalletID),
		slog.String("to_wallet", req.ToWalletID),
		slog.String("amount", req.Amount.String()),
	)
	return &result, nil
}

// findWallet loads a wallet, mapping a missing row to the typed kind.
func findWallet(ctx context.Context, r portsrepo.Repositories, walletID string) (*domain.Wallet, error) {
	w, err := r.Wallet().FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.KindWalletNotFound, "wallet %s not found", walletID)
		}
		return nil, err
	}
	return w, nil
}
