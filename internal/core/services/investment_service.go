package services

import (
	"context"
	"log/slog"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// investmentService records investment placements and maturity proceeds.
type investmentService struct {
	registry portsrepo.Registry
	ledger   portssvc.LedgerSvcFacade
	period   portssvc.PeriodSvcFacade
}

// NewInvestmentService creates the investment workflows.
func NewInvestmentService(registry portsrepo.Registry, ledger portssvc.LedgerSvcFacade, period portssvc.PeriodSvcFacade) portssvc.InvestmentSvcFacade {
	return &investmentService{registry: registry, ledger: ledger, period: period}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

// RecordInvestmentOutflow places an ACTIVE investment's principal out of the
// funding wallet.
func (s *investmentService) RecordInvestmentOutflow(ctx context.Context, req dto.InvestmentOutflowRequest, performedBy string) (*dto.InvestmentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	var result dto.InvestmentResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		inv, err := findActiveInvestment(ctx, r, req.InvestmentID)
		if err != nil {
			return err
		}
		if inv.PlacedTxID != nil {
			return apperrors.Newf(apperrors.KindValidationError, "investment %s principal is already placed", inv.InvestmentID)
		}

		txn, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxInvestmentOutflow,
			Amount:      inv.Principal,
			WalletID:    req.WalletID,
			Reference:   &domain.Reference{Kind: domain.RefInvestment, ID: inv.InvestmentID},
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		if err := r.Investment().UpdateInvestmentPlacement(ctx, inv.InvestmentID, &txn.TransactionID, performedBy, date); err != nil {
			return err
		}

		result.TransactionID = txn.TransactionID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Investment placed",
		slog.String("investment_id", req.InvestmentID),
		slog.String("transaction_id", result.TransactionID),
	)
	return &result, nil
}

// RecordInvestmentReturn banks the maturity proceeds of an ACTIVE investment
// and flips it to MATURED.
func (s *investmentService) RecordInvestmentReturn(ctx context.Context, req dto.InvestmentReturnRequest, performedBy string) (*dto.InvestmentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	var result dto.InvestmentResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		inv, err := findActiveInvestment(ctx, r, req.InvestmentID)
		if err != nil {
			return err
		}

		txn, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxInvestmentReturn,
			Amount:      req.Amount,
			WalletID:    req.WalletID,
			Reference:   &domain.Reference{Kind: domain.RefInvestment, ID: inv.InvestmentID},
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		maturity := req.Amount
		if err := r.Investment().UpdateInvestmentMaturity(ctx, inv.InvestmentID, domain.InvestmentMatured, &maturity, &txn.TransactionID, performedBy, date); err != nil {
			return err
		}

		result.TransactionID = txn.TransactionID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Investment matured",
		slog.String("investment_id", req.InvestmentID),
		slog.String("maturity_amount", req.Amount.String()),
	)
	return &result, nil
}

// findActiveInvestment loads an investment and enforces the ACTIVE gate both
// investment operations share.
func findActiveInvestment(ctx context.Context, r portsrepo.Repositories, investmentID string) (*domain.Investment, error) {
	inv, err := r.Investment().FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvestmentActive {
		return nil, apperrors.Newf(apperrors.KindInvestmentNotActive, "investment %s is %s, not ACTIVE", inv.InvestmentID, inv.Status)
	}
	return inv, nil
}
