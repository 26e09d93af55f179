package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// reversalService symmetrically undoes a recorded transaction: offsetting
// ledger entry, opposite wallet delta, reversed-marker on the original, and
// rollback of whatever external entity the original had updated.
type reversalService struct {
	registry portsrepo.Registry
	ledger   portssvc.LedgerSvcFacade
	period   portssvc.PeriodSvcFacade
}

// NewReversalService creates the reversal engine.
func NewReversalService(registry portsrepo.Registry, ledger portssvc.LedgerSvcFacade, period portssvc.PeriodSvcFacade) portssvc.ReversalSvcFacade {
	return &reversalService{registry: registry, ledger: ledger, period: period}
}

var _ portssvc.ReversalSvcFacade = (*reversalService)(nil)

func (s *reversalService) ReverseTransaction(ctx context.Context, originalTxID string, req dto.ReversalRequest, performedBy string) (*dto.ReversalResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	var result dto.ReversalResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		orig, err := r.Transaction().FindTransactionByID(ctx, originalTxID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Newf(apperrors.KindTxNotFound, "transaction %s not found", originalTxID)
			}
			return err
		}
		if orig.TxType == domain.TxReversal {
			return apperrors.Newf(apperrors.KindCannotReverseReversal, "transaction %s is itself a reversal", originalTxID)
		}
		if orig.TxType == domain.TxAdvanceDeduction {
			return apperrors.Newf(apperrors.KindCannotReverseAdvance, "advance deduction %s cannot be reversed", originalTxID)
		}
		if orig.IsReversed {
			return apperrors.Newf(apperrors.KindTxAlreadyReversed, "transaction %s is already reversed", originalTxID)
		}

		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		opposite := orig.TxType.Direction().Opposite()
		revTx, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:            domain.TxReversal,
			Amount:            orig.Amount,
			WalletID:          orig.WalletID,
			LinkedTxID:        &orig.TransactionID,
			Reference:         orig.Reference,
			Notes:             req.Reason,
			PerformedBy:       performedBy,
			Date:              date,
			DirectionOverride: &opposite,
		})
		if err != nil {
			return err
		}

		if err := r.Transaction().MarkReversed(ctx, orig.TransactionID, revTx.TransactionID, performedBy, date); err != nil {
			return err
		}

		if err := s.rollbackReference(ctx, r, orig, performedBy, date); err != nil {
			return err
		}

		result.ReversalTxID = revTx.TransactionID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Transaction reversed",
		slog.String("original_tx_id", originalTxID),
		slog.String("reversal_tx_id", result.ReversalTxID),
	)
	return &result, nil
}

// rollbackReference undoes the derived state the original transaction wrote
// onto its referenced entity. The dispatch is exhaustive over the closed set
// of reference kinds.
func (s *reversalService) rollbackReference(ctx context.Context, r portsrepo.Repositories, orig *domain.Transaction, performedBy string, now time.Time) error {
	if orig.Reference == nil {
		return nil
	}

	switch orig.Reference.Kind {
	case domain.RefFeeInvoice:
		invoice, err := r.Invoice().FindInvoiceByID(ctx, orig.Reference.ID)
		if err != nil {
			return err
		}
		newPaid := invoice.AmountPaid.Sub(orig.Amount)
		if newPaid.IsNegative() {
			newPaid = decimal.Zero
		}
		status := domain.DeriveInvoiceStatus(invoice.EffectiveTotal(), newPaid, invoice.DueDate, now)
		return r.Invoice().UpdateInvoicePayment(ctx, invoice.InvoiceID, newPaid, invoice.DiscountFromAdvance, status, performedBy, now)

	case domain.RefSalarySlip:
		return r.Payroll().UpdateSlipPayment(ctx, orig.Reference.ID, domain.SlipDraft, nil, nil, performedBy, now)

	case domain.RefExpenseRecord:
		return r.Expense().SetExpenseTransaction(ctx, orig.Reference.ID, nil, performedBy, now)

	case domain.RefRefund:
		return r.Refund().SetRefundTransaction(ctx, orig.Reference.ID, nil, performedBy, now)

	case domain.RefSecurityDeposit:
		return r.Deposit().SetDepositTransaction(ctx, orig.Reference.ID, nil, performedBy, now)

	case domain.RefInvestment:
		switch orig.TxType {
		case domain.TxInvestmentOutflow:
			return r.Investment().UpdateInvestmentPlacement(ctx, orig.Reference.ID, nil, performedBy, now)
		case domain.TxInvestmentReturn:
			return r.Investment().UpdateInvestmentMaturity(ctx, orig.Reference.ID, domain.InvestmentActive, nil, nil, performedBy, now)
		}
		return nil

	default:
		return apperrors.Newf(apperrors.KindValidationError, "unknown reference kind %q on transaction %s", orig.Reference.Kind, orig.TransactionID)
	}
}
