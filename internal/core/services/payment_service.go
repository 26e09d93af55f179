package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// paymentService runs the fee-payment and advance-application workflows.
type paymentService struct {
	registry portsrepo.Registry
	ledger   portssvc.LedgerSvcFacade
	period   portssvc.PeriodSvcFacade
}

// NewPaymentService creates the payment workflows over the recorder and the
// period guard.
func NewPaymentService(registry portsrepo.Registry, ledger portssvc.LedgerSvcFacade, period portssvc.PeriodSvcFacade) portssvc.PaymentSvcFacade {
	return &paymentService{registry: registry, ledger: ledger, period: period}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordFeePayment settles a fee invoice with the student's advance credit
// first and the tendered cash second. Cash beyond the arrears is still
// banked and the surplus is credited back to the student's advance.
func (s *paymentService) RecordFeePayment(ctx context.Context, req dto.FeePaymentRequest, performedBy string) (*dto.FeePaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	cash := req.Amount
	if cash.IsNegative() {
		return nil, apperrors.NewInvalidAmount(cash)
	}

	var result dto.FeePaymentResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		invoice, err := findInvoiceForSettlement(ctx, r, req.InvoiceID)
		if err != nil {
			return err
		}

		arrears := invoice.Arrears()

		advanceBalance := decimal.Zero
		advance, err := r.Advance().FindAdvanceByStudentID(ctx, invoice.StudentID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if advance != nil {
			advanceBalance = advance.Balance
		}

		advanceApplied := decimal.Min(advanceBalance, arrears)
		remaining := arrears.Sub(advanceApplied)
		cashApplied := decimal.Min(cash, remaining)
		excess := cash.Sub(cashApplied)
		totalApplied := advanceApplied.Add(cashApplied)

		if totalApplied.IsZero() && excess.IsZero() {
			return apperrors.NewInvalidAmount(cash)
		}

		if advanceApplied.IsPositive() {
			ref := &domain.Reference{Kind: domain.RefFeeInvoice, ID: invoice.InvoiceID}
			if _, err := s.ledger.RecordAdvanceDeduction(ctx, r, portssvc.AdvanceDeductionParams{
				StudentID:   invoice.StudentID,
				Amount:      advanceApplied,
				Reference:   ref,
				Notes:       "advance applied to fee invoice",
				PerformedBy: performedBy,
				Date:        date,
			}); err != nil {
				return err
			}
		}

		if cash.IsPositive() {
			txn, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
				TxType:      domain.TxFeePayment,
				Amount:      cash,
				WalletID:    req.WalletID,
				Reference:   &domain.Reference{Kind: domain.RefFeeInvoice, ID: invoice.InvoiceID},
				Notes:       req.Notes,
				PerformedBy: performedBy,
				Date:        date,
			})
			if err != nil {
				return err
			}
			result.TransactionID = &txn.TransactionID
		}

		if excess.IsPositive() {
			if _, err := r.Advance().ApplyAdvanceDelta(ctx, invoice.StudentID, excess, performedBy, date); err != nil {
				return err
			}
		}

		newPaid := invoice.AmountPaid.Add(totalApplied)
		newFromAdvance := invoice.DiscountFromAdvance.Add(advanceApplied)
		status := domain.DeriveInvoiceStatus(invoice.EffectiveTotal(), newPaid, invoice.DueDate, date)
		if err := r.Invoice().UpdateInvoicePayment(ctx, invoice.InvoiceID, newPaid, newFromAdvance, status, performedBy, date); err != nil {
			return err
		}

		receipt, err := r.Sequence().NextReceiptNumber(ctx)
		if err != nil {
			return err
		}

		result.ReceiptNumber = receipt
		result.AdvanceApplied = advanceApplied
		result.ExcessCredited = excess
		result.AmountApplied = totalApplied
		result.InvoiceStatus = string(status)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Fee payment recorded",
		slog.String("invoice_id", req.InvoiceID),
		slog.String("receipt_number", result.ReceiptNumber),
		slog.String("amount_applied", result.AmountApplied.String()),
	)
	return &result, nil
}

// RecordAdvanceApplication settles part of an invoice purely from the
// student's advance credit. No wallet cash moves.
func (s *paymentService) RecordAdvanceApplication(ctx context.Context, req dto.AdvanceApplicationRequest, performedBy string) (*dto.AdvanceApplicationResult, error) {
	date := effectiveDate(req.Date)

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewInvalidAmount(req.Amount)
	}

	var result dto.AdvanceApplicationResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		invoice, err := findInvoiceForSettlement(ctx, r, req.InvoiceID)
		if err != nil {
			return err
		}

		advance, err := r.Advance().FindAdvanceByStudentID(ctx, invoice.StudentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewInsufficientBalance(req.Amount, decimal.Zero)
			}
			return err
		}
		if !advance.Balance.IsPositive() {
			return apperrors.NewInsufficientBalance(req.Amount, advance.Balance)
		}

		amountToApply := decimal.Min(req.Amount, decimal.Min(advance.Balance, invoice.Arrears()))
		if !amountToApply.IsPositive() {
			return apperrors.NewInvalidAmount(amountToApply)
		}

		txn, err := s.ledger.RecordAdvanceDeduction(ctx, r, portssvc.AdvanceDeductionParams{
			StudentID:   invoice.StudentID,
			Amount:      amountToApply,
			Reference:   &domain.Reference{Kind: domain.RefFeeInvoice, ID: invoice.InvoiceID},
			Notes:       req.Notes,
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		newPaid := invoice.AmountPaid.Add(amountToApply)
		newFromAdvance := invoice.DiscountFromAdvance.Add(amountToApply)
		status := domain.DeriveInvoiceStatus(invoice.EffectiveTotal(), newPaid, invoice.DueDate, date)
		if err := r.Invoice().UpdateInvoicePayment(ctx, invoice.InvoiceID, newPaid, newFromAdvance, status, performedBy, date); err != nil {
			return err
		}

		result.TransactionID = txn.TransactionID
		result.AmountApplied = amountToApply
		result.InvoiceStatus = string(status)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// findInvoiceForSettlement loads an invoice and applies the settlement gates
// shared by both payment workflows.
func findInvoiceForSettlement(ctx context.Context, r portsrepo.Repositories, invoiceID string) (*domain.FeeInvoice, error) {
	invoice, err := r.Invoice().FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.KindInvoiceNotFound, "invoice %s not found", invoiceID)
		}
		return nil, err
	}
	if invoice.Status == domain.InvoiceWaived {
		return nil, apperrors.Newf(apperrors.KindInvoiceWaived, "invoice %s is waived", invoiceID)
	}
	if invoice.Status == domain.InvoicePaid || !invoice.Arrears().IsPositive() {
		return nil, apperrors.Newf(apperrors.KindInvoiceAlreadyPaid, "invoice %s is already fully paid", invoiceID)
	}
	return invoice, nil
}
