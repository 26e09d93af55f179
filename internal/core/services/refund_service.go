package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// refundService pays money back to students and receives security deposits.
type refundService struct {
	registry portsrepo.Registry
	ledger   portssvc.LedgerSvcFacade
	period   portssvc.PeriodSvcFacade
}

// NewRefundService creates the refund and deposit workflows.
func NewRefundService(registry portsrepo.Registry, ledger portssvc.LedgerSvcFacade, period portssvc.PeriodSvcFacade) portssvc.RefundSvcFacade {
	return &refundService{registry: registry, ledger: ledger, period: period}
}

var _ portssvc.RefundSvcFacade = (*refundService)(nil)

// RecordRefund records an outflow paying a student back. Security-deposit
// refunds additionally flip the referenced HELD deposit to REFUNDED; the
// refund amount must match the held amount.
func (s *refundService) RecordRefund(ctx context.Context, req dto.RefundRequest, performedBy string) (*dto.RefundResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	refundType := domain.RefundType(req.RefundType)
	switch refundType {
	case domain.RefundFee, domain.RefundSecurityDeposit, domain.RefundOther:
	default:
		return nil, apperrors.Newf(apperrors.KindValidationError, "unknown refund type %q", req.RefundType)
	}

	var result dto.RefundResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		var deposit *domain.SecurityDeposit
		if refundType == domain.RefundSecurityDeposit {
			if req.DepositID == nil {
				return apperrors.New(apperrors.KindValidationError, "depositID is required for security deposit refunds")
			}
			var err error
			deposit, err = r.Deposit().FindDepositByID(ctx, *req.DepositID)
			if err != nil {
				return err
			}
			if deposit.Status == domain.DepositRefunded {
				return apperrors.Newf(apperrors.KindDepositAlreadyRefunded, "security deposit %s is already refunded", deposit.DepositID)
			}
			if !req.Amount.Equal(deposit.Amount) {
				return apperrors.Newf(apperrors.KindValidationError,
					"refund amount %s does not match held deposit amount %s", req.Amount, deposit.Amount)
			}
		}

		refundID := uuid.NewString()
		txn, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxRefund,
			Amount:      req.Amount,
			WalletID:    req.WalletID,
			Reference:   &domain.Reference{Kind: domain.RefRefund, ID: refundID},
			Notes:       req.Reason,
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		refundNumber, err := r.Sequence().NextRefundNumber(ctx)
		if err != nil {
			return err
		}

		refund := domain.Refund{
			RefundID:      refundID,
			StudentID:     req.StudentID,
			RefundType:    refundType,
			Amount:        req.Amount,
			Reason:        req.Reason,
			RefundNumber:  refundNumber,
			TransactionID: &txn.TransactionID,
			AuditFields: domain.AuditFields{
				CreatedAt:     date,
				CreatedBy:     performedBy,
				LastUpdatedAt: date,
				LastUpdatedBy: performedBy,
			},
		}
		if err := r.Refund().SaveRefund(ctx, refund); err != nil {
			return err
		}

		if deposit != nil {
			if err := r.Deposit().UpdateDepositStatus(ctx, deposit.DepositID, domain.DepositRefunded, &date, performedBy, date); err != nil {
				return err
			}
		}

		result.RefundID = refundID
		result.TransactionID = txn.TransactionID
		result.RefundNumber = refundNumber
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Refund recorded",
		slog.String("refund_id", result.RefundID),
		slog.String("refund_number", result.RefundNumber),
	)
	return &result, nil
}

// RecordSecurityDeposit records receipt of a refundable deposit as an inflow
// and creates the HELD deposit record in the same unit of work.
func (s *refundService) RecordSecurityDeposit(ctx context.Context, req dto.SecurityDepositRequest, performedBy string) (*dto.SecurityDepositResult, error) {
	date := effectiveDate(req.Date)

	var result dto.SecurityDepositResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		depositID := uuid.NewString()
		txn, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxSecurityDeposit,
			Amount:      req.Amount,
			WalletID:    req.WalletID,
			Reference:   &domain.Reference{Kind: domain.RefSecurityDeposit, ID: depositID},
			Notes:       req.Notes,
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		deposit := domain.SecurityDeposit{
			DepositID:     depositID,
			StudentID:     req.StudentID,
			Amount:        req.Amount,
			Status:        domain.DepositHeld,
			TransactionID: &txn.TransactionID,
			AuditFields: domain.AuditFields{
				CreatedAt:     date,
				CreatedBy:     performedBy,
				LastUpdatedAt: date,
				LastUpdatedBy: performedBy,
			},
		}
		if err := r.Deposit().SaveDeposit(ctx, deposit); err != nil {
			return err
		}

		result.DepositID = depositID
		result.TransactionID = txn.TransactionID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
