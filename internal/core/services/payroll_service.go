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

// payrollService disburses draft salary slips.
type payrollService struct {
	registry portsrepo.Registry
	ledger   portssvc.LedgerSvcFacade
	period   portssvc.PeriodSvcFacade
}

// NewPayrollService creates the salary disbursement workflow.
func NewPayrollService(registry portsrepo.Registry, ledger portssvc.LedgerSvcFacade, period portssvc.PeriodSvcFacade) portssvc.PayrollSvcFacade {
	return &payrollService{registry: registry, ledger: ledger, period: period}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// RecordSalaryDisbursement pays out a DRAFT slip. The net payable is always
// recomputed from the slip's components at disbursement time.
func (s *payrollService) RecordSalaryDisbursement(ctx context.Context, req dto.SalaryDisbursementRequest, performedBy string) (*dto.SalaryDisbursementResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	var result dto.SalaryDisbursementResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		slip, err := r.Payroll().FindSlipByID(ctx, req.SlipID)
		if err != nil {
			return err
		}
		if slip.Status != domain.SlipDraft {
			return apperrors.Newf(apperrors.KindSlipNotDraft, "salary slip %s is %s, only DRAFT slips can be disbursed", req.SlipID, slip.Status)
		}

		net := slip.NetPayable()
		if !net.IsPositive() {
			return apperrors.NewInvalidAmount(net)
		}

		txn, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxSalaryPayment,
			Amount:      net,
			WalletID:    req.WalletID,
			Reference:   &domain.Reference{Kind: domain.RefSalarySlip, ID: slip.SlipID},
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		if err := r.Payroll().UpdateSlipPayment(ctx, slip.SlipID, domain.SlipPaid, &date, &txn.TransactionID, performedBy, date); err != nil {
			return err
		}

		result.TransactionID = txn.TransactionID
		result.NetPayable = net
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Salary disbursed",
		slog.String("slip_id", req.SlipID),
		slog.String("net_payable", result.NetPayable.String()),
	)
	return &result, nil
}
