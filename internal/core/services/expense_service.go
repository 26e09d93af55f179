package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// expenseService records operating expenses together with their outflow.
type expenseService struct {
	registry portsrepo.Registry
	ledger   portssvc.LedgerSvcFacade
	period   portssvc.PeriodSvcFacade
}

// NewExpenseService creates the expense workflow.
func NewExpenseService(registry portsrepo.Registry, ledger portssvc.LedgerSvcFacade, period portssvc.PeriodSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{registry: registry, ledger: ledger, period: period}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// RecordExpensePayment creates the expense record and its ledger entry in one
// unit of work; neither exists without the other.
func (s *expenseService) RecordExpensePayment(ctx context.Context, req dto.ExpensePaymentRequest, performedBy string) (*dto.ExpensePaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	date := effectiveDate(req.Date)

	var result dto.ExpensePaymentResult
	err := s.registry.WithinTx(ctx, func(r portsrepo.Repositories) error {
		if err := s.period.AssertOpen(ctx, r, date); err != nil {
			return err
		}

		expenseID := uuid.NewString()
		txn, err := s.ledger.Record(ctx, r, portssvc.RecordParams{
			TxType:      domain.TxExpensePayment,
			Amount:      req.Amount,
			WalletID:    req.WalletID,
			Reference:   &domain.Reference{Kind: domain.RefExpenseRecord, ID: expenseID},
			Notes:       req.Notes,
			PerformedBy: performedBy,
			Date:        date,
		})
		if err != nil {
			return err
		}

		expense := domain.ExpenseRecord{
			ExpenseID:     expenseID,
			Title:         req.Title,
			CategoryID:    req.CategoryID,
			Amount:        req.Amount,
			WalletID:      req.WalletID,
			TransactionID: &txn.TransactionID,
			ExpenseDate:   date,
			Notes:         req.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     date,
				CreatedBy:     performedBy,
				LastUpdatedAt: date,
				LastUpdatedBy: performedBy,
			},
		}
		if err := r.Expense().SaveExpense(ctx, expense); err != nil {
			return err
		}

		result.ExpenseID = expenseID
		result.TransactionID = txn.TransactionID
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Expense recorded",
		slog.String("expense_id", result.ExpenseID),
		slog.String("amount", req.Amount.String()),
	)
	return &result, nil
}
