package services

import (
	"context"

	"github.com/unifin/campus_finance_app/internal/dto"
)

// PaymentSvcFacade runs the student-facing payment workflows.
type PaymentSvcFacade interface {
	RecordFeePayment(ctx context.Context, req dto.FeePaymentRequest, performedBy string) (*dto.FeePaymentResult, error)
	RecordAdvanceApplication(ctx context.Context, req dto.AdvanceApplicationRequest, performedBy string) (*dto.AdvanceApplicationResult, error)
}

// TransferSvcFacade moves money between wallets.
type TransferSvcFacade interface {
	RecordTransfer(ctx context.Context, req dto.TransferRequest, performedBy string) (*dto.TransferResult, error)
}

// PayrollSvcFacade disburses salary slips.
type PayrollSvcFacade interface {
	RecordSalaryDisbursement(ctx context.Context, req dto.SalaryDisbursementRequest, performedBy string) (*dto.SalaryDisbursementResult, error)
}

// ExpenseSvcFacade records operating expenses.
type ExpenseSvcFacade interface {
	RecordExpensePayment(ctx context.Context, req dto.ExpensePaymentRequest, performedBy string) (*dto.ExpensePaymentResult, error)
}

// RefundSvcFacade pays money back to students and receives deposits.
type RefundSvcFacade interface {
	RecordRefund(ctx context.Context, req dto.RefundRequest, performedBy string) (*dto.RefundResult, error)
	RecordSecurityDeposit(ctx context.Context, req dto.SecurityDepositRequest, performedBy string) (*dto.SecurityDepositResult, error)
}

// InvestmentSvcFacade records investment placements and maturities.
type InvestmentSvcFacade interface {
	RecordInvestmentOutflow(ctx context.Context, req dto.InvestmentOutflowRequest, performedBy string) (*dto.InvestmentResult, error)
	RecordInvestmentReturn(ctx context.Context, req dto.InvestmentReturnRequest, performedBy string) (*dto.InvestmentResult, error)
}

// ReversalSvcFacade symmetrically undoes previously recorded transactions.
type ReversalSvcFacade interface {
	ReverseTransaction(ctx context.Context, originalTxID string, req dto.ReversalRequest, performedBy string) (*dto.ReversalResult, error)
}
