package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// RefundRepository persists refund records created by the refund workflow.
type RefundRepository interface {
	SaveRefund(ctx context.Context, refund domain.Refund) error
	FindRefundByID(ctx context.Context, refundID string) (*domain.Refund, error)
	SetRefundTransaction(ctx context.Context, refundID string, transactionID *string, userID string, now time.Time) error
}

// DepositRepository persists security deposits.
type DepositRepository interface {
	SaveDeposit(ctx context.Context, deposit domain.SecurityDeposit) error
	FindDepositByID(ctx context.Context, depositID string) (*domain.SecurityDeposit, error)
	UpdateDepositStatus(ctx context.Context, depositID string, status domain.DepositStatus, refundedAt *time.Time, userID string, now time.Time) error
	SetDepositTransaction(ctx context.Context, depositID string, transactionID *string, userID string, now time.Time) error
}

// InvestmentRepository reads investments and writes back placement and
// maturity state. Investment creation belongs to the treasury module.
type InvestmentRepository interface {
	FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error)
	UpdateInvestmentPlacement(ctx context.Context, investmentID string, placedTxID *string, userID string, now time.Time) error
	UpdateInvestmentMaturity(ctx context.Context, investmentID string, status domain.InvestmentStatus, maturityAmount *decimal.Decimal, maturedTxID *string, userID string, now time.Time) error
}

// SequenceRepository hands out monotonic human-facing document numbers.
// Backed by database sequences so numbers are collision-free under
// concurrent requests.
type SequenceRepository interface {
	NextReceiptNumber(ctx context.Context) (string, error)
	NextRefundNumber(ctx context.Context) (string, error)
}
