package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/core/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	registry *MockRegistry
	service  portssvc.ExpenseSvcFacade
	walletID string
	userID   string
	date     time.Time
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.registry = NewMockRegistry()
	ledger := services.NewLedgerService(suite.registry)
	period := services.NewPeriodService(suite.registry)
	suite.service = services.NewExpenseService(suite.registry, ledger, period)
	suite.walletID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.date = time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)
}

// Expense record and ledger entry are created as one unit; the record carries
// the transaction link from the start.
func (suite *ExpenseServiceTestSuite) TestRecordExpensePayment_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1200)

	suite.registry.period.On("FindPeriodByMonthYear", mock.Anything, 9, 2025).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.registry.wallet.On("ApplyBalanceDelta", mock.Anything, suite.walletID, amount.Neg(), suite.userID, suite.date).
		Return(decimal.NewFromInt(3800), nil).Once()
	suite.registry.txn.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.registry.expense.On("SaveExpense", mock.Anything, mock.MatchedBy(func(e domain.ExpenseRecord) bool {
		return e.Title == "Lab equipment" && e.TransactionID != nil && e.Amount.Equal(amount)
	})).Return(nil).Once()

	result, err := suite.service.RecordExpensePayment(ctx, dto.ExpensePaymentRequest{
		Title:      "Lab equipment",
		CategoryID: uuid.NewString(),
		Amount:     amount,
		WalletID:   suite.walletID,
		Date:       &suite.date,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(result.ExpenseID)
	suite.NotEmpty(result.TransactionID)
	suite.registry.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestRecordExpensePayment_InsufficientBalance() {
	ctx := context.Background()
	amount := decimal.NewFromInt(9000)

	suite.registry.period.On("FindPeriodByMonthYear", mock.Anything, 9, 2025).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.registry.wallet.On("ApplyBalanceDelta", mock.Anything, suite.walletID, amount.Neg(), suite.userID, suite.date).
		Return(decimal.NewFromInt(-5000), nil).Once()

	_, err := suite.service.RecordExpensePayment(ctx, dto.ExpensePaymentRequest{
		Title:      "Bus repair",
		CategoryID: uuid.NewString(),
		Amount:     amount,
		WalletID:   suite.walletID,
		Date:       &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindInsufficientBalance))
	suite.registry.expense.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
