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

type ReversalServiceTestSuite struct {
	suite.Suite
	registry *MockRegistry
	service  portssvc.ReversalSvcFacade
	walletID string
	userID   string
	date     time.Time
}

func (suite *ReversalServiceTestSuite) SetupTest() {
	suite.registry = NewMockRegistry()
	ledger := services.NewLedgerService(suite.registry)
	period := services.NewPeriodService(suite.registry)
	suite.service = services.NewReversalService(suite.registry, ledger, period)
	suite.walletID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.date = time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
}

func (suite *ReversalServiceTestSuite) expectOpenPeriod() {
	suite.registry.period.On("FindPeriodByMonthYear", mock.Anything, 8, 2025).
		Return(nil, apperrors.ErrNotFound).Once()
}

func (suite *ReversalServiceTestSuite) feePaymentTx(invoiceID string) *domain.Transaction {
	return &domain.Transaction{
		TransactionID:  uuid.NewString(),
		TxType:         domain.TxFeePayment,
		Amount:         decimal.NewFromInt(600),
		WalletID:       suite.walletID,
		Reference:      &domain.Reference{Kind: domain.RefFeeInvoice, ID: invoiceID},
		PerformedBy:    suite.userID,
		Date:           suite.date.AddDate(0, 0, -3),
		RunningBalance: decimal.NewFromInt(1600),
	}
}

// Reversing an inflow applies the opposite delta, marks the original, and
// rolls the invoice payment fields back.
func (suite *ReversalServiceTestSuite) TestReverseTransaction_FeePayment() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	orig := suite.feePaymentTx(invoiceID)
	invoice := &domain.FeeInvoice{
		InvoiceID:   invoiceID,
		StudentID:   uuid.NewString(),
		TotalAmount: decimal.NewFromInt(600),
		Discount:    decimal.NewFromInt(0),
		Penalty:     decimal.NewFromInt(0),
		AmountPaid:  decimal.NewFromInt(600),
		DueDate:     suite.date.AddDate(0, 1, 0),
		Status:      domain.InvoicePaid,
	}
	invoice.DiscountFromAdvance = decimal.NewFromInt(0)

	suite.registry.txn.On("FindTransactionByID", mock.Anything, orig.TransactionID).Return(orig, nil).Once()
	suite.expectOpenPeriod()

	// FEE_PAYMENT was an inflow, so the reversal takes the money back out
	suite.registry.wallet.On("ApplyBalanceDelta", mock.Anything, suite.walletID, orig.Amount.Neg(), suite.userID, suite.date).
		Return(decimal.NewFromInt(1000), nil).Once()
	suite.registry.txn.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.registry.txn.On("MarkReversed", mock.Anything, orig.TransactionID, mock.AnythingOfType("string"), suite.userID, suite.date).
		Return(nil).Once()
	suite.registry.invoice.On("FindInvoiceByID", mock.Anything, invoiceID).Return(invoice, nil).Once()
	suite.registry.invoice.On("UpdateInvoicePayment", mock.Anything, invoiceID,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(0)) }),
		decimal.NewFromInt(0), domain.InvoicePending, suite.userID, suite.date).
		Return(nil).Once()

	result, err := suite.service.ReverseTransaction(ctx, orig.TransactionID, dto.ReversalRequest{
		Reason: "duplicate entry",
		Date:   &suite.date,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(result.ReversalTxID)
	suite.NotEqual(orig.TransactionID, result.ReversalTxID)
	suite.registry.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestReverseTransaction_AlreadyReversed() {
	ctx := context.Background()
	orig := suite.feePaymentTx(uuid.NewString())
	orig.IsReversed = true

	suite.registry.txn.On("FindTransactionByID", mock.Anything, orig.TransactionID).Return(orig, nil).Once()

	_, err := suite.service.ReverseTransaction(ctx, orig.TransactionID, dto.ReversalRequest{
		Reason: "second attempt",
		Date:   &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindTxAlreadyReversed))
	suite.registry.wallet.AssertNotCalled(suite.T(), "ApplyBalanceDelta",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestReverseTransaction_ReversalItself() {
	ctx := context.Background()
	orig := suite.feePaymentTx(uuid.NewString())
	orig.TxType = domain.TxReversal

	suite.registry.txn.On("FindTransactionByID", mock.Anything, orig.TransactionID).Return(orig, nil).Once()

	_, err := suite.service.ReverseTransaction(ctx, orig.TransactionID, dto.ReversalRequest{
		Reason: "undo the undo",
		Date:   &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindCannotReverseReversal))
}

func (suite *ReversalServiceTestSuite) TestReverseTransaction_AdvanceDeduction() {
	ctx := context.Background()
	orig := &domain.Transaction{
		TransactionID: uuid.NewString(),
		TxType:        domain.TxAdvanceDeduction,
		Amount:        decimal.NewFromInt(200),
		PerformedBy:   suite.userID,
		Date:          suite.date,
	}

	suite.registry.txn.On("FindTransactionByID", mock.Anything, orig.TransactionID).Return(orig, nil).Once()

	_, err := suite.service.ReverseTransaction(ctx, orig.TransactionID, dto.ReversalRequest{
		Reason: "mistake",
		Date:   &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindCannotReverseAdvance))
}

func (suite *ReversalServiceTestSuite) TestReverseTransaction_NotFound() {
	ctx := context.Background()
	txID := uuid.NewString()

	suite.registry.txn.On("FindTransactionByID", mock.Anything, txID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ReverseTransaction(ctx, txID, dto.ReversalRequest{
		Reason: "whatever",
		Date:   &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindTxNotFound))
}

func (suite *ReversalServiceTestSuite) TestReverseTransaction_LockedPeriod() {
	ctx := context.Background()
	orig := suite.feePaymentTx(uuid.NewString())
	period := &domain.AccountingPeriod{PeriodID: uuid.NewString(), Month: 8, Year: 2025, Status: domain.PeriodLocked}

	suite.registry.txn.On("FindTransactionByID", mock.Anything, orig.TransactionID).Return(orig, nil).Once()
	suite.registry.period.On("FindPeriodByMonthYear", mock.Anything, 8, 2025).Return(period, nil).Once()

	_, err := suite.service.ReverseTransaction(ctx, orig.TransactionID, dto.ReversalRequest{
		Reason: "late fix",
		Date:   &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindPeriodLocked))
}

// Reversing an outflow puts the money back.
func (suite *ReversalServiceTestSuite) TestReverseTransaction_SalaryPayment() {
	ctx := context.Background()
	slipID := uuid.NewString()
	orig := &domain.Transaction{
		TransactionID: uuid.NewString(),
		TxType:        domain.TxSalaryPayment,
		Amount:        decimal.NewFromInt(900),
		WalletID:      suite.walletID,
		Reference:     &domain.Reference{Kind: domain.RefSalarySlip, ID: slipID},
		PerformedBy:   suite.userID,
		Date:          suite.date.AddDate(0, 0, -1),
	}

	suite.registry.txn.On("FindTransactionByID", mock.Anything, orig.TransactionID).Return(orig, nil).Once()
	suite.expectOpenPeriod()
	suite.registry.wallet.On("ApplyBalanceDelta", mock.Anything, suite.walletID, decimal.NewFromInt(900), suite.userID, suite.date).
		Return(decimal.NewFromInt(2900), nil).Once()
	suite.registry.txn.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.registry.txn.On("MarkReversed", mock.Anything, orig.TransactionID, mock.AnythingOfType("string"), suite.userID, suite.date).
		Return(nil).Once()
	suite.registry.payroll.On("UpdateSlipPayment", mock.Anything, slipID, domain.SlipDraft,
		(*time.Time)(nil), (*string)(nil), suite.userID, suite.date).
		Return(nil).Once()

	result, err := suite.service.ReverseTransaction(ctx, orig.TransactionID, dto.ReversalRequest{
		Reason: "wrong slip",
		Date:   &suite.date,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(result.ReversalTxID)
	suite.registry.AssertExpectations(suite.T())
}

func TestReversalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReversalServiceTestSuite))
}
