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

type PaymentServiceTestSuite struct {
	suite.Suite
	registry  *MockRegistry
	service   portssvc.PaymentSvcFacade
	invoiceID string
	studentID string
	walletID  string
	userID    string
	date      time.Time
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.registry = NewMockRegistry()
	ledger := services.NewLedgerService(suite.registry)
	period := services.NewPeriodService(suite.registry)
	suite.service = services.NewPaymentService(suite.registry, ledger, period)
	suite.invoiceID = uuid.NewString()
	suite.studentID = uuid.NewString()
	suite.walletID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (suite *PaymentServiceTestSuite) expectOpenPeriod() {
	suite.registry.period.On("FindPeriodByMonthYear", mock.Anything, 3, 2025).
		Return(nil, apperrors.ErrNotFound).Once()
}

func (suite *PaymentServiceTestSuite) invoice(total, paid, fromAdvance int64) *domain.FeeInvoice {
	return &domain.FeeInvoice{
		InvoiceID:           suite.invoiceID,
		StudentID:           suite.studentID,
		TotalAmount:         decimal.NewFromInt(total),
		Discount:            decimal.Zero,
		Penalty:             decimal.Zero,
		AmountPaid:          decimal.NewFromInt(paid),
		DiscountFromAdvance: decimal.NewFromInt(fromAdvance),
		DueDate:             suite.date.AddDate(0, 1, 0),
		Status:              domain.InvoicePending,
	}
}

// Advance credit settles first, tendered cash covers the rest, and cash
// beyond the arrears is banked in full with the surplus credited back to the
// student's advance.
func (suite *PaymentServiceTestSuite) TestRecordFeePayment_AdvanceThenCashWithExcess() {
	ctx := context.Background()
	cash := decimal.NewFromInt(800)

	suite.expectOpenPeriod()
	suite.registry.invoice.On("FindInvoiceByID", mock.Anything, suite.invoiceID).
		Return(suite.invoice(1000, 0, 0), nil).Once()
	suite.registry.advance.On("FindAdvanceByStudentID", mock.Anything, suite.studentID).
		Return(&domain.StudentAdvanceBalance{StudentID: suite.studentID, Balance: decimal.NewFromInt(300)}, nil).Once()

	// advance deduction of 300
	suite.registry.advance.On("ApplyAdvanceDelta", mock.Anything, suite.studentID, decimal.NewFromInt(-300), suite.userID, suite.date).
		Return(decimal.Zero, nil).Once()
	// full cash of 800 banked
	suite.registry.wallet.On("ApplyBalanceDelta", mock.Anything, suite.walletID, decimal.NewFromInt(800), suite.userID, suite.date).
		Return(decimal.NewFromInt(1800), nil).Once()
	// excess of 100 credited back
	suite.registry.advance.On("ApplyAdvanceDelta", mock.Anything, suite.studentID, decimal.NewFromInt(100), suite.userID, suite.date).
		Return(decimal.NewFromInt(100), nil).Once()

	suite.registry.txn.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Twice()
	suite.registry.invoice.On("UpdateInvoicePayment", mock.Anything, suite.invoiceID,
		decimal.NewFromInt(1000), decimal.NewFromInt(300), domain.InvoicePaid, suite.userID, suite.date).
		Return(nil).Once()
	suite.registry.sequence.On("NextReceiptNumber", mock.Anything).Return("RCP-000042", nil).Once()

	result, err := suite.service.RecordFeePayment(ctx, dto.FeePaymentRequest{
		InvoiceID:     suite.invoiceID,
		Amount:        cash,
		WalletID:      suite.walletID,
		PaymentMethod: "CASH",
		Date:          &suite.date,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("RCP-000042", result.ReceiptNumber)
	suite.True(result.AdvanceApplied.Equal(decimal.NewFromInt(300)))
	suite.True(result.ExcessCredited.Equal(decimal.NewFromInt(100)))
	suite.True(result.AmountApplied.Equal(decimal.NewFromInt(1000)))
	suite.Equal(string(domain.InvoicePaid), result.InvoiceStatus)
	suite.Require().NotNil(result.TransactionID)
	suite.registry.AssertExpectations(suite.T())
}

// A payment fully covered by advance records no wallet entry.
func (suite *PaymentServiceTestSuite) TestRecordFeePayment_AdvanceOnly() {
	ctx := context.Background()

	suite.expectOpenPeriod()
	suite.registry.invoice.On("FindInvoiceByID", mock.Anything, suite.invoiceID).
		Return(suite.invoice(500, 0, 0), nil).Once()
	suite.registry.advance.On("FindAdvanceByStudentID", mock.Anything, suite.studentID).
		Return(&domain.StudentAdvanceBalance{StudentID: suite.studentID, Balance: decimal.NewFromInt(900)}, nil).Once()
	suite.registry.advance.On("ApplyAdvanceDelta", mock.Anything, suite.studentID, decimal.NewFromInt(-500), suite.userID, suite.date).
		Return(decimal.NewFromInt(400), nil).Once()
	suite.registry.txn.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.registry.invoice.On("UpdateInvoicePayment", mock.Anything, suite.invoiceID,
		decimal.NewFromInt(500), decimal.NewFromInt(500), domain.InvoicePaid, suite.userID, suite.date).
		Return(nil).Once()
	suite.registry.sequence.On("NextReceiptNumber", mock.Anything).Return("RCP-000043", nil).Once()

	result, err := suite.service.RecordFeePayment(ctx, dto.FeePaymentRequest{
		InvoiceID:     suite.invoiceID,
		Amount:        decimal.Zero,
		WalletID:      suite.walletID,
		PaymentMethod: "CASH",
		Date:          &suite.date,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(result.TransactionID)
	suite.True(result.AdvanceApplied.Equal(decimal.NewFromInt(500)))
	suite.registry.wallet.AssertNotCalled(suite.T(), "ApplyBalanceDelta",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordFeePayment_LockedPeriod() {
	ctx := context.Background()
	period := &domain.AccountingPeriod{PeriodID: uuid.NewString(), Month: 3, Year: 2025, Status: domain.PeriodLocked}

	suite.registry.period.On("FindPeriodByMonthYear", mock.Anything, 3, 2025).Return(period, nil).Once()

	_, err := suite.service.RecordFeePayment(ctx, dto.FeePaymentRequest{
		InvoiceID:     suite.invoiceID,
		Amount:        decimal.NewFromInt(100),
		WalletID:      suite.walletID,
		PaymentMethod: "CASH",
		Date:          &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindPeriodLocked))
	suite.registry.invoice.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordFeePayment_InvoiceAlreadyPaid() {
	ctx := context.Background()
	paid := suite.invoice(1000, 1000, 0)
	paid.Status = domain.InvoicePaid

	suite.expectOpenPeriod()
	suite.registry.invoice.On("FindInvoiceByID", mock.Anything, suite.invoiceID).Return(paid, nil).Once()

	_, err := suite.service.RecordFeePayment(ctx, dto.FeePaymentRequest{
		InvoiceID:     suite.invoiceID,
		Amount:        decimal.NewFromInt(100),
		WalletID:      suite.walletID,
		PaymentMethod: "CASH",
		Date:          &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindInvoiceAlreadyPaid))
}

func (suite *PaymentServiceTestSuite) TestRecordFeePayment_WaivedInvoice() {
	ctx := context.Background()
	waived := suite.invoice(1000, 0, 0)
	waived.Status = domain.InvoiceWaived

	suite.expectOpenPeriod()
	suite.registry.invoice.On("FindInvoiceByID", mock.Anything, suite.invoiceID).Return(waived, nil).Once()

	_, err := suite.service.RecordFeePayment(ctx, dto.FeePaymentRequest{
		InvoiceID:     suite.invoiceID,
		Amount:        decimal.NewFromInt(100),
		WalletID:      suite.walletID,
		PaymentMethod: "CASH",
		Date:          &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindInvoiceWaived))
}

func (suite *PaymentServiceTestSuite) TestRecordFeePayment_NegativeCash() {
	ctx := context.Background()

	_, err := suite.service.RecordFeePayment(ctx, dto.FeePaymentRequest{
		InvoiceID:     suite.invoiceID,
		Amount:        decimal.NewFromInt(-50),
		WalletID:      suite.walletID,
		PaymentMethod: "CASH",
		Date:          &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindInvalidAmount))
	suite.registry.period.AssertNotCalled(suite.T(), "FindPeriodByMonthYear", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordAdvanceApplication_NoAdvanceRow() {
	ctx := context.Background()

	suite.expectOpenPeriod()
	suite.registry.invoice.On("FindInvoiceByID", mock.Anything, suite.invoiceID).
		Return(suite.invoice(1000, 0, 0), nil).Once()
	suite.registry.advance.On("FindAdvanceByStudentID", mock.Anything, suite.studentID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordAdvanceApplication(ctx, dto.AdvanceApplicationRequest{
		InvoiceID: suite.invoiceID,
		Amount:    decimal.NewFromInt(200),
		Date:      &suite.date,
	}, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindInsufficientBalance))
}

// The applied amount is capped by both the invoice arrears and the credit on
// hand.
func (suite *PaymentServiceTestSuite) TestRecordAdvanceApplication_CappedAtArrears() {
	ctx := context.Background()

	suite.expectOpenPeriod()
	suite.registry.invoice.On("FindInvoiceByID", mock.Anything, suite.invoiceID).
		Return(suite.invoice(1000, 900, 0), nil).Once()
	suite.registry.advance.On("FindAdvanceByStudentID", mock.Anything, suite.studentID).
		Return(&domain.StudentAdvanceBalance{StudentID: suite.studentID, Balance: decimal.NewFromInt(500)}, nil).Once()
	suite.registry.advance.On("ApplyAdvanceDelta", mock.Anything, suite.studentID, decimal.NewFromInt(-100), suite.userID, suite.date).
		Return(decimal.NewFromInt(400), nil).Once()
	suite.registry.txn.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.registry.invoice.On("UpdateInvoicePayment", mock.Anything, suite.invoiceID,
		decimal.NewFromInt(1000), decimal.NewFromInt(100), domain.InvoicePaid, suite.userID, suite.date).
		Return(nil).Once()

	result, err := suite.service.RecordAdvanceApplication(ctx, dto.AdvanceApplicationRequest{
		InvoiceID: suite.invoiceID,
		Amount:    decimal.NewFromInt(300),
		Date:      &suite.date,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.AmountApplied.Equal(decimal.NewFromInt(100)))
	suite.Equal(string(domain.InvoicePaid), result.InvoiceStatus)
	suite.registry.AssertExpectations(suite.T())
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
