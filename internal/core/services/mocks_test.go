package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
)

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepository = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWallets(ctx context.Context, limit int, offset int) ([]domain.Wallet, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) DeactivateWallet(ctx context.Context, walletID string, userID string, now time.Time) error {
	args := m.Called(ctx, walletID, userID, now)
	return args.Error(0)
}

func (m *MockWalletRepository) ApplyBalanceDelta(ctx context.Context, walletID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, walletID, delta, userID, now)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, txID string) (*domain.Transaction, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) MarkReversed(ctx context.Context, txID string, reversedByTxID string, userID string, now time.Time) error {
	args := m.Called(ctx, txID, reversedByTxID, userID, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) SetLinkedTransaction(ctx context.Context, txID string, linkedTxID string) error {
	args := m.Called(ctx, txID, linkedTxID)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactionsByWallet(ctx context.Context, walletID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, walletID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Transaction), returnedNextToken, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsByReference(ctx context.Context, kind domain.ReferenceKind, referenceID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, kind, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock PeriodRepository ---
type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepository = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) FindPeriodByMonthYear(ctx context.Context, month int, year int) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, lockedBy *string, lockedAt *time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, periodID, status, lockedBy, lockedAt, userID, now)
	return args.Error(0)
}

func (m *MockPeriodRepository) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

// --- Mock AdvanceRepository ---
type MockAdvanceRepository struct {
	mock.Mock
}

var _ portsrepo.AdvanceRepository = (*MockAdvanceRepository)(nil)

func (m *MockAdvanceRepository) FindAdvanceByStudentID(ctx context.Context, studentID string) (*domain.StudentAdvanceBalance, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentAdvanceBalance), args.Error(1)
}

func (m *MockAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.StudentAdvanceBalance) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockAdvanceRepository) ApplyAdvanceDelta(ctx context.Context, studentID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, studentID, delta, userID, now)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.FeeInvoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeInvoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoicePayment(ctx context.Context, invoiceID string, amountPaid decimal.Decimal, discountFromAdvance decimal.Decimal, status domain.InvoiceStatus, userID string, now time.Time) error {
	args := m.Called(ctx, invoiceID, amountPaid, discountFromAdvance, status, userID, now)
	return args.Error(0)
}

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

var _ portsrepo.PayrollRepository = (*MockPayrollRepository)(nil)

func (m *MockPayrollRepository) FindSlipByID(ctx context.Context, slipID string) (*domain.SalarySlip, error) {
	args := m.Called(ctx, slipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalarySlip), args.Error(1)
}

func (m *MockPayrollRepository) UpdateSlipPayment(ctx context.Context, slipID string, status domain.SlipStatus, paidAt *time.Time, transactionID *string, userID string, now time.Time) error {
	args := m.Called(ctx, slipID, status, paidAt, transactionID, userID, now)
	return args.Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepository = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseRecord) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseRecord, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseRecord), args.Error(1)
}

func (m *MockExpenseRepository) SetExpenseTransaction(ctx context.Context, expenseID string, transactionID *string, userID string, now time.Time) error {
	args := m.Called(ctx, expenseID, transactionID, userID, now)
	return args.Error(0)
}

// --- Mock RefundRepository ---
type MockRefundRepository struct {
	mock.Mock
}

var _ portsrepo.RefundRepository = (*MockRefundRepository)(nil)

func (m *MockRefundRepository) SaveRefund(ctx context.Context, refund domain.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockRefundRepository) FindRefundByID(ctx context.Context, refundID string) (*domain.Refund, error) {
	args := m.Called(ctx, refundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Refund), args.Error(1)
}

func (m *MockRefundRepository) SetRefundTransaction(ctx context.Context, refundID string, transactionID *string, userID string, now time.Time) error {
	args := m.Called(ctx, refundID, transactionID, userID, now)
	return args.Error(0)
}

// --- Mock DepositRepository ---
type MockDepositRepository struct {
	mock.Mock
}

var _ portsrepo.DepositRepository = (*MockDepositRepository)(nil)

func (m *MockDepositRepository) SaveDeposit(ctx context.Context, deposit domain.SecurityDeposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.SecurityDeposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SecurityDeposit), args.Error(1)
}

func (m *MockDepositRepository) UpdateDepositStatus(ctx context.Context, depositID string, status domain.DepositStatus, refundedAt *time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, depositID, status, refundedAt, userID, now)
	return args.Error(0)
}

func (m *MockDepositRepository) SetDepositTransaction(ctx context.Context, depositID string, transactionID *string, userID string, now time.Time) error {
	args := m.Called(ctx, depositID, transactionID, userID, now)
	return args.Error(0)
}

// --- Mock InvestmentRepository ---
type MockInvestmentRepository struct {
	mock.Mock
}

var _ portsrepo.InvestmentRepository = (*MockInvestmentRepository)(nil)

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) UpdateInvestmentPlacement(ctx context.Context, investmentID string, placedTxID *string, userID string, now time.Time) error {
	args := m.Called(ctx, investmentID, placedTxID, userID, now)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestmentMaturity(ctx context.Context, investmentID string, status domain.InvestmentStatus, maturityAmount *decimal.Decimal, maturedTxID *string, userID string, now time.Time) error {
	args := m.Called(ctx, investmentID, status, maturityAmount, maturedTxID, userID, now)
	return args.Error(0)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextReceiptNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSequenceRepository) NextRefundNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- Mock Registry ---

// MockRegistry bundles the repository mocks and runs unit-of-work callbacks
// against the same bundle, so expectations set on the individual mocks cover
// both direct and in-transaction calls.
type MockRegistry struct {
	wallet     *MockWalletRepository
	txn        *MockTransactionRepository
	period     *MockPeriodRepository
	advance    *MockAdvanceRepository
	invoice    *MockInvoiceRepository
	payroll    *MockPayrollRepository
	expense    *MockExpenseRepository
	refund     *MockRefundRepository
	deposit    *MockDepositRepository
	investment *MockInvestmentRepository
	sequence   *MockSequenceRepository
}

var _ portsrepo.Registry = (*MockRegistry)(nil)

func NewMockRegistry() *MockRegistry {
	return &MockRegistry{
		wallet:     new(MockWalletRepository),
		txn:        new(MockTransactionRepository),
		period:     new(MockPeriodRepository),
		advance:    new(MockAdvanceRepository),
		invoice:    new(MockInvoiceRepository),
		payroll:    new(MockPayrollRepository),
		expense:    new(MockExpenseRepository),
		refund:     new(MockRefundRepository),
		deposit:    new(MockDepositRepository),
		investment: new(MockInvestmentRepository),
		sequence:   new(MockSequenceRepository),
	}
}

func (m *MockRegistry) Wallet() portsrepo.WalletRepository         { return m.wallet }
func (m *MockRegistry) Transaction() portsrepo.TransactionRepository {
	return m.txn
}
func (m *MockRegistry) Period() portsrepo.PeriodRepository         { return m.period }
func (m *MockRegistry) Advance() portsrepo.AdvanceRepository       { return m.advance }
func (m *MockRegistry) Invoice() portsrepo.InvoiceRepository       { return m.invoice }
func (m *MockRegistry) Payroll() portsrepo.PayrollRepository       { return m.payroll }
func (m *MockRegistry) Expense() portsrepo.ExpenseRepository       { return m.expense }
func (m *MockRegistry) Refund() portsrepo.RefundRepository         { return m.refund }
func (m *MockRegistry) Deposit() portsrepo.DepositRepository       { return m.deposit }
func (m *MockRegistry) Investment() portsrepo.InvestmentRepository { return m.investment }
func (m *MockRegistry) Sequence() portsrepo.SequenceRepository     { return m.sequence }

func (m *MockRegistry) WithinTx(ctx context.Context, fn func(r portsrepo.Repositories) error) error {
	return fn(m)
}

func (m *MockRegistry) AssertExpectations(t mock.TestingT) {
	m.wallet.AssertExpectations(t)
	m.txn.AssertExpectations(t)
	m.period.AssertExpectations(t)
	m.advance.AssertExpectations(t)
	m.invoice.AssertExpectations(t)
	m.payroll.AssertExpectations(t)
	m.expense.AssertExpectations(t)
	m.refund.AssertExpectations(t)
	m.deposit.AssertExpectations(t)
	m.investment.AssertExpectations(t)
	m.sequence.AssertExpectations(t)
}

func stringPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
