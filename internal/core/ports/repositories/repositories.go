package repositories

import (
	"context"
)

// Repositories bundles every repository the ledger engine mutates. A bundle
// handed to a unit-of-work callback is bound to one database transaction;
// the top-level bundle runs each call on the pool.
type Repositories interface {
	Wallet() WalletRepository
	Transaction() TransactionRepository
	Period() PeriodRepository
	Advance() AdvanceRepository
	Invoice() InvoiceRepository
	Payroll() PayrollRepository
	Expense() ExpenseRepository
	Refund() RefundRepository
	Deposit() DepositRepository
	Investment() InvestmentRepository
	Sequence() SequenceRepository
}

// UnitOfWork runs fn with a transaction-bound Repositories bundle. The whole
// callback commits or aborts as one: any error from fn rolls everything back
// and is returned unchanged. No balance change may happen outside one of
// these scopes.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}

// Registry is the full persistence surface services are built on: direct
// (pool-bound) repository access for reads plus the unit of work for writes.
type Registry interface {
	Repositories
	UnitOfWork
}
