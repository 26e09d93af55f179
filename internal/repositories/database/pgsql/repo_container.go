package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
)

// Querier is the subset of pgx operations the repositories run. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository code serves
// pool-bound reads and transaction-bound writes.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RepoContainer binds every repository to one Querier. The container created
// from the pool also implements the unit of work: WithinTx hands the callback
// a second container whose repositories all run on the same pgx.Tx.
type RepoContainer struct {
	pool *pgxpool.Pool
	q    Querier

	wallet      *PgxWalletRepository
	transaction *PgxTransactionRepository
	period      *PgxPeriodRepository
	advance     *PgxAdvanceRepository
	invoice     *PgxInvoiceRepository
	payroll     *PgxPayrollRepository
	expense     *PgxExpenseRepository
	refund      *PgxRefundRepository
	deposit     *PgxDepositRepository
	investment  *PgxInvestmentRepository
	sequence    *PgxSequenceRepository
}

// NewRepoContainer creates the pool-bound registry.
func NewRepoContainer(pool *pgxpool.Pool) portsrepo.Registry {
	c := newBoundContainer(pool)
	c.pool = pool
	return c
}

func newBoundContainer(q Querier) *RepoContainer {
	return &RepoContainer{
		q:           q,
		wallet:      &PgxWalletRepository{q: q},
		transaction: &PgxTransactionRepository{q: q},
		period:      &PgxPeriodRepository{q: q},
		advance:     &PgxAdvanceRepository{q: q},
		invoice:     &PgxInvoiceRepository{q: q},
		payroll:     &PgxPayrollRepository{q: q},
		expense:     &PgxExpenseRepository{q: q},
		refund:      &PgxRefundRepository{q: q},
		deposit:     &PgxDepositRepository{q: q},
		investment:  &PgxInvestmentRepository{q: q},
		sequence:    &PgxSequenceRepository{q: q},
	}
}

var _ portsrepo.Registry = (*RepoContainer)(nil)

func (c *RepoContainer) Wallet() portsrepo.WalletRepository           { return c.wallet }
func (c *RepoContainer) Transaction() portsrepo.TransactionRepository { return c.transaction }
func (c *RepoContainer) Period() portsrepo.PeriodRepository           { return c.period }
func (c *RepoContainer) Advance() portsrepo.AdvanceRepository         { return c.advance }
func (c *RepoContainer) Invoice() portsrepo.InvoiceRepository         { return c.invoice }
func (c *RepoContainer) Payroll() portsrepo.PayrollRepository         { return c.payroll }
func (c *RepoContainer) Expense() portsrepo.ExpenseRepository         { return c.expense }
func (c *RepoContainer) Refund() portsrepo.RefundRepository           { return c.refund }
func (c *RepoContainer) Deposit() portsrepo.DepositRepository         { return c.deposit }
func (c *RepoContainer) Investment() portsrepo.InvestmentRepository   { return c.investment }
func (c *RepoContainer) Sequence() portsrepo.SequenceRepository       { return c.sequence }

// WithinTx starts a database transaction, runs fn with a container bound to
// it, and commits only when fn returns nil. Any error from fn rolls back
// everything the callback did and is returned unchanged.
func (c *RepoContainer) WithinTx(ctx context.Context, fn func(r portsrepo.Repositories) error) error {
	if c.pool == nil {
		return errors.New("WithinTx called on a transaction-bound container")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	if err := fn(newBoundContainer(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
