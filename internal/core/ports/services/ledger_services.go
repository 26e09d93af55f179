package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// RecordParams are the inputs to the atomic recording primitive.
type RecordParams struct {
	TxType      domain.TxType
	Amount      decimal.Decimal
	WalletID    string
	LinkedTxID  *string
	Reference   *domain.Reference
	Notes       string
	PerformedBy string
	Date        time.Time

	// DirectionOverride is used only by the reversal engine, which must apply
	// the opposite of whatever sign the original entry carried.
	DirectionOverride *domain.Direction
}

// AdvanceDeductionParams are the inputs to the audit-only advance entry.
type AdvanceDeductionParams struct {
	StudentID   string
	Amount      decimal.Decimal
	Reference   *domain.Reference
	Notes       string
	PerformedBy string
	Date        time.Time
}

// LedgerSvcFacade is the transaction recorder plus the ledger read surface.
// Record and RecordAdvanceDeduction take the transaction-bound repository
// bundle of the enclosing unit of work; no other code path may mutate a
// wallet balance.
type LedgerSvcFacade interface {
	Record(ctx context.Context, r portsrepo.Repositories, p RecordParams) (*domain.Transaction, error)
	RecordAdvanceDeduction(ctx context.Context, r portsrepo.Repositories, p AdvanceDeductionParams) (*domain.Transaction, error)

	GetTransactionByID(ctx context.Context, txID string) (*domain.Transaction, error)
	ListTransactionsByWallet(ctx context.Context, walletID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	ListTransactionsByReference(ctx context.Context, kind domain.ReferenceKind, referenceID string) ([]domain.Transaction, error)
}
