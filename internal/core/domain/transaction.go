package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType classifies a ledger entry. The set is closed: every money movement
// the engine can record is one of these.
type TxType string

const (
	TxFeePayment        TxType = "FEE_PAYMENT"
	TxTransferIn        TxType = "TRANSFER_IN"
	TxTransferOut       TxType = "TRANSFER_OUT"
	TxSalaryPayment     TxType = "SALARY_PAYMENT"
	TxExpensePayment    TxType = "EXPENSE_PAYMENT"
	TxRefund            TxType = "REFUND"
	TxSecurityDeposit   TxType = "SECURITY_DEPOSIT"
	TxInvestmentOutflow TxType = "INVESTMENT_OUTFLOW"
	TxInvestmentReturn  TxType = "INVESTMENT_RETURN"
	TxReversal          TxType = "REVERSAL"
	// TxAdvanceDeduction is an audit-only entry: applying a student's advance
	// credit to an invoice moves no wallet cash and goes through a dedicated
	// recorder path, never the sign table.
	TxAdvanceDeduction TxType = "STUDENT_ADVANCE_DEDUCTION"
)

// Direction is the signed effect a transaction type has on a wallet balance.
type Direction int

const (
	// DirectionNone means the entry never touches a wallet balance.
	DirectionNone Direction = iota
	DirectionInflow
	DirectionOutflow
)

// Opposite returns the negated direction. None stays None.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionInflow:
		return DirectionOutflow
	case DirectionOutflow:
		return DirectionInflow
	default:
		return DirectionNone
	}
}

// Direction maps a transaction type to its wallet effect. A REVERSAL defaults
// to outflow; the reversal engine overrides it with the opposite of whatever
// the original entry applied.
func (t TxType) Direction() Direction {
	switch t {
	case TxFeePayment, TxTransferIn, TxSecurityDeposit, TxInvestmentReturn:
		return DirectionInflow
	case TxTransferOut, TxSalaryPayment, TxExpensePayment, TxRefund, TxInvestmentOutflow, TxReversal:
		return DirectionOutflow
	case TxAdvanceDeduction:
		return DirectionNone
	default:
		return DirectionNone
	}
}

// Valid reports whether t is one of the closed set of transaction types.
func (t TxType) Valid() bool {
	switch t {
	case TxFeePayment, TxTransferIn, TxTransferOut, TxSalaryPayment,
		TxExpensePayment, TxRefund, TxSecurityDeposit, TxInvestmentOutflow,
		TxInvestmentReturn, TxReversal, TxAdvanceDeduction:
		return true
	}
	return false
}

// ReferenceKind names the external entity a ledger entry represents. The set
// is closed so the reversal engine's rollback dispatch is exhaustive.
type ReferenceKind string

const (
	RefFeeInvoice      ReferenceKind = "FeeInvoice"
	RefSalarySlip      ReferenceKind = "SalarySlip"
	RefExpenseRecord   ReferenceKind = "ExpenseRecord"
	RefRefund          ReferenceKind = "Refund"
	RefSecurityDeposit ReferenceKind = "SecurityDeposit"
	RefInvestment      ReferenceKind = "Investment"
)

// Reference is a typed pointer to the external entity a transaction settles.
type Reference struct {
	Kind ReferenceKind `json:"kind"`
	ID   string        `json:"id"`
}

// Transaction is one immutable, signed money-movement record. Amount, type,
// wallet and date never change after creation; only the reversal-tracking
// fields mutate, and only via the reversal engine.
type Transaction struct {
	TransactionID  string          `json:"transactionID"` // Primary Key (UUID)
	TxType         TxType          `json:"txType"`
	Amount         decimal.Decimal `json:"amount"`             // Strictly positive
	WalletID       string          `json:"walletID"`           // Empty for advance deductions
	LinkedTxID     *string         `json:"linkedTxID"`         // Transfer pair / reversal<->original
	Reference      *Reference      `json:"reference"`          // External entity this movement settles
	Notes          string          `json:"notes"`              // Nullable
	PerformedBy    string          `json:"performedBy"`        // UserID Reference
	Date           time.Time       `json:"date"`               // Accounting date, gates the period lock
	IsReversed     bool            `json:"isReversed"`         // false -> true exactly once
	ReversedByTxID *string         `json:"reversedByTxID"`     // Set only by the reversal engine
	RunningBalance decimal.Decimal `json:"runningBalance"`     // Wallet balance after this entry
	AuditFields
}

// Reversible reports whether the reversal engine may undo this entry.
// Reversals themselves and advance deductions are terminal.
func (t Transaction) Reversible() bool {
	return !t.IsReversed && t.TxType != TxReversal && t.TxType != TxAdvanceDeduction
}
