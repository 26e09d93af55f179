package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrorKind identifies one of the closed set of error conditions the ledger
// engine can raise. Handlers translate kinds to HTTP status codes; the set is
// part of the public contract and must not grow ad hoc.
type ErrorKind string

const (
	KindPeriodLocked           ErrorKind = "PeriodLocked"
	KindInsufficientBalance    ErrorKind = "InsufficientBalance"
	KindWalletNotFound         ErrorKind = "WalletNotFound"
	KindInvoiceNotFound        ErrorKind = "InvoiceNotFound"
	KindInvoiceAlreadyPaid     ErrorKind = "InvoiceAlreadyPaid"
	KindInvoiceWaived          ErrorKind = "InvoiceWaived"
	KindSlipNotDraft           ErrorKind = "SlipNotDraft"
	KindStudentNotFound        ErrorKind = "StudentNotFound"
	KindInvalidAmount          ErrorKind = "InvalidAmount"
	KindSameWalletTransfer     ErrorKind = "SameWalletTransfer"
	KindDepositAlreadyRefunded ErrorKind = "DepositAlreadyRefunded"
	KindInvestmentNotActive    ErrorKind = "InvestmentNotActive"
	KindDuplicatePeriod        ErrorKind = "DuplicatePeriod"
	KindValidationError        ErrorKind = "ValidationError"
	KindTxNotFound             ErrorKind = "TxNotFound"
	KindTxAlreadyReversed      ErrorKind = "TxAlreadyReversed"
	KindCannotReverseReversal  ErrorKind = "CannotReverseReversal"
	KindCannotReverseAdvance   ErrorKind = "CannotReverseAdvance"
)

// AppError is a typed error raised inside a unit of work. It carries the kind
// for boundary mapping and an optional detail map that handlers serialise
// verbatim into the error envelope.
type AppError struct {
	Kind    ErrorKind
	Message string
	Detail  map[string]any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError of the given kind.
func New(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(kind ErrorKind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithDetail attaches a detail entry and returns the same error for chaining.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Detail == nil {
		e.Detail = map[string]any{}
	}
	e.Detail[key] = value
	return e
}

// IsKind reports whether err (or anything it wraps) is an AppError of kind k.
func IsKind(err error, k ErrorKind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == k
	}
	return false
}

// KindOf extracts the ErrorKind from err, if it carries one.
func KindOf(err error) (ErrorKind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return "", false
}

// NewPeriodLocked builds the PeriodLocked error for a month/year gate refusal.
func NewPeriodLocked(month int, year int) *AppError {
	return Newf(KindPeriodLocked, "accounting period %02d/%d is locked", month, year).
		WithDetail("month", month).
		WithDetail("year", year)
}

// NewInsufficientBalance builds the InsufficientBalance error carrying the
// required amount, the balance before the debit and the shortfall.
func NewInsufficientBalance(required, available decimal.Decimal) *AppError {
	shortfall := required.Sub(available)
	return Newf(KindInsufficientBalance, "insufficient balance: required %s, available %s", required, available).
		WithDetail("required", required.String()).
		WithDetail("available", available.String()).
		WithDetail("shortfall", shortfall.String())
}

// NewInvalidAmount builds the InvalidAmount error for non-positive amounts.
func NewInvalidAmount(amount decimal.Decimal) *AppError {
	return Newf(KindInvalidAmount, "amount must be greater than zero, got %s", amount).
		WithDetail("amount", amount.String())
}
