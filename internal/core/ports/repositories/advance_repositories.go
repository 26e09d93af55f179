package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// AdvanceRepository persists per-student prepaid credit balances.
type AdvanceRepository interface {
	FindAdvanceByStudentID(ctx context.Context, studentID string) (*domain.StudentAdvanceBalance, error)
	SaveAdvance(ctx context.Context, advance domain.StudentAdvanceBalance) error

	// ApplyAdvanceDelta atomically increments the student's credit balance by
	// delta and returns the post-update balance.
	ApplyAdvanceDelta(ctx context.Context, studentID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)
}
