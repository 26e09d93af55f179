package repositories

import (
	"context"
	"time"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// PeriodRepository persists accounting periods, unique per (month, year).
type PeriodRepository interface {
	// SavePeriod inserts a new period row. A unique violation on
	// (month, year) surfaces as ErrDuplicate.
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)
	FindPeriodByMonthYear(ctx context.Context, month int, year int) (*domain.AccountingPeriod, error)
	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, lockedBy *string, lockedAt *time.Time, userID string, now time.Time) error
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)
}
