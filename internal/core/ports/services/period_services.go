package services

import (
	"context"
	"time"

	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	"github.com/unifin/campus_finance_app/internal/dto"
)

// PeriodSvcFacade is the period lock guard plus period administration.
type PeriodSvcFacade interface {
	// AssertOpen fails with PeriodLocked if date falls in a LOCKED period.
	// Called first inside every workflow, on the same repository bundle as
	// the writes it gates. No side effects on success.
	AssertOpen(ctx context.Context, r portsrepo.Repositories, date time.Time) error

	CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.AccountingPeriod, error)
	LockPeriod(ctx context.Context, periodID string, userID string) (*domain.AccountingPeriod, error)
	UnlockPeriod(ctx context.Context, periodID string, userID string) (*domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error)
}
