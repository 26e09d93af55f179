package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/dto"
	"github.com/unifin/campus_finance_app/internal/middleware"
)

// periodService is the period lock guard plus period administration.
type periodService struct {
	registry portsrepo.Registry
}

// NewPeriodService creates the period guard over the given registry.
func NewPeriodService(registry portsrepo.Registry) portssvc.PeriodSvcFacade {
	return &periodService{registry: registry}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// AssertOpen fails with PeriodLocked when date falls into a LOCKED period.
// A (month, year) with no period row counts as open.
func (s *periodService) AssertOpen(ctx context.Context, r portsrepo.Repositories, date time.Time) error {
	month, year := int(date.Month()), date.Year()
	period, err := r.Period().FindPeriodByMonthYear(ctx, month, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if period.Status == domain.PeriodLocked {
		return apperrors.NewPeriodLocked(month, year)
	}
	return nil
}

func (s *periodService) CreatePeriod(ctx context.Context, req dto.CreatePeriodRequest, creatorUserID string) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	period := domain.AccountingPeriod{
		PeriodID: uuid.NewString(),
		Month:    req.Month,
		Year:     req.Year,
		Status:   domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.registry.Period().SavePeriod(ctx, period); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Newf(apperrors.KindDuplicatePeriod, "accounting period %02d/%d already exists", req.Month, req.Year)
		}
		return nil, err
	}

	logger.Info("Accounting period created",
		slog.String("period_id", period.PeriodID),
		slog.Int("month", period.Month),
		slog.Int("year", period.Year),
	)
	return &period, nil
}

func (s *periodService) LockPeriod(ctx context.Context, periodID string, userID string) (*domain.AccountingPeriod, error) {
	period, err := s.registry.Period().FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodLocked {
		return period, nil
	}

	now := time.Now().UTC()
	if err := s.registry.Period().UpdatePeriodStatus(ctx, periodID, domain.PeriodLocked, &userID, &now, userID, now); err != nil {
		return nil, err
	}
	period.Status = domain.PeriodLocked
	period.LockedBy = &userID
	period.LockedAt = &now
	return period, nil
}

func (s *periodService) UnlockPeriod(ctx context.Context, periodID string, userID string) (*domain.AccountingPeriod, error) {
	period, err := s.registry.Period().FindPeriodByID(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.Status == domain.PeriodOpen {
		return period, nil
	}

	now := time.Now().UTC()
	if err := s.registry.Period().UpdatePeriodStatus(ctx, periodID, domain.PeriodOpen, nil, nil, userID, now); err != nil {
		return nil, err
	}
	period.Status = domain.PeriodOpen
	period.LockedBy = nil
	period.LockedAt = nil
	return period, nil
}

func (s *periodService) ListPeriods(ctx context.Context) ([]domain.AccountingPeriod, error) {
	return s.registry.Period().ListPeriods(ctx)
}
