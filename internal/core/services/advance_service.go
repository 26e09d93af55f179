package services

import (
	"context"
	"errors"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portsrepo "github.com/unifin/campus_finance_app/internal/core/ports/repositories"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
)

// advanceService reads student advance balances.
type advanceService struct {
	registry portsrepo.Registry
}

// NewAdvanceService creates the advance read service.
func NewAdvanceService(registry portsrepo.Registry) portssvc.AdvanceSvcFacade {
	return &advanceService{registry: registry}
}

var _ portssvc.AdvanceSvcFacade = (*advanceService)(nil)

func (s *advanceService) GetAdvanceBalance(ctx context.Context, studentID string) (*domain.StudentAdvanceBalance, error) {
	advance, err := s.registry.Advance().FindAdvanceByStudentID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Newf(apperrors.KindStudentNotFound, "no advance balance for student %s", studentID)
		}
		return nil, err
	}
	return advance, nil
}
