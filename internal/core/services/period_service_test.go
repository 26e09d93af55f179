package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unifin/campus_finance_app/internal/apperrors"
	"github.com/unifin/campus_finance_app/internal/core/domain"
	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/core/services"
	"github.com/unifin/campus_finance_app/internal/dto"
)

type PeriodServiceTestSuite struct {
	suite.Suite
	registry *MockRegistry
	service  portssvc.PeriodSvcFacade
	userID   string
}

func (suite *PeriodServiceTestSuite) SetupTest() {
	suite.registry = NewMockRegistry()
	suite.service = services.NewPeriodService(suite.registry)
	suite.userID = uuid.NewString()
}

func (suite *PeriodServiceTestSuite) TestAssertOpen_NoPeriodRow() {
	ctx := context.Background()
	date := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	suite.registry.period.On("FindPeriodByMonthYear", ctx, 4, 2025).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AssertOpen(ctx, suite.registry, date)

	suite.NoError(err)
	suite.registry.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestAssertOpen_OpenPeriod() {
	ctx := context.Background()
	date := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	period := &domain.AccountingPeriod{PeriodID: uuid.NewString(), Month: 4, Year: 2025, Status: domain.PeriodOpen}

	suite.registry.period.On("FindPeriodByMonthYear", ctx, 4, 2025).Return(period, nil).Once()

	err := suite.service.AssertOpen(ctx, suite.registry, date)

	suite.NoError(err)
}

func (suite *PeriodServiceTestSuite) TestAssertOpen_LockedPeriod() {
	ctx := context.Background()
	date := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	period := &domain.AccountingPeriod{PeriodID: uuid.NewString(), Month: 4, Year: 2025, Status: domain.PeriodLocked}

	suite.registry.period.On("FindPeriodByMonthYear", ctx, 4, 2025).Return(period, nil).Once()

	err := suite.service.AssertOpen(ctx, suite.registry, date)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindPeriodLocked))
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Success() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{Month: 7, Year: 2025}

	suite.registry.period.On("SavePeriod", ctx, mock.AnythingOfType("domain.AccountingPeriod")).Return(nil).Once()

	period, err := suite.service.CreatePeriod(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(period.PeriodID)
	suite.Equal(7, period.Month)
	suite.Equal(2025, period.Year)
	suite.Equal(domain.PeriodOpen, period.Status)
	suite.Equal(suite.userID, period.CreatedBy)
	suite.registry.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestCreatePeriod_Duplicate() {
	ctx := context.Background()
	req := dto.CreatePeriodRequest{Month: 7, Year: 2025}

	suite.registry.period.On("SavePeriod", ctx, mock.AnythingOfType("domain.AccountingPeriod")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreatePeriod(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.True(apperrors.IsKind(err, apperrors.KindDuplicatePeriod))
}

func (suite *PeriodServiceTestSuite) TestLockPeriod_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.AccountingPeriod{PeriodID: periodID, Month: 5, Year: 2025, Status: domain.PeriodOpen}

	suite.registry.period.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.registry.period.On("UpdatePeriodStatus", ctx, periodID, domain.PeriodLocked,
		mock.AnythingOfType("*string"), mock.AnythingOfType("*time.Time"), suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	locked, err := suite.service.LockPeriod(ctx, periodID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodLocked, locked.Status)
	suite.Require().NotNil(locked.LockedBy)
	suite.Equal(suite.userID, *locked.LockedBy)
	suite.registry.AssertExpectations(suite.T())
}

func (suite *PeriodServiceTestSuite) TestLockPeriod_AlreadyLockedIsIdempotent() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.AccountingPeriod{PeriodID: periodID, Month: 5, Year: 2025, Status: domain.PeriodLocked, LockedBy: stringPtr(suite.userID)}

	suite.registry.period.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()

	locked, err := suite.service.LockPeriod(ctx, periodID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodLocked, locked.Status)
	suite.registry.period.AssertNotCalled(suite.T(), "UpdatePeriodStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PeriodServiceTestSuite) TestUnlockPeriod_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	now := time.Now().UTC()
	period := &domain.AccountingPeriod{PeriodID: periodID, Month: 5, Year: 2025, Status: domain.PeriodLocked, LockedBy: stringPtr(suite.userID), LockedAt: timePtr(now)}

	suite.registry.period.On("FindPeriodByID", ctx, periodID).Return(period, nil).Once()
	suite.registry.period.On("UpdatePeriodStatus", ctx, periodID, domain.PeriodOpen,
		(*string)(nil), (*time.Time)(nil), suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	unlocked, err := suite.service.UnlockPeriod(ctx, periodID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, unlocked.Status)
	suite.Nil(unlocked.LockedBy)
	suite.Nil(unlocked.LockedAt)
	suite.registry.AssertExpectations(suite.T())
}

func TestPeriodServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PeriodServiceTestSuite))
}
