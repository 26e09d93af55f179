package dto

import (
	"time"

	"github.com/unifin/campus_finance_app/internal/core/domain"
)

// CreatePeriodRequest registers an accounting period row.
type CreatePeriodRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

// PeriodResponse is the boundary view of an accounting period.
type PeriodResponse struct {
	PeriodID string     `json:"periodID"`
	Month    int        `json:"month"`
	Year     int        `json:"year"`
	Status   string     `json:"status"`
	LockedBy *string    `json:"lockedBy,omitempty"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
}

// ToPeriodResponse converts a domain period to its boundary view.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID: p.PeriodID,
		Month:    p.Month,
		Year:     p.Year,
		Status:   string(p.Status),
		LockedBy: p.LockedBy,
		LockedAt: p.LockedAt,
	}
}
