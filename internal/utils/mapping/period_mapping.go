package mapping

import (
	"github.com/unifin/campus_finance_app/internal/core/domain"
	"github.com/unifin/campus_finance_app/internal/models"
)

// ToModelPeriod converts a domain AccountingPeriod to its model.
func ToModelPeriod(d domain.AccountingPeriod) models.AccountingPeriod {
	return models.AccountingPeriod{
		PeriodID:    d.PeriodID,
		Month:       d.Month,
		Year:        d.Year,
		Status:      string(d.Status),
		LockedBy:    d.LockedBy,
		LockedAt:    d.LockedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model AccountingPeriod to its domain form.
func ToDomainPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:    m.PeriodID,
		Month:       m.Month,
		Year:        m.Year,
		Status:      domain.PeriodStatus(m.Status),
		LockedBy:    m.LockedBy,
		LockedAt:    m.LockedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPeriodSlice converts a slice of model AccountingPeriods.
func ToDomainPeriodSlice(ms []models.AccountingPeriod) []domain.AccountingPeriod {
	ds := make([]domain.AccountingPeriod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPeriod(m)
	}
	return ds
}
