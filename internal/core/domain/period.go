package domain

import "time"

// PeriodStatus is the gate state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodLocked PeriodStatus = "LOCKED"
)

// AccountingPeriod is one (month, year) unit. While LOCKED, no transaction
// dated inside it may be created by any workflow. A (month, year) with no row
// is treated as OPEN.
type AccountingPeriod struct {
	PeriodID string       `json:"periodID"` // Primary Key (UUID)
	Month    int          `json:"month"`    // 1-12
	Year     int          `json:"year"`
	Status   PeriodStatus `json:"status"`
	LockedBy *string      `json:"lockedBy"`
	LockedAt *time.Time   `json:"lockedAt"`
	AuditFields
}

// Contains reports whether date falls inside this period.
func (p AccountingPeriod) Contains(date time.Time) bool {
	return int(date.Month()) == p.Month && date.Year() == p.Year
}
