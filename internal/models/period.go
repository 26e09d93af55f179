package models

import "time"

// AccountingPeriod mirrors the accounting_periods table.
type AccountingPeriod struct {
	PeriodID string     `json:"periodID"`
	Month    int        `json:"month"`
	Year     int        `json:"year"`
	Status   string     `json:"status"`
	LockedBy *string    `json:"lockedBy"`
	LockedAt *time.Time `json:"lockedAt"`
	AuditFields
}
