package services

import "time"

// effectiveDate resolves an optional request date to the accounting date a
// workflow records under. Absent dates mean "now".
func effectiveDate(d *time.Time) time.Time {
	if d != nil {
		return d.UTC()
	}
	return time.Now().UTC()
}
