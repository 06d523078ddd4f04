// Package freshness classifies egg stock by how close it is to expiry.
// The same thresholds drive both the retrieval engine's fresh-window
// predicate and the freshness labels shown to buyers, so they must stay in
// one place.
package freshness

import (
	"math"
	"time"
)

// Status is the buyer-facing freshness classification.
type Status string

const (
	StatusFresh        Status = "fresh"
	StatusUseSoon      Status = "use_soon"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
	StatusUnknown      Status = "unknown"
)

// Day-count thresholds separating the statuses. ExpiringSoonDays is
// inclusive (day 3 is still expiring_soon), as is UseSoonDays (day 7 is
// still use_soon).
const (
	ExpiringSoonDays = 3
	UseSoonDays      = 7
)

// Report is the full freshness evaluation for one item. Pointer fields are
// nil when the underlying dates are missing or inconsistent.
type Report struct {
	Status          Status
	DaysUntilExpiry *int
	ShelfLifeDays   *int
	FreshPercentage *int
}

// Evaluate derives a Report purely from the two dates and "today". Times
// are compared at day granularity; hours within the day are ignored.
func Evaluate(productionDate, expiryDate *time.Time, today time.Time) Report {
	report := Report{Status: StatusUnknown}

	if expiryDate == nil {
		return report
	}

	daysUntil := daysBetween(today, *expiryDate)
	report.DaysUntilExpiry = &daysUntil

	switch {
	case daysUntil < 0:
		report.Status = StatusExpired
	case daysUntil <= ExpiringSoonDays:
		report.Status = StatusExpiringSoon
	case daysUntil <= UseSoonDays:
		report.Status = StatusUseSoon
	default:
		report.Status = StatusFresh
	}

	if productionDate != nil {
		shelfLife := daysBetween(*productionDate, *expiryDate)
		report.ShelfLifeDays = &shelfLife

		if shelfLife > 0 {
			remaining := float64(daysUntil)
			if remaining < 0 {
				remaining = 0
			}
			pct := int(math.Round(100 * remaining / float64(shelfLife)))
			if pct > 100 {
				pct = 100
			}
			report.FreshPercentage = &pct
		}
	}

	return report
}

// InFreshWindow reports whether an expiry date is strictly beyond the
// use-soon horizon, i.e. the item still counts as fresh for filtering.
func InFreshWindow(expiryDate *time.Time, today time.Time) bool {
	if expiryDate == nil {
		return false
	}
	return daysBetween(today, *expiryDate) > UseSoonDays
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
