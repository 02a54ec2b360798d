package domain

import (
	"time"

	financeErrors "github.com/finware/FinanceTracker/internal/finance/errors"
)

// Month is a calendar year+month. All monthly aggregations use its half-open
// window [Start, End): a transaction dated on the last calendar day of the
// month belongs to that month, never to the next one.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses the canonical "YYYY-MM" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, financeErrors.NewValidationError("Month must be in YYYY-MM format")
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the month's half-open window.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start()) && t.Before(m.End())
}

func (m Month) String() string {
	return m.Start().Format("2006-01")
}
