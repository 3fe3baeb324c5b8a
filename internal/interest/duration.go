package interest

import (
	"errors"
	"time"
)

// DaysPerMonth is the flat month length the business bills on. Calendar
// month boundaries are never consulted, so leap years and short months
// cannot change what a "month" of interest means.
const DaysPerMonth = 30

var ErrInvalidDateRange = errors.New("as-of date precedes the loan start date")

// Duration is the elapsed time between loan start and an as-of date,
// expressed in whole days and fractional 30-day months.
type Duration struct {
	Days   int
	Months float64
}

// Elapsed measures the time between the loan start date and an as-of
// date. The start date counts as day zero: a loan closed on the day of
// issue has zero elapsed days. Time-of-day is ignored on both ends.
func Elapsed(start, asOf time.Time) (Duration, error) {
	s := truncateToDate(start)
	e := truncateToDate(asOf)
	if e.Before(s) {
		return Duration{}, ErrInvalidDateRange
	}
	days := int(e.Sub(s).Hours() / 24)
	return Duration{Days: days, Months: float64(days) / DaysPerMonth}, nil
}

// ValidUntil returns the contractual end of the validity window, for
// display alongside a quote.
func ValidUntil(start time.Time, validityMonths int) time.Time {
	return truncateToDate(start).AddDate(0, validityMonths, 0)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
