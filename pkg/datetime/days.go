// Package datetime provides date and time utility functions.
package datetime

import (
	"math"
	"time"

	"github.com/rentworks/erp-metrics/pkg/constants"
)

const (
	// MonthLayout is the format used for forecast months.
	MonthLayout = constants.MonthLayout

	// DateLayout is the format used for calendar dates.
	DateLayout = constants.DateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// WholeDaysBetween returns the number of whole calendar days from `from` to
// `to`, negative when `to` is earlier. Both instants are reduced to their
// calendar date first, so a `to` on the same calendar day as `from` reports 0
// regardless of clock time, and one day earlier reports -1.
func WholeDaysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Floor(toDay.Sub(fromDay).Hours() / 24))
}

// DaysOverdue returns how many whole days past due a due date is at the given
// instant. Dates not yet due report 0, never a negative value.
func DaysOverdue(dueDate, now time.Time) int {
	days := WholeDaysBetween(dueDate, now)
	if days < 0 {
		return 0
	}
	return days
}

// FormatMonth returns the YYYY-MM representation of the given time.
func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

// OffsetMonth returns the given time offset by the given number of months.
func OffsetMonth(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
