package datetime

import (
	"testing"
	"time"
)

func TestWholeDaysBetween(t *testing.T) {
	base := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "Same instant",
			from:     base,
			to:       base,
			expected: 0,
		},
		{
			name:     "Later the same calendar day",
			from:     base,
			to:       base.Add(8 * time.Hour),
			expected: 0,
		},
		{
			name:     "Earlier the same calendar day",
			from:     base,
			to:       base.Add(-3 * time.Hour),
			expected: 0,
		},
		{
			name:     "Next day just after midnight",
			from:     base,
			to:       time.Date(2026, time.August, 16, 0, 30, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Previous day late evening",
			from:     base,
			to:       time.Date(2026, time.August, 14, 23, 30, 0, 0, time.UTC),
			expected: -1,
		},
		{
			name:     "Seven days ahead",
			from:     base,
			to:       base.AddDate(0, 0, 7),
			expected: 7,
		},
		{
			name:     "Ninety days back",
			from:     base,
			to:       base.AddDate(0, 0, -90),
			expected: -90,
		},
		{
			name:     "Across a month boundary",
			from:     time.Date(2026, time.August, 30, 23, 0, 0, 0, time.UTC),
			to:       time.Date(2026, time.September, 2, 1, 0, 0, 0, time.UTC),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeDaysBetween(tt.from, tt.to); got != tt.expected {
				t.Errorf("WholeDaysBetween() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dueDate  time.Time
		expected int
	}{
		{
			name:     "Due in the future is never negative",
			dueDate:  now.AddDate(0, 0, 10),
			expected: 0,
		},
		{
			name:     "Due today",
			dueDate:  now,
			expected: 0,
		},
		{
			name:     "Thirty days overdue",
			dueDate:  now.AddDate(0, 0, -30),
			expected: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysOverdue(tt.dueDate, now); got != tt.expected {
				t.Errorf("DaysOverdue() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestFormatMonth(t *testing.T) {
	month := time.Date(2026, time.September, 17, 8, 0, 0, 0, time.UTC)
	if got := FormatMonth(month); got != "2026-09" {
		t.Errorf("FormatMonth() = %s, expected 2026-09", got)
	}
}

func TestOffsetMonth(t *testing.T) {
	month := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatMonth(OffsetMonth(month, 1)); got != "2027-01" {
		t.Errorf("OffsetMonth(+1) = %s, expected 2027-01", got)
	}
	if got := FormatMonth(OffsetMonth(month, -1)); got != "2026-11" {
		t.Errorf("OffsetMonth(-1) = %s, expected 2026-11", got)
	}
}

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(DateLayout, "2026-08-15")
	if parsed.Year() != 2026 || parsed.Month() != time.August || parsed.Day() != 15 {
		t.Errorf("MustParseTime() = %v, expected 2026-08-15", parsed)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustParseTime() did not panic on invalid input")
		}
	}()
	MustParseTime(DateLayout, "not-a-date")
}
