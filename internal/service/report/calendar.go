package report

import (
	"time"
)

const dayFormat = "2006-01-02"

// Day strips the time component, keeping the location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWorkingDay reports whether d falls on Monday through Friday.
func IsWorkingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysBetween counts days in [start, end] whose weekday is Mon-Fri.
// Returns 0 when end precedes start.
func WorkingDaysBetween(start, end time.Time) int {
	count := 0
	for _, d := range DaysBetween(start, end) {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// DaysBetween materializes every day in [start, end], ascending. Empty when
// end precedes start.
func DaysBetween(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// TotalSlots is the denominator of every rate: one slot per employee per
// working day in [start, end]. Zero employees or an empty window yield 0.
func TotalSlots(employeeCount int, start, end time.Time) int {
	if employeeCount <= 0 {
		return 0
	}
	return WorkingDaysBetween(start, end) * employeeCount
}

// MonthWindow is one full calendar month with its chart label.
type MonthWindow struct {
	Start time.Time
	End   time.Time
	Label string // "YYYY-MM"
}

// MonthBounds returns the first and last day of t's calendar month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// MonthWindows returns the last monthsBack full calendar months, oldest
// first, the newest being the anchor's month. The in-progress month keeps its
// natural end so chart labels stay stable; future days are excluded from slot
// math separately (see effectiveEnd).
func MonthWindows(monthsBack int, anchor time.Time) []MonthWindow {
	windows := make([]MonthWindow, 0, monthsBack)
	cursor, _ := MonthBounds(anchor)
	for i := 0; i < monthsBack; i++ {
		start, end := MonthBounds(cursor)
		windows = append(windows, MonthWindow{Start: start, End: end, Label: start.Format("2006-01")})
		cursor = cursor.AddDate(0, -1, 0)
	}
	// oldest first
	for i, j := 0, len(windows)-1; i < j; i, j = i+1, j-1 {
		windows[i], windows[j] = windows[j], windows[i]
	}
	return windows
}

// effectiveEnd caps a window at today so future days never count as slots.
func effectiveEnd(end, today time.Time) time.Time {
	today = Day(today)
	if end.After(today) {
		return today
	}
	return Day(end)
}
