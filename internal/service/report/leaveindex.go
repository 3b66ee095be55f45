package report

import (
	"time"

	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
)

// LeaveIndex answers "is employee E on qualifying leave on working day D"
// for a fixed window. Overlapping requests for the same employee and day
// collapse into a single slot, so counts are idempotent under duplicates.
type LeaveIndex struct {
	// day "YYYY-MM-DD" -> set of employee IDs covered that day
	days map[string]map[string]struct{}
}

// BuildLeaveIndex indexes every working-day slot in [windowStart, windowEnd]
// covered by a request whose status is in statuses. Which statuses qualify is
// the caller's policy, not the index's.
func BuildLeaveIndex(requests []leave.LeaveRequest, statuses []leave.Status, windowStart, windowEnd time.Time) *LeaveIndex {
	qualifying := make(map[leave.Status]struct{}, len(statuses))
	for _, s := range statuses {
		qualifying[s] = struct{}{}
	}

	ix := &LeaveIndex{days: make(map[string]map[string]struct{})}
	windowStart, windowEnd = Day(windowStart), Day(windowEnd)

	for _, lr := range requests {
		if _, ok := qualifying[lr.Status]; !ok {
			continue
		}
		if lr.EmployeeID == "" || lr.EndDate.Before(lr.StartDate) {
			// Malformed rows are skipped, never fatal to a report.
			continue
		}

		start, end := Day(lr.StartDate), Day(lr.EndDate)
		if start.Before(windowStart) {
			start = windowStart
		}
		if end.After(windowEnd) {
			end = windowEnd
		}
		for _, d := range DaysBetween(start, end) {
			if !IsWorkingDay(d) {
				continue
			}
			key := d.Format(dayFormat)
			if ix.days[key] == nil {
				ix.days[key] = make(map[string]struct{})
			}
			ix.days[key][lr.EmployeeID] = struct{}{}
		}
	}

	return ix
}

// Covers reports whether employeeID is on qualifying leave on day.
func (ix *LeaveIndex) Covers(employeeID string, day time.Time) bool {
	set, ok := ix.days[Day(day).Format(dayFormat)]
	if !ok {
		return false
	}
	_, covered := set[employeeID]
	return covered
}

// SlotsInWindow counts leave-covered (employee, working day) slots in
// [start, end] across all employees.
func (ix *LeaveIndex) SlotsInWindow(start, end time.Time) int {
	count := 0
	for _, d := range DaysBetween(start, end) {
		count += len(ix.days[d.Format(dayFormat)])
	}
	return count
}

// EmployeeSlotsInWindow counts leave-covered working days in [start, end]
// for one employee.
func (ix *LeaveIndex) EmployeeSlotsInWindow(employeeID string, start, end time.Time) int {
	count := 0
	for _, d := range DaysBetween(start, end) {
		if set, ok := ix.days[d.Format(dayFormat)]; ok {
			if _, covered := set[employeeID]; covered {
				count++
			}
		}
	}
	return count
}

// EmployeesOn counts distinct employees covered on one day.
func (ix *LeaveIndex) EmployeesOn(day time.Time) int {
	return len(ix.days[Day(day).Format(dayFormat)])
}
