package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/domain/report"
)

// DefaultRecordedStatus is the band assigned to a saved record that carries
// no status. A clock-in outside every band still proves the employee showed
// up, so day-level tallies count it as present.
const DefaultRecordedStatus = attendance.StatusPresent

// NoDataMarker fills heatmap cells that are neither recorded nor absent:
// future days, weekends, and leave-covered days.
const NoDataMarker = "—"

// WindowStats are the raw counts behind every rate for one reporting window.
type WindowStats struct {
	Present    int // records explicitly classified Present
	Late       int // records explicitly classified Late
	Recorded   int // every saved record, classified or not
	Slots      int // employee x working-day slots, capped at today
	LeaveSlots int // slots covered by qualifying leave
	Unexcused  int // slots with no record and no leave
}

// ComputeWindowStats tallies records and leave coverage over [start, end].
// Future days never count as slots.
func ComputeWindowStats(records []attendance.Attendance, ix *LeaveIndex, employeeCount int, start, end, today time.Time) WindowStats {
	start = Day(start)
	eff := effectiveEnd(end, today)

	var stats WindowStats
	for _, rec := range records {
		d := Day(rec.Date)
		if d.Before(start) || d.After(eff) {
			continue
		}
		stats.Recorded++
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusLate:
			stats.Late++
		}
	}

	if !eff.Before(start) {
		stats.Slots = TotalSlots(employeeCount, start, eff)
		stats.LeaveSlots = ix.SlotsInWindow(start, eff)
	}
	stats.Unexcused = max(0, stats.Slots-stats.Recorded-stats.LeaveSlots)

	return stats
}

// MonthlyTrend buckets records into the given month windows. Absent is the
// slot remainder after recorded days and leave coverage; it can never go
// negative, even when duplicate records outnumber slots.
func MonthlyTrend(windows []MonthWindow, records []attendance.Attendance, ix *LeaveIndex, employeeCount int, today time.Time) []report.MonthlyTrendPoint {
	presentByMonth := make(map[string]int)
	lateByMonth := make(map[string]int)
	for _, rec := range records {
		label := rec.Date.Format("2006-01")
		switch rec.Status {
		case attendance.StatusPresent:
			presentByMonth[label]++
		case attendance.StatusLate:
			lateByMonth[label]++
		}
	}

	points := make([]report.MonthlyTrendPoint, 0, len(windows))
	for _, w := range windows {
		present := presentByMonth[w.Label]
		late := lateByMonth[w.Label]

		absent := 0
		eff := effectiveEnd(w.End, today)
		if !eff.Before(w.Start) {
			slots := TotalSlots(employeeCount, w.Start, eff)
			leaveSlots := ix.SlotsInWindow(w.Start, eff)
			absent = max(0, slots-present-late-leaveSlots)
		}

		points = append(points, report.MonthlyTrendPoint{
			Month:   w.Label,
			Present: present,
			Late:    late,
			Absent:  absent,
		})
	}
	return points
}

// AbsenteeismBreakdown slices a window's absences into unexcused slots plus
// one slice per leave category, counting requests rather than days.
func AbsenteeismBreakdown(stats WindowStats, requests []leave.LeaveRequest) []report.BreakdownSlice {
	byCategory := make(map[leave.Category]int)
	for _, lr := range requests {
		byCategory[lr.Category]++
	}

	slices := []report.BreakdownSlice{
		{Label: "Unexcused Absence", Value: stats.Unexcused},
	}
	for _, c := range leave.Categories {
		if n := byCategory[leave.Category(c)]; n > 0 {
			slices = append(slices, report.BreakdownSlice{Label: capitalize(c), Value: n})
		}
	}
	return slices
}

// LatenessByEmployee counts Late records per employee over [start, end],
// most late first, ties broken by name.
func LatenessByEmployee(records []attendance.Attendance, start, end time.Time) []report.LatenessEntry {
	start, end = Day(start), Day(end)

	type lateCount struct {
		name  string
		lates int
	}
	byEmployee := make(map[string]*lateCount)
	for _, rec := range records {
		if rec.Status != attendance.StatusLate {
			continue
		}
		d := Day(rec.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		lc, ok := byEmployee[rec.EmployeeID]
		if !ok {
			name := ""
			if rec.EmployeeName != nil {
				name = *rec.EmployeeName
			}
			lc = &lateCount{name: name}
			byEmployee[rec.EmployeeID] = lc
		}
		lc.lates++
	}

	entries := make([]report.LatenessEntry, 0, len(byEmployee))
	for _, lc := range byEmployee {
		entries = append(entries, report.LatenessEntry{Name: lc.name, Lates: lc.lates})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Lates != entries[j].Lates {
			return entries[i].Lates > entries[j].Lates
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// RadarMetrics normalizes a window's counts into 0-100 rates.
func RadarMetrics(stats WindowStats) []report.RadarMetric {
	return []report.RadarMetric{
		{Metric: "Presence", Value: roundOne(rate(stats.Present, stats.Slots))},
		{Metric: "Lateness", Value: roundOne(rate(stats.Late, stats.Slots))},
		{Metric: "Absences", Value: roundOne(rate(stats.Unexcused, stats.Slots))},
		{Metric: "Leave Usage", Value: roundOne(math.Min(100, rate(stats.LeaveSlots, stats.Slots)))},
	}
}

// Ranking scores every employee over [start, end]: each late costs 2 points
// and each unexcused absence 5, down from 100. Sorted best first with ranks
// assigned 1..N; ties resolve by fewer absences, fewer lates, then name.
func Ranking(employees []employee.Employee, records []attendance.Attendance, ix *LeaveIndex, start, end, today time.Time) []report.RankingRow {
	start = Day(start)
	eff := effectiveEnd(end, today)
	workingDays := WorkingDaysBetween(start, eff)

	type tally struct {
		present int
		lates   int
	}
	byEmployee := make(map[string]*tally, len(employees))
	for _, e := range employees {
		byEmployee[e.ID] = &tally{}
	}
	for _, rec := range records {
		t, ok := byEmployee[rec.EmployeeID]
		if !ok {
			continue
		}
		d := Day(rec.Date)
		if d.Before(start) || d.After(eff) {
			continue
		}
		switch rec.Status {
		case attendance.StatusPresent:
			t.present++
		case attendance.StatusLate:
			t.lates++
		}
	}

	rows := make([]report.RankingRow, 0, len(employees))
	for _, e := range employees {
		t := byEmployee[e.ID]
		leaveDays := ix.EmployeeSlotsInWindow(e.ID, start, eff)
		absences := max(0, workingDays-(t.present+t.lates)-leaveDays)
		score := clampScore(100 - t.lates*2 - absences*5)
		rows = append(rows, report.RankingRow{
			ID:       e.ID,
			Name:     e.FullName(),
			Score:    score,
			Absences: absences,
			Lates:    t.lates,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		if rows[i].Absences != rows[j].Absences {
			return rows[i].Absences < rows[j].Absences
		}
		if rows[i].Lates != rows[j].Lates {
			return rows[i].Lates < rows[j].Lates
		}
		return rows[i].Name < rows[j].Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// HealthScore condenses a window into one 0-100 number. Lates cost 2 and
// unexcused absences 5, spread across headcount. No slots means no signal,
// which reads as 0 rather than a perfect score.
func HealthScore(stats WindowStats, employeeCount int) float64 {
	if stats.Slots == 0 {
		return 0
	}
	penalty := float64(stats.Late*2 + stats.Unexcused*5)
	score := 100 - penalty/float64(max(1, employeeCount))
	return roundOne(math.Max(0, math.Min(100, score)))
}

// EmployeeMonthStats is one employee's month: day-by-day heatmap, tallies,
// and the mean clock-in time.
type EmployeeMonthStats struct {
	Present       int
	Late          int
	Absent        int
	Heatmap       []report.HeatmapDay
	AverageTimeIn *string // "HH:MM", nil when no clock-ins
}

// EmployeeMonth walks every day of [monthStart, monthEnd] for one employee's
// records. A recorded day is Present or Late (unset status counts as
// DefaultRecordedStatus); an unrecorded past working day without leave is
// Absent; everything else gets the no-data marker.
func EmployeeMonth(records []attendance.Attendance, onLeave map[string]struct{}, monthStart, monthEnd, today time.Time) EmployeeMonthStats {
	today = Day(today)
	byDay := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byDay[rec.Date.Format(dayFormat)] = rec
	}

	var stats EmployeeMonthStats
	var clockInSum int64
	clockInCount := 0

	for _, d := range DaysBetween(monthStart, monthEnd) {
		key := d.Format(dayFormat)
		var status string

		if rec, ok := byDay[key]; ok {
			if rec.Status == attendance.StatusLate {
				status = string(attendance.StatusLate)
				stats.Late++
			} else {
				status = string(DefaultRecordedStatus)
				stats.Present++
			}
			if rec.ClockIn != nil {
				clockInSum += rec.ClockIn.Unix()
				clockInCount++
			}
		} else {
			_, covered := onLeave[key]
			if !d.After(today) && IsWorkingDay(d) && !covered {
				status = "Absent"
				stats.Absent++
			} else {
				status = NoDataMarker
			}
		}

		stats.Heatmap = append(stats.Heatmap, report.HeatmapDay{Date: key, Status: status})
	}

	if clockInCount > 0 {
		avg := time.Unix(clockInSum/int64(clockInCount), 0).UTC().Format("15:04")
		stats.AverageTimeIn = &avg
	}
	return stats
}

// PreviousMonthTally counts one employee's prior-month days for comparison
// cards. Days with no classified record count as absent when they are past
// working days outside leave coverage.
func PreviousMonthTally(records []attendance.Attendance, onLeave map[string]struct{}, prevStart, prevEnd, today time.Time) (present, late, absent int) {
	today = Day(today)
	byDay := make(map[string]attendance.Attendance, len(records))
	for _, rec := range records {
		byDay[rec.Date.Format(dayFormat)] = rec
	}

	for _, d := range DaysBetween(prevStart, prevEnd) {
		key := d.Format(dayFormat)
		rec, ok := byDay[key]
		switch {
		case ok && rec.Status == attendance.StatusPresent:
			present++
		case ok && rec.Status == attendance.StatusLate:
			late++
		default:
			_, covered := onLeave[key]
			if IsWorkingDay(d) && !covered && !d.After(today) {
				absent++
			}
		}
	}
	return present, late, absent
}

// LeaveDaySet expands requests into the set of covered calendar days,
// weekends included. Working-day filtering happens at the point of use.
func LeaveDaySet(requests []leave.LeaveRequest) map[string]struct{} {
	days := make(map[string]struct{})
	for _, lr := range requests {
		if lr.EndDate.Before(lr.StartDate) {
			continue
		}
		for _, d := range DaysBetween(lr.StartDate, lr.EndDate) {
			days[d.Format(dayFormat)] = struct{}{}
		}
	}
	return days
}

// DailyTrend produces one point per day in [start, end]. Absent is the
// headcount remainder on working days and always 0 on weekends.
func DailyTrend(records []attendance.Attendance, ix *LeaveIndex, employeeCount int, start, end time.Time) []report.DailyTrendPoint {
	presentByDay := make(map[string]int)
	lateByDay := make(map[string]int)
	for _, rec := range records {
		key := rec.Date.Format(dayFormat)
		switch rec.Status {
		case attendance.StatusPresent:
			presentByDay[key]++
		case attendance.StatusLate:
			lateByDay[key]++
		}
	}

	var points []report.DailyTrendPoint
	for _, d := range DaysBetween(start, end) {
		key := d.Format(dayFormat)
		present := presentByDay[key]
		late := lateByDay[key]
		absent := 0
		if IsWorkingDay(d) {
			absent = max(0, employeeCount-(present+late)-ix.EmployeesOn(d))
		}
		points = append(points, report.DailyTrendPoint{
			Date:    key,
			Present: present,
			Late:    late,
			Absent:  absent,
		})
	}
	return points
}

// LeaveUsageTrend counts requests touching each month window. Filtering by
// status is the caller's job.
func LeaveUsageTrend(windows []MonthWindow, requests []leave.LeaveRequest) []report.LeaveUsagePoint {
	points := make([]report.LeaveUsagePoint, 0, len(windows))
	for _, w := range windows {
		count := 0
		for _, lr := range requests {
			if !Day(lr.StartDate).After(w.End) && !Day(lr.EndDate).Before(w.Start) {
				count++
			}
		}
		points = append(points, report.LeaveUsagePoint{Month: w.Label, Leaves: count})
	}
	return points
}

// TopLates is LatenessByEmployee truncated to limit entries.
func TopLates(records []attendance.Attendance, start, end time.Time, limit int) []report.LatenessEntry {
	entries := LatenessByEmployee(records, start, end)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// rate returns n/d as a percentage, 0 when the denominator is 0.
func rate(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d) * 100
}

func roundOne(f float64) float64 {
	return math.Round(f*10) / 10
}


func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
