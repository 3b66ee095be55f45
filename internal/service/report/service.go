package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/domain/report"
)

const analyticsWindowDays = 90

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// Analytics implements report.ReportService.
func (s *ReportServiceImpl) Analytics(ctx context.Context) (report.AnalyticsResponse, error) {
	today := time.Now()
	windows := MonthWindows(12, today)
	trendStart := windows[0].Start
	trendEnd := windows[len(windows)-1].End
	windowStart := Day(today).AddDate(0, 0, -analyticsWindowDays)
	windowEnd := Day(today)

	var (
		employees    []employee.Employee
		trendRecords []attendance.Attendance
		trendLeaves  []leave.LeaveRequest
		records      []attendance.Attendance
		leaves       []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = s.employeeRepo.List(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		trendRecords, err = s.attendanceRepo.ListRange(gCtx, trendStart, trendEnd)
		return err
	})
	g.Go(func() error {
		var err error
		// Pending requests still block future slots, so the 12-month trend
		// treats them as coverage alongside approved ones.
		trendLeaves, err = s.leaveRepo.ListOverlapping(gCtx, trendStart, trendEnd,
			[]leave.Status{leave.StatusApproved, leave.StatusPending})
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListRange(gCtx, windowStart, windowEnd)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.leaveRepo.ListOverlapping(gCtx, windowStart, windowEnd,
			[]leave.Status{leave.StatusApproved})
		return err
	})
	if err := g.Wait(); err != nil {
		return report.AnalyticsResponse{}, fmt.Errorf("failed to load analytics data: %w", err)
	}

	trendIndex := BuildLeaveIndex(trendLeaves, []leave.Status{leave.StatusApproved, leave.StatusPending}, trendStart, trendEnd)
	windowIndex := BuildLeaveIndex(leaves, []leave.Status{leave.StatusApproved}, windowStart, windowEnd)
	stats := ComputeWindowStats(records, windowIndex, len(employees), windowStart, windowEnd, today)

	approvedTrendLeaves := make([]leave.LeaveRequest, 0, len(trendLeaves))
	for _, lr := range trendLeaves {
		if lr.Status == leave.StatusApproved {
			approvedTrendLeaves = append(approvedTrendLeaves, lr)
		}
	}

	return report.AnalyticsResponse{
		Score:                HealthScore(stats, len(employees)),
		Insights:             GenerateInsights(stats, len(employees)),
		MonthlyTrend:         MonthlyTrend(windows, trendRecords, trendIndex, len(employees), today),
		AbsenteeismBreakdown: AbsenteeismBreakdown(stats, leaves),
		LeaveUsageTrend:      LeaveUsageTrend(windows, approvedTrendLeaves),
		LatenessByEmployee:   LatenessByEmployee(records, windowStart, windowEnd),
		Radar:                RadarMetrics(stats),
		Ranking:              Ranking(employees, records, windowIndex, windowStart, windowEnd, today),
	}, nil
}

// EmployeeReport implements report.ReportService.
func (s *ReportServiceImpl) EmployeeReport(ctx context.Context, employeeID string, month string) (report.EmployeeReportResponse, error) {
	today := time.Now()

	anchor := today
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			return report.EmployeeReportResponse{}, report.ErrInvalidMonth
		}
		anchor = parsed
	}
	monthStart, monthEnd := MonthBounds(anchor)
	prevStart, prevEnd := MonthBounds(monthStart.AddDate(0, -1, 0))

	var (
		records     []attendance.Attendance
		prevRecords []attendance.Attendance
		leaves      []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListEmployeeRange(gCtx, employeeID, monthStart, monthEnd)
		return err
	})
	g.Go(func() error {
		var err error
		prevRecords, err = s.attendanceRepo.ListEmployeeRange(gCtx, employeeID, prevStart, prevEnd)
		return err
	})
	g.Go(func() error {
		var err error
		// Every request touching the month counts here, resolved or not;
		// the report shows what the employee filed, not what HR granted.
		leaves, err = s.leaveRepo.ListEmployeeOverlapping(gCtx, employeeID, monthStart, monthEnd,
			[]leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected})
		return err
	})
	if err := g.Wait(); err != nil {
		return report.EmployeeReportResponse{}, fmt.Errorf("failed to load employee report data: %w", err)
	}

	onLeave := LeaveDaySet(leaves)
	stats := EmployeeMonth(records, onLeave, monthStart, monthEnd, today)
	prevPresent, prevLate, prevAbsent := PreviousMonthTally(prevRecords, onLeave, prevStart, prevEnd, today)

	return report.EmployeeReportResponse{
		KPIs: report.EmployeeReportKPIs{
			TotalPresent:       stats.Present,
			TotalLate:          stats.Late,
			TotalAbsent:        stats.Absent,
			TotalLeaveRequests: len(leaves),
		},
		MonthSummary: report.MonthSummary{
			Month:         monthStart.Format("2006-01"),
			Present:       stats.Present,
			Late:          stats.Late,
			Absent:        stats.Absent,
			AverageTimeIn: stats.AverageTimeIn,
		},
		RecentAttendance: recentAttendance(records, 14),
		Heatmap:          stats.Heatmap,
		Comparisons: map[string]report.CountComparison{
			"present": {Current: stats.Present, Previous: prevPresent},
			"late":    {Current: stats.Late, Previous: prevLate},
			"absent":  {Current: stats.Absent, Previous: prevAbsent},
		},
		Insights: EmployeeInsights(stats, prevPresent, prevLate, len(leaves)),
	}, nil
}

// EmployeeReportPDF implements report.ReportService.
func (s *ReportServiceImpl) EmployeeReportPDF(ctx context.Context, employeeID string, month string) ([]byte, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	rep, err := s.EmployeeReport(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}

	return renderEmployeeReportPDF(emp.FullName(), rep)
}

// recentAttendance serializes the newest limit records, newest first.
func recentAttendance(records []attendance.Attendance, limit int) []report.RecentAttendanceRow {
	sorted := make([]attendance.Attendance, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	rows := make([]report.RecentAttendanceRow, 0, len(sorted))
	for _, rec := range sorted {
		var status *string
		if rec.Status != attendance.StatusNone {
			v := string(rec.Status)
			status = &v
		}
		rows = append(rows, report.RecentAttendanceRow{
			ID:          rec.ID,
			Date:        rec.Date.Format(dayFormat),
			Status:      status,
			TimeIn:      timeOrNil(rec.ClockIn),
			TimeOut:     timeOrNil(rec.ClockOut),
			HoursWorked: rec.HoursWorked,
		})
	}
	return rows
}

func timeOrNil(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
