package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/domain/report"
)

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByEmail(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByGoogleID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) Count(context.Context) (int, error) {
	return len(s.employees), nil
}

func (s *stubEmployeeRepo) Update(context.Context, employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (s *stubEmployeeRepo) UpdateProfileImage(context.Context, string, string) error { return nil }
func (s *stubEmployeeRepo) LinkGoogleID(context.Context, string, string) error       { return nil }
func (s *stubEmployeeRepo) Delete(context.Context, string) error                     { return nil }
func (s *stubEmployeeRepo) AdminExists(context.Context) (bool, error)                { return true, nil }

type stubAttendanceRepo struct {
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(context.Context, string, time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) SetClockOut(context.Context, string, time.Time, string) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}

func (s *stubAttendanceRepo) ListRange(_ context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range s.records {
		if !r.Date.Before(Day(start)) && !r.Date.After(Day(end)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAttendanceRepo) ListEmployeeRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	ranged, _ := s.ListRange(context.Background(), start, end)
	var out []attendance.Attendance
	for _, r := range ranged {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (s *stubLeaveRepo) Create(_ context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	return lr, nil
}

func (s *stubLeaveRepo) GetByID(context.Context, string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (s *stubLeaveRepo) ListByEmployee(context.Context, string) ([]leave.LeaveRequest, error) {
	return s.requests, nil
}

func (s *stubLeaveRepo) List(context.Context, *leave.Status) ([]leave.LeaveRequest, error) {
	return s.requests, nil
}

func (s *stubLeaveRepo) ListRecent(context.Context, int) ([]leave.LeaveRequest, error) {
	return s.requests, nil
}

func (s *stubLeaveRepo) ListOverlapping(_ context.Context, start, end time.Time, statuses []leave.Status) ([]leave.LeaveRequest, error) {
	return s.overlapping("", start, end, statuses), nil
}

func (s *stubLeaveRepo) ListEmployeeOverlapping(_ context.Context, employeeID string, start, end time.Time, statuses []leave.Status) ([]leave.LeaveRequest, error) {
	return s.overlapping(employeeID, start, end, statuses), nil
}

func (s *stubLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{ID: id, Status: status}, nil
}

func (s *stubLeaveRepo) overlapping(employeeID string, start, end time.Time, statuses []leave.Status) []leave.LeaveRequest {
	allowed := make(map[leave.Status]struct{}, len(statuses))
	for _, st := range statuses {
		allowed[st] = struct{}{}
	}
	var out []leave.LeaveRequest
	for _, lr := range s.requests {
		if employeeID != "" && lr.EmployeeID != employeeID {
			continue
		}
		if _, ok := allowed[lr.Status]; !ok {
			continue
		}
		if lr.StartDate.After(end) || lr.EndDate.Before(start) {
			continue
		}
		out = append(out, lr)
	}
	return out
}

func reportFixture() report.ReportService {
	clockIn := func(day, hour, minute int) *time.Time {
		t := time.Date(2025, time.June, day, hour, minute, 0, 0, time.UTC)
		return &t
	}
	employees := &stubEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", FirstName: "Ann", LastName: "Cole"},
	}}
	attendances := &stubAttendanceRepo{records: []attendance.Attendance{
		{ID: "r1", EmployeeID: "emp-1", Date: date(2025, time.June, 9), Status: attendance.StatusPresent, ClockIn: clockIn(9, 8, 0), HoursWorked: "08:00:00"},
		{ID: "r2", EmployeeID: "emp-1", Date: date(2025, time.June, 10), Status: attendance.StatusPresent, ClockIn: clockIn(10, 8, 30), HoursWorked: "08:00:00"},
		{ID: "r3", EmployeeID: "emp-1", Date: date(2025, time.June, 11), Status: attendance.StatusLate, ClockIn: clockIn(11, 9, 15), HoursWorked: "07:15:00"},
		{ID: "r4", EmployeeID: "emp-1", Date: date(2025, time.May, 5), Status: attendance.StatusPresent},
		{ID: "r5", EmployeeID: "emp-1", Date: date(2025, time.May, 6), Status: attendance.StatusLate},
	}}
	leaves := &stubLeaveRepo{requests: []leave.LeaveRequest{
		{ID: "lr-1", EmployeeID: "emp-1", Category: leave.CategoryVacation, Status: leave.StatusPending,
			StartDate: date(2025, time.June, 2), EndDate: date(2025, time.June, 6)},
	}}
	return NewReportService(employees, attendances, leaves)
}

func TestEmployeeReport(t *testing.T) {
	svc := reportFixture()

	rep, err := svc.EmployeeReport(context.Background(), "emp-1", "2025-06")
	require.NoError(t, err)

	assert.Equal(t, 3, rep.KPIs.TotalPresent)
	assert.Equal(t, 1, rep.KPIs.TotalLate)
	// 21 working days minus 5 on leave minus 3 recorded.
	assert.Equal(t, 13, rep.KPIs.TotalAbsent)
	assert.Equal(t, 1, rep.KPIs.TotalLeaveRequests)

	assert.Equal(t, "2025-06", rep.MonthSummary.Month)
	require.NotNil(t, rep.MonthSummary.AverageTimeIn)
	assert.Equal(t, "08:35", *rep.MonthSummary.AverageTimeIn)

	require.Len(t, rep.RecentAttendance, 3)
	newest := rep.RecentAttendance[0]
	assert.Equal(t, "2025-06-11", newest.Date)
	require.NotNil(t, newest.Status)
	assert.Equal(t, "Late", *newest.Status)

	assert.Len(t, rep.Heatmap, 30)

	assert.Equal(t, report.CountComparison{Current: 3, Previous: 1}, rep.Comparisons["present"])
	assert.Equal(t, report.CountComparison{Current: 1, Previous: 1}, rep.Comparisons["late"])
	// May 2025 has 22 working days, two of them recorded.
	assert.Equal(t, report.CountComparison{Current: 13, Previous: 20}, rep.Comparisons["absent"])

	assert.NotEmpty(t, rep.Insights)
	assert.Contains(t, rep.Insights, "You were late 1 time(s) this month.")
	assert.Contains(t, rep.Insights, "Attendance improved by 200% compared to last month.")
}

func TestEmployeeReportInvalidMonth(t *testing.T) {
	svc := reportFixture()

	_, err := svc.EmployeeReport(context.Background(), "emp-1", "June 2025")
	assert.ErrorIs(t, err, report.ErrInvalidMonth)
}

func TestEmployeeReportPDF(t *testing.T) {
	svc := reportFixture()

	pdf, err := svc.EmployeeReportPDF(context.Background(), "emp-1", "2025-06")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output is not a PDF document")
}

func TestEmployeeReportPDFUnknownEmployee(t *testing.T) {
	svc := reportFixture()

	_, err := svc.EmployeeReportPDF(context.Background(), "emp-404", "2025-06")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAnalyticsEmptyCompany(t *testing.T) {
	svc := NewReportService(&stubEmployeeRepo{}, &stubAttendanceRepo{}, &stubLeaveRepo{})

	analytics, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	// No employees means no slots and therefore no signal.
	assert.Equal(t, float64(0), analytics.Score)
	require.Len(t, analytics.Insights, 1)
	assert.Equal(t, "Stable Attendance", analytics.Insights[0].Title)

	assert.Len(t, analytics.MonthlyTrend, 12)
	assert.Empty(t, analytics.Ranking)
	assert.Equal(t, "Unexcused Absence", analytics.AbsenteeismBreakdown[0].Label)
}
