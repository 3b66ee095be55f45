package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/service/report"
)

type stubEmployeeRepo struct {
	count int
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByEmail(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByGoogleID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(context.Context) ([]employee.Employee, error) { return nil, nil }
func (s *stubEmployeeRepo) Count(context.Context) (int, error)                { return s.count, nil }

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
		if !r.Date.Before(start) && !r.Date.After(end) {
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
	return nil, nil
}

func (s *stubLeaveRepo) List(_ context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	if status == nil {
		return s.requests, nil
	}
	var out []leave.LeaveRequest
	for _, lr := range s.requests {
		if lr.Status == *status {
			out = append(out, lr)
		}
	}
	return out, nil
}

func (s *stubLeaveRepo) ListRecent(_ context.Context, limit int) ([]leave.LeaveRequest, error) {
	if len(s.requests) > limit {
		return s.requests[:limit], nil
	}
	return s.requests, nil
}

func (s *stubLeaveRepo) ListOverlapping(_ context.Context, start, end time.Time, statuses []leave.Status) ([]leave.LeaveRequest, error) {
	allowed := make(map[leave.Status]struct{}, len(statuses))
	for _, st := range statuses {
		allowed[st] = struct{}{}
	}
	var out []leave.LeaveRequest
	for _, lr := range s.requests {
		if _, ok := allowed[lr.Status]; !ok {
			continue
		}
		if lr.StartDate.After(end) || lr.EndDate.Before(start) {
			continue
		}
		out = append(out, lr)
	}
	return out, nil
}

func (s *stubLeaveRepo) ListEmployeeOverlapping(ctx context.Context, _ string, start, end time.Time, statuses []leave.Status) ([]leave.LeaveRequest, error) {
	return s.ListOverlapping(ctx, start, end, statuses)
}

func (s *stubLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{ID: id, Status: status}, nil
}

func TestGetDashboard(t *testing.T) {
	today := report.Day(time.Now())
	bob := "Bob Dale"

	attendanceRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		{ID: "att-1", EmployeeID: "emp-1", Date: today, Status: attendance.StatusPresent},
		{ID: "att-2", EmployeeID: "emp-2", EmployeeName: &bob, Date: today, Status: attendance.StatusLate},
	}}
	leaveRepo := &stubLeaveRepo{requests: []leave.LeaveRequest{
		{ID: "lr-1", EmployeeID: "emp-3", Category: leave.CategorySick, Status: leave.StatusApproved,
			StartDate: today.AddDate(0, 0, -1), EndDate: today.AddDate(0, 0, 1)},
		{ID: "lr-2", EmployeeID: "emp-4", Category: leave.CategoryVacation, Status: leave.StatusPending,
			StartDate: today.AddDate(0, 0, 5), EndDate: today.AddDate(0, 0, 7)},
	}}
	svc := NewDashboardService(&stubEmployeeRepo{count: 5}, attendanceRepo, leaveRepo)

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, dashboard.Totals.Employees)
	assert.Equal(t, 1, dashboard.Totals.PresentToday)
	assert.Equal(t, 1, dashboard.Totals.LateToday)
	// Five employees minus two recorded minus one on approved leave.
	assert.Equal(t, 2, dashboard.Totals.AbsentToday)
	assert.Equal(t, 1, dashboard.Totals.PendingLeaves)
	assert.Equal(t, 1, dashboard.Totals.ApprovedLeavesToday)

	require.Len(t, dashboard.Trend7, 7)
	todayPoint := dashboard.Trend7[6]
	assert.Equal(t, today.Format("2006-01-02"), todayPoint.Date)
	assert.Equal(t, 1, todayPoint.Present)
	assert.Equal(t, 1, todayPoint.Late)

	require.Len(t, dashboard.TopLates30, 1)
	assert.Equal(t, "Bob Dale", dashboard.TopLates30[0].Name)

	require.Len(t, dashboard.RecentLeaves, 2)
	assert.Equal(t, "sick", dashboard.RecentLeaves[0].LeaveType)
	assert.Equal(t, today.AddDate(0, 0, -1).Format("2006-01-02"), dashboard.RecentLeaves[0].StartDate)
}

func TestGetDashboardEmptyCompany(t *testing.T) {
	svc := NewDashboardService(&stubEmployeeRepo{}, &stubAttendanceRepo{}, &stubLeaveRepo{})

	dashboard, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, dashboard.Totals.AbsentToday)
	assert.Len(t, dashboard.Trend7, 7)
	assert.Empty(t, dashboard.TopLates30)
	assert.Empty(t, dashboard.RecentLeaves)
}
