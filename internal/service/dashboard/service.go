package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	reportdomain "github.com/worklens-app/attendance-backend-go/internal/domain/report"
	"github.com/worklens-app/attendance-backend-go/internal/service/report"
)

const recentLeaveLimit = 8
const topLatesLimit = 8

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
) reportdomain.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// GetDashboard implements report.DashboardService. All eight queries run in
// parallel; the payload is assembled once they all land.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (reportdomain.DashboardResponse, error) {
	today := report.Day(time.Now())
	start7 := today.AddDate(0, 0, -6)
	start30 := today.AddDate(0, 0, -30)

	var (
		employeeCount int
		todayRecords  []attendance.Attendance
		pendingLeaves []leave.LeaveRequest
		leavesToday   []leave.LeaveRequest
		weekRecords   []attendance.Attendance
		weekLeaves    []leave.LeaveRequest
		monthRecords  []attendance.Attendance
		recentLeaves  []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employeeCount, err = s.employeeRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		todayRecords, err = s.attendanceRepo.ListRange(gCtx, today, today)
		return err
	})
	g.Go(func() error {
		pending := leave.StatusPending
		var err error
		pendingLeaves, err = s.leaveRepo.List(gCtx, &pending)
		return err
	})
	g.Go(func() error {
		var err error
		leavesToday, err = s.leaveRepo.ListOverlapping(gCtx, today, today, []leave.Status{leave.StatusApproved})
		return err
	})
	g.Go(func() error {
		var err error
		weekRecords, err = s.attendanceRepo.ListRange(gCtx, start7, today)
		return err
	})
	g.Go(func() error {
		var err error
		weekLeaves, err = s.leaveRepo.ListOverlapping(gCtx, start7, today, []leave.Status{leave.StatusApproved})
		return err
	})
	g.Go(func() error {
		var err error
		monthRecords, err = s.attendanceRepo.ListRange(gCtx, start30, today)
		return err
	})
	g.Go(func() error {
		var err error
		recentLeaves, err = s.leaveRepo.ListRecent(gCtx, recentLeaveLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return reportdomain.DashboardResponse{}, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	presentToday, lateToday := 0, 0
	for _, rec := range todayRecords {
		switch rec.Status {
		case attendance.StatusPresent:
			presentToday++
		case attendance.StatusLate:
			lateToday++
		}
	}

	onLeaveToday := make(map[string]struct{})
	for _, lr := range leavesToday {
		onLeaveToday[lr.EmployeeID] = struct{}{}
	}
	absentToday := max(0, employeeCount-(presentToday+lateToday)-len(onLeaveToday))

	weekIndex := report.BuildLeaveIndex(weekLeaves, []leave.Status{leave.StatusApproved}, start7, today)

	return reportdomain.DashboardResponse{
		Totals: reportdomain.DashboardTotals{
			Employees:           employeeCount,
			PresentToday:        presentToday,
			LateToday:           lateToday,
			AbsentToday:         absentToday,
			PendingLeaves:       len(pendingLeaves),
			ApprovedLeavesToday: len(onLeaveToday),
		},
		Trend7:       report.DailyTrend(weekRecords, weekIndex, employeeCount, start7, today),
		TopLates30:   report.TopLates(monthRecords, start30, today, topLatesLimit),
		RecentLeaves: toRecentLeaves(recentLeaves),
	}, nil
}

func toRecentLeaves(requests []leave.LeaveRequest) []reportdomain.RecentLeave {
	recent := make([]reportdomain.RecentLeave, 0, len(requests))
	for _, lr := range requests {
		recent = append(recent, reportdomain.RecentLeave{
			ID:           lr.ID,
			EmployeeName: lr.EmployeeName,
			LeaveType:    string(lr.Category),
			StartDate:    lr.StartDate.Format("2006-01-02"),
			EndDate:      lr.EndDate.Format("2006-01-02"),
			Status:       string(lr.Status),
			CreatedAt:    lr.CreatedAt.Format(time.RFC3339),
		})
	}
	return recent
}
