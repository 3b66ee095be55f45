package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/service/report"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// employeeIDFromContext extracts employee_id from JWT claims
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id not found in claims")
	}
	return employeeID, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	att := attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        report.Day(now),
		ClockIn:     &now,
		Status:      Classify(now),
		HoursWorked: "00:00:00",
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, report.Day(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att == nil || att.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoClockIn
	}
	if att.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	updated, err := s.attendanceRepo.SetClockOut(ctx, att.ID, now, ElapsedHMS(*att.ClockIn, now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(updated), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (*attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, report.Day(time.Now()))
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, nil
	}

	resp := attendance.ToResponse(*att)
	return &resp, nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, start, end string) ([]attendance.AttendanceResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	filter, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListEmployeeRange(ctx, employeeID, filter.Start, filter.End)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// ListRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRange(ctx context.Context, start, end string, includeAbsent bool) ([]attendance.AttendanceResponse, error) {
	filter, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListRange(ctx, filter.Start, filter.End)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}

	if includeAbsent {
		synthesized, err := s.synthesizeAbsences(ctx, responses, filter.Start, filter.End)
		if err != nil {
			return nil, err
		}
		responses = append(responses, synthesized...)
	}

	return responses, nil
}

// synthesizeAbsences fills uncovered (employee, working day) slots with
// virtual Absent rows so the admin view shows who was missing, not just who
// showed up. Synthesized rows carry a derived ID and never touch storage.
func (s *AttendanceServiceImpl) synthesizeAbsences(ctx context.Context, existing []attendance.AttendanceResponse, start, end time.Time) ([]attendance.AttendanceResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	covered := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		covered[r.EmployeeID+"|"+r.Date] = struct{}{}
	}

	absentStatus := "Absent"
	var synthesized []attendance.AttendanceResponse
	for _, d := range report.DaysBetween(start, end) {
		if !report.IsWorkingDay(d) {
			continue
		}
		day := d.Format("2006-01-02")
		for _, emp := range employees {
			if _, ok := covered[emp.ID+"|"+day]; ok {
				continue
			}
			name := emp.FullName()
			synthesized = append(synthesized, attendance.AttendanceResponse{
				ID:           fmt.Sprintf("absent-%s-%s", emp.ID, day),
				EmployeeID:   emp.ID,
				EmployeeName: &name,
				Date:         day,
				Status:       &absentStatus,
				HoursWorked:  "00:00:00",
			})
		}
	}
	return synthesized, nil
}

func parseRange(start, end string) (attendance.RangeFilter, error) {
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return attendance.RangeFilter{}, attendance.ErrInvalidDateRange
	}
	endDay, err := time.Parse("2006-01-02", end)
	if err != nil {
		return attendance.RangeFilter{}, attendance.ErrInvalidDateRange
	}
	if endDay.Before(startDay) {
		return attendance.RangeFilter{}, attendance.ErrInvalidDateRange
	}
	return attendance.RangeFilter{Start: startDay, End: endDay}, nil
}
