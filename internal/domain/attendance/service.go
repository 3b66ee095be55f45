package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn creates today's record for the authenticated employee
	ClockIn(ctx context.Context) (AttendanceResponse, error)

	// ClockOut completes today's record
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// GetToday returns today's record for the authenticated employee, nil if none
	GetToday(ctx context.Context) (*AttendanceResponse, error)

	// GetMyAttendance returns the authenticated employee's records in a range
	GetMyAttendance(ctx context.Context, start, end string) ([]AttendanceResponse, error)

	// ListRange returns all records in a range (admin); when includeAbsent is
	// set, uncovered working-day slots are synthesized as Absent rows
	ListRange(ctx context.Context, start, end string, includeAbsent bool) ([]AttendanceResponse, error)
}
