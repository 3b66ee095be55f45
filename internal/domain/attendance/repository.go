package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts the first record of the day. The (employee_id, date)
	// unique index makes a concurrent duplicate surface as
	// ErrAlreadyClockedIn rather than a second row.
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time, hoursWorked string) (Attendance, error)
	// ListRange returns all records with day in [start, end], joined with
	// employee names, ordered by day.
	ListRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
	// ListEmployeeRange returns one employee's records with day in [start, end].
	ListEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}
