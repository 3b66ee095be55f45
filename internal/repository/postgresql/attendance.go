package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// statusOrNil maps the empty status to NULL so the column stays a clean enum.
func statusOrNil(s attendance.Status) *string {
	if s == attendance.StatusNone {
		return nil
	}
	v := string(s)
	return &v
}

func scanStatus(s *string) attendance.Status {
	if s == nil {
		return attendance.StatusNone
	}
	return attendance.Status(*s)
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// The unique index on (employee_id, date) is the arbiter: a concurrent
	// duplicate clock-in loses the race and gets ErrAlreadyClockedIn.
	query := `
		INSERT INTO attendances (employee_id, date, clock_in, status, hours_worked)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		statusOrNil(att.Status),
		att.HoursWorked,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, hours_worked, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	var status *string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut, &status, &att.HoursWorked,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	att.Status = scanStatus(status)
	return &att, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetClockOut(ctx context.Context, id string, clockOut time.Time, hoursWorked string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// Conditional update keeps a completed record immutable under races.
	query := `
		UPDATE attendances
		SET clock_out = $2, hours_worked = $3, updated_at = NOW()
		WHERE id = $1
		  AND clock_out IS NULL
		RETURNING id, employee_id, date, clock_in, clock_out, status, hours_worked, created_at, updated_at
	`

	var att attendance.Attendance
	var status *string
	err := q.QueryRow(ctx, query, id, clockOut, hoursWorked).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut, &status, &att.HoursWorked,
		&att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set clock-out: %w", err)
	}

	att.Status = scanStatus(status)
	return att, nil
}

// ListRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.status, a.hours_worked,
			   a.created_at, a.updated_at,
			   TRIM(e.first_name || ' ' || e.last_name) AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date BETWEEN $1 AND $2
		ORDER BY a.date, employee_name
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows, true)
}

// ListEmployeeRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListEmployeeRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status, hours_worked, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee attendance range: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows, false)
}

func scanAttendanceRows(rows pgx.Rows, withName bool) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var status *string

		dest := []interface{}{
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut, &status, &att.HoursWorked,
			&att.CreatedAt, &att.UpdatedAt,
		}
		if withName {
			dest = append(dest, &att.EmployeeName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}

		att.Status = scanStatus(status)
		records = append(records, att)
	}
	return records, rows.Err()
}
