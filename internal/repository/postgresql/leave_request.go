package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.category, lr.start_date, lr.end_date, lr.reason, lr.status,
	lr.created_at, lr.updated_at,
	TRIM(e.first_name || ' ' || e.last_name) AS employee_name`

const leaveRequestFrom = `
	FROM leave_requests lr
	JOIN employees e ON e.id = lr.employee_id`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.Category, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status,
		&lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName,
	)
	return lr, err
}

func scanLeaveRequestRows(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, lr leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, category, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lr.EmployeeID,
		lr.Category,
		lr.StartDate,
		lr.EndDate,
		lr.Reason,
		lr.Status,
	).Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lr, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + leaveRequestFrom + ` WHERE lr.id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return lr, nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + leaveRequestFrom + `
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by employee: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequestRows(rows)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + leaveRequestFrom + `
		WHERE ($1::text IS NULL OR lr.status = $1)
		ORDER BY lr.created_at DESC`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequestRows(rows)
}

// ListRecent implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListRecent(ctx context.Context, limit int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + leaveRequestFrom + `
		ORDER BY lr.created_at DESC
		LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequestRows(rows)
}

// ListOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListOverlapping(ctx context.Context, start, end time.Time, statuses []leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + leaveRequestFrom + `
		WHERE lr.start_date <= $2
		  AND lr.end_date >= $1
		  AND lr.status = ANY($3)
		ORDER BY lr.start_date`

	rows, err := q.Query(ctx, query, start, end, statusStrings(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequestRows(rows)
}

// ListEmployeeOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListEmployeeOverlapping(ctx context.Context, employeeID string, start, end time.Time, statuses []leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + leaveRequestFrom + `
		WHERE lr.employee_id = $1
		  AND lr.start_date <= $3
		  AND lr.end_date >= $2
		  AND lr.status = ANY($4)
		ORDER BY lr.start_date`

	rows, err := q.Query(ctx, query, employeeID, start, end, statusStrings(statuses))
	if err != nil {
		return nil, fmt.Errorf("failed to list employee overlapping leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequestRows(rows)
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Pending is the only non-terminal state; the WHERE clause enforces the
	// one-way transition even under concurrent reviews.
	query := `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		  AND status = 'Pending'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, status).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either missing or already resolved; disambiguate for the caller.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return leave.LeaveRequest{}, getErr
			}
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func statusStrings(statuses []leave.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
