package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// List returns all requests, newest first, optionally filtered by status.
	List(ctx context.Context, status *Status) ([]LeaveRequest, error)
	ListRecent(ctx context.Context, limit int) ([]LeaveRequest, error)
	// ListOverlapping returns requests whose [start,end] intersects [start,end]
	// and whose status is in statuses.
	ListOverlapping(ctx context.Context, start, end time.Time, statuses []Status) ([]LeaveRequest, error)
	ListEmployeeOverlapping(ctx context.Context, employeeID string, start, end time.Time, statuses []Status) ([]LeaveRequest, error)
	// UpdateStatus resolves a pending request; it fails with
	// ErrLeaveAlreadyProcessed when the request is no longer pending.
	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)
}
