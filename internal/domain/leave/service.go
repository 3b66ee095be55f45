package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// Submit files a new request for the authenticated employee
	Submit(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetMyRequests returns the authenticated employee's requests, newest first
	GetMyRequests(ctx context.Context) ([]LeaveRequestResponse, error)

	// List returns all requests (admin), optionally filtered by status
	List(ctx context.Context, status string) ([]LeaveRequestResponse, error)

	// Approve resolves a pending request to Approved (admin)
	Approve(ctx context.Context, id string) (LeaveRequestResponse, error)

	// Reject resolves a pending request to Rejected (admin)
	Reject(ctx context.Context, id string) (LeaveRequestResponse, error)
}
