package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/validator"
	"github.com/worklens-app/attendance-backend-go/internal/service/report"
)

// minNoticeDays is the shortest allowed gap between filing and the first day
// of leave.
const minNoticeDays = 3

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRequestRepository
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo}
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

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	req.Category = category
	if !validator.IsInSlice(category, leave.Categories) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidLeaveCategory
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	earliest := report.Day(time.Now()).AddDate(0, 0, minNoticeDays)
	if startDate.Before(earliest) || endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidLeaveWindow
	}

	var reason *string
	if req.Reason != nil {
		if trimmed := strings.TrimSpace(*req.Reason); trimmed != "" {
			reason = &trimmed
		}
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		Category:   leave.Category(category),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, status string) ([]leave.LeaveRequestResponse, error) {
	var filter *leave.Status
	if status != "" {
		st := leave.Status(status)
		if st != leave.StatusPending && st != leave.StatusApproved && st != leave.StatusRejected {
			return nil, validator.ValidationErrors{{Field: "status", Message: "allowed: Pending, Approved, Rejected"}}
		}
		filter = &st
	}

	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	return s.resolve(ctx, id, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	return s.resolve(ctx, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) resolve(ctx context.Context, id string, status leave.Status) (leave.LeaveRequestResponse, error) {
	updated, err := s.leaveRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(updated), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, leave.ToResponse(lr))
	}
	return responses
}
