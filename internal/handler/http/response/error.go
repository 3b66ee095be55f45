package response

import (
	"errors"
	"net/http"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/domain/auth"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/domain/leave"
	"github.com/worklens-app/attendance-backend-go/internal/domain/report"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrGoogleIDExists):
		Conflict(w, "Google account already linked")
	case errors.Is(err, employee.ErrEmployeeRestricted):
		Forbidden(w, "Account is restricted")
	case errors.Is(err, employee.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for today")
	case errors.Is(err, attendance.ErrNoClockIn):
		BadRequest(w, "No clock-in recorded for today", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidLeaveWindow):
		BadRequest(w, "Leave must start at least 3 days from today and end on or after it starts", nil)
	case errors.Is(err, leave.ErrInvalidLeaveCategory):
		BadRequest(w, "Invalid leave type, allowed: sick, vacation, maternity, emergency", nil)
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Month must use the YYYY-MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
