package leave

import "errors"

// Leave domain errors
var (
	ErrInvalidLeaveWindow    = errors.New("leave must start at least 3 days from today and end on or after it starts")
	ErrInvalidLeaveCategory  = errors.New("invalid leave category")
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
)
