package leave

import (
	"time"
)

// Category is the leave type an employee can file.
type Category string

const (
	CategorySick      Category = "sick"
	CategoryVacation  Category = "vacation"
	CategoryMaternity Category = "maternity"
	CategoryEmergency Category = "emergency"
)

// Categories lists every accepted leave category.
var Categories = []string{
	string(CategorySick),
	string(CategoryVacation),
	string(CategoryMaternity),
	string(CategoryEmergency),
}

// Status of a leave request. Pending is the only non-terminal state.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Category   Category
	StartDate  time.Time // inclusive
	EndDate    time.Time // inclusive
	Reason     *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for listings
	EmployeeName *string
}
