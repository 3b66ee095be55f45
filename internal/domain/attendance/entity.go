package attendance

import (
	"time"
)

// Status is the classified time-in band for a day. A record saved outside
// any band carries no status at all.
type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusNone    Status = ""
)

type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time // calendar day, no time component
	ClockIn     *time.Time
	ClockOut    *time.Time
	Status      Status
	HoursWorked string // "HH:MM:SS"
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for listings
	EmployeeName *string
}
