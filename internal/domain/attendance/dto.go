package attendance

import (
	"time"
)

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName *string `json:"employeeName,omitempty"`
	Date         string  `json:"date"`
	TimeIn       *string `json:"timeIn"`
	TimeOut      *string `json:"timeOut"`
	Status       *string `json:"status"`
	HoursWorked  string  `json:"hoursWorked"`
}

// ToResponse maps an entity to the wire shape; empty status serializes as null.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		HoursWorked:  a.HoursWorked,
	}
	if a.ClockIn != nil {
		s := a.ClockIn.Format(time.RFC3339)
		resp.TimeIn = &s
	}
	if a.ClockOut != nil {
		s := a.ClockOut.Format(time.RFC3339)
		resp.TimeOut = &s
	}
	if a.Status != StatusNone {
		s := string(a.Status)
		resp.Status = &s
	}
	return resp
}

// RangeFilter bounds admin listings; both endpoints are inclusive.
type RangeFilter struct {
	Start         time.Time
	End           time.Time
	IncludeAbsent bool
}
