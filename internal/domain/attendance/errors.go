package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn  = errors.New("already clocked in for today")
	ErrAlreadyClockedOut = errors.New("already clocked out for today")
	ErrNoClockIn         = errors.New("no clock-in recorded for today")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
