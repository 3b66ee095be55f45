package employee

import (
	"strings"
	"time"
)

type Employee struct {
	ID              string
	Email           string
	GoogleID        *string
	PasswordHash    string
	FirstName       string
	LastName        string
	MiddleName      *string
	Suffix          *string
	ContactNumber   *string
	Address         *string
	BirthDate       *time.Time
	ProfileImageURL *string
	IsAdmin         bool
	IsRestricted    bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName joins first and last name the way report payloads render it.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
