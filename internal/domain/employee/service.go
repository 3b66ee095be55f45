package employee

import (
	"context"
)

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// Create registers a new employee account (admin)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetByID returns one employee (admin)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	// GetMe returns the authenticated employee's own profile
	GetMe(ctx context.Context) (EmployeeResponse, error)

	// List returns all employees ordered by name (admin)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Update applies a partial update (admin)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UploadProfileImage stores a new profile image and returns its URL
	UploadProfileImage(ctx context.Context, req UploadProfileImageRequest) (string, error)

	// Delete removes an employee account (admin)
	Delete(ctx context.Context, id string) error
}
