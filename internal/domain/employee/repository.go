package employee

import (
	"context"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByGoogleID(ctx context.Context, googleID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	UpdateProfileImage(ctx context.Context, id string, url string) error
	LinkGoogleID(ctx context.Context, id string, googleID string) error
	Delete(ctx context.Context, id string) error
	// AdminExists reports whether any admin account is present. Used by the
	// startup bootstrap instead of an in-memory "already initialized" flag.
	AdminExists(ctx context.Context) (bool, error)
}
