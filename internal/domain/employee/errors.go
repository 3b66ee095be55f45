package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrGoogleIDExists         = errors.New("google account already linked to another employee")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrEmployeeRestricted     = errors.New("employee account is restricted")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
