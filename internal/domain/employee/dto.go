package employee

import (
	"mime/multipart"
	"time"

	"github.com/worklens-app/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	MiddleName    *string `json:"middleName"`
	Suffix        *string `json:"suffix"`
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
	BirthDate     *string `json:"birthDate"`
	IsAdmin       bool    `json:"isAdmin"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "first name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "last name is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthDate", Message: "expected YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	MiddleName    *string `json:"middleName"`
	Suffix        *string `json:"suffix"`
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
	BirthDate     *string `json:"birthDate"`
	IsAdmin       *bool   `json:"isAdmin"`
	IsRestricted  *bool   `json:"isRestricted"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "first name cannot be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "last name cannot be empty"})
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthDate", Message: "expected YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UploadProfileImageRequest struct {
	EmployeeID string
	File       multipart.File
	FileHeader *multipart.FileHeader
}

// ToResponse maps an entity to the wire shape. The password hash and Google
// subject never leave the service layer.
func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID,
		Email:           e.Email,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		MiddleName:      e.MiddleName,
		Suffix:          e.Suffix,
		ContactNumber:   e.ContactNumber,
		Address:         e.Address,
		ProfileImageURL: e.ProfileImageURL,
		IsAdmin:         e.IsAdmin,
		IsRestricted:    e.IsRestricted,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
	if e.BirthDate != nil {
		s := e.BirthDate.Format("2006-01-02")
		resp.BirthDate = &s
	}
	return resp
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	MiddleName      *string `json:"middleName,omitempty"`
	Suffix          *string `json:"suffix,omitempty"`
	ContactNumber   *string `json:"contactNumber,omitempty"`
	Address         *string `json:"address,omitempty"`
	BirthDate       *string `json:"birthDate,omitempty"`
	ProfileImageURL *string `json:"profileImage,omitempty"`
	IsAdmin         bool    `json:"isAdmin"`
	IsRestricted    bool    `json:"isRestricted"`
	CreatedAt       string  `json:"createdAt"`
}
