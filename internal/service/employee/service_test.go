package employee

import (
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/validator"
)

type stubEmployeeRepo struct {
	created  *employee.Employee
	imageID  string
	imageURL string
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = "emp-1"
	s.created = &emp
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{ID: id}, nil
}

func (s *stubEmployeeRepo) GetByEmail(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByGoogleID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(context.Context) ([]employee.Employee, error) { return nil, nil }
func (s *stubEmployeeRepo) Count(context.Context) (int, error)                { return 0, nil }

func (s *stubEmployeeRepo) Update(context.Context, employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (s *stubEmployeeRepo) UpdateProfileImage(_ context.Context, id string, url string) error {
	s.imageID = id
	s.imageURL = url
	return nil
}

func (s *stubEmployeeRepo) LinkGoogleID(context.Context, string, string) error { return nil }
func (s *stubEmployeeRepo) Delete(context.Context, string) error               { return nil }
func (s *stubEmployeeRepo) AdminExists(context.Context) (bool, error)          { return true, nil }

type stubStorage struct {
	path        string
	contentType string
}

func (s *stubStorage) Upload(_ context.Context, _ io.Reader, path string, contentType string) (string, error) {
	s.path = path
	s.contentType = contentType
	return "http://localhost:8080/uploads/" + path, nil
}

func (s *stubStorage) Delete(context.Context, string) error         { return nil }
func (s *stubStorage) Exists(context.Context, string) (bool, error) { return false, nil }

func TestCreate(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc := NewEmployeeService(repo, &stubStorage{})

	birthDate := "1995-04-12"
	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Email:     "Ann.Cole@Worklens.app",
		Password:  "secret123",
		FirstName: "  Ann ",
		LastName:  " Cole ",
		BirthDate: &birthDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "ann.cole@worklens.app", resp.Email)
	assert.Equal(t, "Ann", resp.FirstName)
	assert.Equal(t, "Cole", resp.LastName)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1995-04-12", *resp.BirthDate)

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "secret123", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret123")))
}

func TestCreateValidation(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{}, &stubStorage{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Email:     "not-an-email",
		FirstName: "Ann",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "lastName")
	assert.Contains(t, fields, "password")
}

func uploadRequest(employeeID, filename string) employee.UploadProfileImageRequest {
	return employee.UploadProfileImageRequest{
		EmployeeID: employeeID,
		FileHeader: &multipart.FileHeader{
			Filename: filename,
			Header:   textproto.MIMEHeader{},
		},
	}
}

func TestUploadProfileImage(t *testing.T) {
	repo := &stubEmployeeRepo{}
	store := &stubStorage{}
	svc := NewEmployeeService(repo, store)

	url, err := svc.UploadProfileImage(context.Background(), uploadRequest("emp-1", "Avatar.PNG"))
	require.NoError(t, err)

	assert.Equal(t, "image/png", store.contentType)
	assert.True(t, strings.HasPrefix(store.path, "profiles/emp-1/"), "path = %s", store.path)
	assert.True(t, strings.HasSuffix(store.path, ".png"), "path = %s", store.path)
	assert.Equal(t, "emp-1", repo.imageID)
	assert.Equal(t, url, repo.imageURL)
}

func TestUploadProfileImageRejectsUnknownExtension(t *testing.T) {
	svc := NewEmployeeService(&stubEmployeeRepo{}, &stubStorage{})

	_, err := svc.UploadProfileImage(context.Background(), uploadRequest("emp-1", "avatar.gif"))

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "image")
}
