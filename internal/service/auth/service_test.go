package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/worklens-app/attendance-backend-go/internal/config"
	"github.com/worklens-app/attendance-backend-go/internal/domain/auth"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/oauth"
)

type stubEmployeeRepo struct {
	employees   []employee.Employee
	adminExists bool
	created     []employee.Employee
	linked      map[string]string
}

func (s *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	emp.ID = fmt.Sprintf("emp-%d", len(s.employees)+1)
	s.employees = append(s.employees, emp)
	s.created = append(s.created, emp)
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetByGoogleID(_ context.Context, googleID string) (employee.Employee, error) {
	for _, e := range s.employees {
		if e.GoogleID != nil && *e.GoogleID == googleID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) Count(context.Context) (int, error) {
	return len(s.employees), nil
}

func (s *stubEmployeeRepo) Update(context.Context, employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (s *stubEmployeeRepo) UpdateProfileImage(context.Context, string, string) error { return nil }

func (s *stubEmployeeRepo) LinkGoogleID(_ context.Context, id string, googleID string) error {
	if s.linked == nil {
		s.linked = make(map[string]string)
	}
	s.linked[id] = googleID
	return nil
}

func (s *stubEmployeeRepo) Delete(context.Context, string) error { return nil }

func (s *stubEmployeeRepo) AdminExists(context.Context) (bool, error) {
	return s.adminExists, nil
}

type stubGoogleService struct {
	info oauth.GoogleInformation
}

func (s *stubGoogleService) GenerateState(string) string { return "state-1" }
func (s *stubGoogleService) RedirectURL(state string) string {
	return "https://accounts.example.com/o/oauth2/auth?state=" + state
}

func (s *stubGoogleService) VerifyToken(context.Context, string) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "ya29.test"}, nil
}

func (s *stubGoogleService) VerifyUser(context.Context, *oauth2.Token) (oauth.GoogleInformation, error) {
	return s.info, nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(repo *stubEmployeeRepo, google *stubGoogleService) (auth.AuthService, jwt.Service) {
	jwtSvc := jwt.NewJWTService("test-secret", "15m", "168h")
	if google == nil {
		google = &stubGoogleService{}
	}
	svc := NewAuthService(repo, jwtSvc, google, config.AdminConfig{
		Email:    "Admin@Worklens.app",
		Password: "bootstrap-password",
	})
	return svc, jwtSvc
}

func TestLogin(t *testing.T) {
	repo := &stubEmployeeRepo{employees: []employee.Employee{{
		ID:           "emp-1",
		Email:        "ann@worklens.app",
		PasswordHash: hashPassword(t, "secret123"),
		FirstName:    "Ann",
		LastName:     "Cole",
	}}}
	svc, _ := newTestService(repo, nil)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "Ann@Worklens.app",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ann@worklens.app", resp.Employee.Email)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := &stubEmployeeRepo{employees: []employee.Employee{{
		ID:           "emp-1",
		Email:        "ann@worklens.app",
		PasswordHash: hashPassword(t, "secret123"),
	}}}
	svc, _ := newTestService(repo, nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ann@worklens.app",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// An unknown email reads the same as a wrong password.
	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@worklens.app",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRestrictedEmployee(t *testing.T) {
	repo := &stubEmployeeRepo{employees: []employee.Employee{{
		ID:           "emp-1",
		Email:        "ann@worklens.app",
		PasswordHash: hashPassword(t, "secret123"),
		IsRestricted: true,
	}}}
	svc, _ := newTestService(repo, nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ann@worklens.app",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeRestricted)
}

func TestRefreshRotatesToken(t *testing.T) {
	repo := &stubEmployeeRepo{employees: []employee.Employee{{
		ID:    "emp-1",
		Email: "ann@worklens.app",
	}}}
	svc, jwtSvc := newTestService(repo, nil)

	refreshToken, _, err := jwtSvc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// The exchanged token is dead; replaying it must fail.
	_, err = svc.Refresh(context.Background(), refreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, jwtSvc := newTestService(&stubEmployeeRepo{}, nil)

	accessToken, _, err := jwtSvc.GenerateAccessToken("emp-1", "ann@worklens.app", false)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	svc, jwtSvc := newTestService(&stubEmployeeRepo{}, nil)

	err := svc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	accessToken, _, err := jwtSvc.GenerateAccessToken("emp-1", "ann@worklens.app", false)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), accessToken))
	assert.True(t, jwtSvc.IsTokenRevoked(accessToken))
}

func TestGoogleCallbackProvisionsNewEmployee(t *testing.T) {
	repo := &stubEmployeeRepo{}
	google := &stubGoogleService{info: oauth.GoogleInformation{
		GoogleID:      "google-123",
		Email:         "New.Hire@Worklens.app",
		VerifiedEmail: true,
		GivenName:     "New",
		FamilyName:    "Hire",
		Picture:       "https://lh3.example.com/photo.jpg",
	}}
	svc, _ := newTestService(repo, google)

	resp, err := svc.GoogleCallback(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "new.hire@worklens.app", resp.Employee.Email)
	require.Len(t, repo.created, 1)
	created := repo.created[0]
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "google-123", *created.GoogleID)
	assert.NotEmpty(t, created.PasswordHash)
	require.NotNil(t, created.ProfileImageURL)
}

func TestGoogleCallbackLinksExistingEmail(t *testing.T) {
	repo := &stubEmployeeRepo{employees: []employee.Employee{{
		ID:    "emp-1",
		Email: "ann@worklens.app",
	}}}
	google := &stubGoogleService{info: oauth.GoogleInformation{
		GoogleID:      "google-456",
		Email:         "Ann@Worklens.app",
		VerifiedEmail: true,
	}}
	svc, _ := newTestService(repo, google)

	resp, err := svc.GoogleCallback(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "ann@worklens.app", resp.Employee.Email)
	assert.Equal(t, "google-456", repo.linked["emp-1"])
	assert.Empty(t, repo.created)
}

func TestGoogleCallbackUnverifiedEmail(t *testing.T) {
	google := &stubGoogleService{info: oauth.GoogleInformation{
		GoogleID: "google-789",
		Email:    "shady@worklens.app",
	}}
	svc, _ := newTestService(&stubEmployeeRepo{}, google)

	_, err := svc.GoogleCallback(context.Background(), "auth-code")
	assert.ErrorIs(t, err, auth.ErrEmailNotVerified)
}

func TestEnsureAdmin(t *testing.T) {
	repo := &stubEmployeeRepo{}
	svc, _ := newTestService(repo, nil)

	require.NoError(t, svc.EnsureAdmin(context.Background()))

	require.Len(t, repo.created, 1)
	admin := repo.created[0]
	assert.Equal(t, "admin@worklens.app", admin.Email)
	assert.True(t, admin.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("bootstrap-password")))
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	repo := &stubEmployeeRepo{adminExists: true}
	svc, _ := newTestService(repo, nil)

	require.NoError(t, svc.EnsureAdmin(context.Background()))
	assert.Empty(t, repo.created)
}
