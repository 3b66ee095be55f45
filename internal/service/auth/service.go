package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklens-app/attendance-backend-go/internal/config"
	"github.com/worklens-app/attendance-backend-go/internal/domain/auth"
	"github.com/worklens-app/attendance-backend-go/internal/domain/employee"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/jwt"
	"github.com/worklens-app/attendance-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
	adminConfig   config.AdminConfig
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
	adminConfig config.AdminConfig,
) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		googleService: googleService,
		adminConfig:   adminConfig,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if emp.IsRestricted {
		return auth.LoginResponse{}, employee.ErrEmployeeRestricted
	}

	return s.loginResponse(emp)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenPair{}, auth.ErrTokenRevoked
	}

	employeeID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if emp.IsRestricted {
		return auth.TokenPair{}, employee.ErrEmployeeRestricted
	}

	// Rotate: the old refresh token dies with the exchange.
	s.jwtService.RevokeToken(refreshToken)

	return s.tokenPair(emp)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(accessToken)
	return nil
}

// GoogleRedirectURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleRedirectURL(userAgent string) (string, string) {
	state := s.googleService.GenerateState(userAgent)
	return s.googleService.RedirectURL(state), state
}

// GoogleCallback implements auth.AuthService.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange OAuth2 code: %w", err)
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch Google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrEmailNotVerified
	}

	emp, err := s.findOrProvision(ctx, info)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if emp.IsRestricted {
		return auth.LoginResponse{}, employee.ErrEmployeeRestricted
	}

	return s.loginResponse(emp)
}

// findOrProvision resolves a Google identity to an employee: by Google ID
// first, then by email with linking, finally by creating a fresh account.
func (s *AuthServiceImpl) findOrProvision(ctx context.Context, info oauth.GoogleInformation) (employee.Employee, error) {
	emp, err := s.employeeRepo.GetByGoogleID(ctx, info.GoogleID)
	if err == nil {
		return emp, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, err
	}

	email := strings.ToLower(info.Email)
	emp, err = s.employeeRepo.GetByEmail(ctx, email)
	if err == nil {
		if linkErr := s.employeeRepo.LinkGoogleID(ctx, emp.ID, info.GoogleID); linkErr != nil {
			return employee.Employee{}, linkErr
		}
		emp.GoogleID = &info.GoogleID
		return emp, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, err
	}

	// First sign-in with an unknown account. The password is a throwaway so
	// the account stays OAuth-only until someone resets it.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	newEmp := employee.Employee{
		Email:        email,
		GoogleID:     &info.GoogleID,
		PasswordHash: string(hash),
		FirstName:    info.GivenName,
		LastName:     info.FamilyName,
	}
	if info.Picture != "" {
		newEmp.ProfileImageURL = &info.Picture
	}
	return s.employeeRepo.Create(ctx, newEmp)
}

// EnsureAdmin implements auth.AuthService.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context) error {
	exists, err := s.employeeRepo.AdminExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminConfig.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.employeeRepo.Create(ctx, employee.Employee{
		Email:        strings.ToLower(s.adminConfig.Email),
		PasswordHash: string(hash),
		FirstName:    "System",
		LastName:     "Administrator",
		IsAdmin:      true,
	})
	if err != nil {
		// A concurrent boot may have won the race; the account exists either way.
		if errors.Is(err, employee.ErrEmailExists) {
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	return nil
}

func (s *AuthServiceImpl) tokenPair(emp employee.Employee) (auth.TokenPair, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *AuthServiceImpl) loginResponse(emp employee.Employee) (auth.LoginResponse, error) {
	pair, err := s.tokenPair(emp)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	return auth.LoginResponse{
		TokenPair: pair,
		Employee:  employee.ToResponse(emp),
	}, nil
}
