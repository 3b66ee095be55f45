package auth

import (
	"context"
)

// AuthService defines business logic for authentication
type AuthService interface {
	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)

	// Logout revokes the presented access token
	Logout(ctx context.Context, accessToken string) error

	// GoogleRedirectURL starts the OAuth2 flow; the state must round-trip
	// through the callback
	GoogleRedirectURL(userAgent string) (url string, state string)

	// GoogleCallback finishes the OAuth2 flow, linking or provisioning the
	// account as needed
	GoogleCallback(ctx context.Context, code string) (LoginResponse, error)

	// EnsureAdmin creates the bootstrap admin account when no admin exists.
	// Safe to call on every startup.
	EnsureAdmin(ctx context.Context) error
}
