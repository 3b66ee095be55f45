package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
	ErrEmailNotVerified   = errors.New("email not verified by identity provider")
)
