package domain

import "errors"

// Sentinel errors for the core. Callers classify with errors.Is; additional
// context is attached at the point of detection via fmt.Errorf("%w: ...").
var (
	// ErrInvalidData covers structural validation failures and gateway
	// failures wrapped with a generic internal message.
	ErrInvalidData = errors.New("invalid data")

	// ErrUserExists signals an email uniqueness conflict on registration.
	ErrUserExists = errors.New("user already exists")

	ErrUserNotFound = errors.New("user not found")
	ErrRoleNotFound = errors.New("role not found")

	// ErrInvalidCredentials covers both unknown email and password mismatch
	// at login. The HTTP layer renders a single message for either case.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, tampered, or unsigned tokens.
	ErrInvalidToken = errors.New("invalid token")
)
