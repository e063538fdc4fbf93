package domain

import "errors"

var (
	// ErrInvalidCredentials covers both "unknown email" and "wrong password"
	// on login. The two cases are deliberately indistinguishable so the API
	// cannot be used as an account-existence oracle.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
	ErrTooManyAttempts    = errors.New("too many login attempts")

	// ErrInvalidID marks a path identifier that cannot be a stored ID.
	ErrInvalidID = errors.New("invalid identifier")

	ErrUserNotFound    = errors.New("user not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrSessionNotFound = errors.New("session not found")

	ErrAlreadyParticipating = errors.New("user already participates in session")
	ErrNotParticipating     = errors.New("user does not participate in session")
)
