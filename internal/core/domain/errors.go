package domain

import "errors"

// Sentinel errors form the closed error taxonomy of the service. Repositories
// translate store errors into these; the HTTP boundary maps them to status
// codes exactly once.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("please verify your email before logging in")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAlreadyVerified    = errors.New("account is already verified")
	ErrNotClient          = errors.New("only clients can be upgraded to doctors")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access forbidden")

	ErrProgramNotFound    = errors.New("program not found")
	ErrProgramInactive    = errors.New("program is not active")
	ErrAlreadyEnrolled    = errors.New("user is already enrolled in this program")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)
