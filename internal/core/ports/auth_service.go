package ports

import (
	"context"
	"time"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// RegisterInput carries the fields collected at registration. New accounts
// always start with the client role.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Gender      string
	DateOfBirth time.Time
	Phone       string
	Address     string
	ImageURL    string
}

// UserView is a profile-enriched account: exactly one of the profile fields is
// populated, matching the account's role (admins carry neither).
type UserView struct {
	User          *domain.User
	ClientProfile *domain.ClientProfile
	DoctorProfile *domain.DoctorProfile
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  *UserView
}

// UpdateProfileInput carries optional field updates; nil means "leave as is".
// License and specialization only apply to doctor-role accounts, the name and
// contact fields to client-role accounts.
type UpdateProfileInput struct {
	Email          *string
	ImageURL       *string
	FirstName      *string
	LastName       *string
	Phone          *string
	Address        *string
	LicenseNumber  *string
	Specialization *string
}

// AuthService orchestrates the credential lifecycle and profile management.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	VerifyAccount(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ResendVerification(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UpgradeToDoctor(ctx context.Context, userID, licenseNumber, specialization string) error
	GetProfile(ctx context.Context, userID string) (*UserView, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) error
	SearchUsers(ctx context.Context, query, role string) ([]*UserView, error)
	ListUsers(ctx context.Context, limit int) ([]*UserView, error)
}
