package ports

import (
	"context"
	"time"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// UserRepository defines persistence for accounts and their role profiles.
type UserRepository interface {
	// CreateWithClientProfile inserts the account and its client profile in a
	// single transaction. Returns domain.ErrEmailExists on a duplicate email.
	CreateWithClientProfile(ctx context.Context, user *domain.User, profile *domain.ClientProfile) error

	FindByID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByVerificationToken matches a non-expired verification token.
	FindByVerificationToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	// FindByResetToken matches a non-expired password-reset token.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)

	// Update persists all mutable account fields (flags, tokens, password hash,
	// email, image URL). Returns domain.ErrEmailExists on a duplicate email.
	Update(ctx context.Context, user *domain.User) error

	// PromoteToDoctor flips the role to doctor and inserts the doctor profile
	// in a single transaction.
	PromoteToDoctor(ctx context.Context, userID string, profile *domain.DoctorProfile) error

	ClientProfile(ctx context.Context, userID string) (*domain.ClientProfile, error)
	DoctorProfile(ctx context.Context, userID string) (*domain.DoctorProfile, error)
	UpdateClientProfile(ctx context.Context, profile *domain.ClientProfile) error
	UpdateDoctorProfile(ctx context.Context, profile *domain.DoctorProfile) error

	// Search pattern-matches query against email and user id; role narrows the
	// result when non-empty.
	Search(ctx context.Context, query, role string) ([]*domain.User, error)
	// List returns up to limit accounts ordered by creation time.
	List(ctx context.Context, limit int) ([]*domain.User, error)
}
