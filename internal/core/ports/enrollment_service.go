package ports

import (
	"context"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// EnrollInput carries the fields for a new enrollment.
type EnrollInput struct {
	UserID    string
	ProgramID string
	Notes     string
}

// UpdateEnrollmentInput carries optional enrollment updates; nil means
// "leave as is".
type UpdateEnrollmentInput struct {
	Status   *domain.EnrollmentStatus
	Progress *int
	Notes    *string
}

// EnrollmentService defines use-case operations for enrollments.
type EnrollmentService interface {
	Enroll(ctx context.Context, in EnrollInput) (*domain.Enrollment, error)
	Update(ctx context.Context, userID, programID string, in UpdateEnrollmentInput) (*domain.Enrollment, error)
	Complete(ctx context.Context, userID, programID string) (*domain.Enrollment, error)
	Delete(ctx context.Context, userID, programID string) error
	ListAll(ctx context.Context) ([]*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Enrollment, error)
}
