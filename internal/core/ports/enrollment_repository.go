package ports

import (
	"context"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// EnrollmentRepository defines persistence for enrollments. The store enforces
// (user_id, program_id) uniqueness as a composite primary key.
type EnrollmentRepository interface {
	// Create inserts the enrollment. Returns domain.ErrAlreadyEnrolled when the
	// composite key already exists.
	Create(ctx context.Context, e *domain.Enrollment) error
	Find(ctx context.Context, userID, programID string) (*domain.Enrollment, error)
	Update(ctx context.Context, e *domain.Enrollment) error
	Delete(ctx context.Context, userID, programID string) error
	ListAll(ctx context.Context) ([]*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
	ListByProgram(ctx context.Context, programID string) ([]*domain.Enrollment, error)
}
