package ports

import (
	"context"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// ProgramRepository defines persistence for health programs.
type ProgramRepository interface {
	Create(ctx context.Context, p *domain.Program) error
	FindByID(ctx context.Context, programID string) (*domain.Program, error)
	FindAll(ctx context.Context) ([]*domain.Program, error)
	Update(ctx context.Context, p *domain.Program) error
	// Delete removes the program; enrollments cascade at the store level.
	Delete(ctx context.Context, programID string) error
}
