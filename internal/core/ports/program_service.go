package ports

import (
	"context"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// CreateProgramInput carries the fields for a new program.
type CreateProgramInput struct {
	Name        string
	Description string
}

// UpdateProgramInput carries optional program updates; nil means "leave as is".
type UpdateProgramInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// ProgramService defines use-case operations for the program catalog.
type ProgramService interface {
	Create(ctx context.Context, in CreateProgramInput) (*domain.Program, error)
	Get(ctx context.Context, programID string) (*domain.Program, error)
	GetAll(ctx context.Context) ([]*domain.Program, error)
	Update(ctx context.Context, programID string, in UpdateProgramInput) (*domain.Program, error)
	Delete(ctx context.Context, programID string) (*domain.Program, error)
	Toggle(ctx context.Context, programID string) (*domain.Program, error)
}
