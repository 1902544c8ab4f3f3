package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

// ProgramService implements catalog CRUD for health programs.
type ProgramService struct {
	repo ports.ProgramRepository
	log  zerolog.Logger
}

func NewProgramService(repo ports.ProgramRepository, log zerolog.Logger) *ProgramService {
	return &ProgramService{repo: repo, log: log}
}

// Create adds a new active program to the catalog.
func (s *ProgramService) Create(ctx context.Context, in ports.CreateProgramInput) (*domain.Program, error) {
	program := &domain.Program{
		ID:          newProgramID(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, program); err != nil {
		return nil, err
	}

	s.log.Info().Str("program_id", program.ID).Str("name", program.Name).Msg("program created")
	return program, nil
}

func (s *ProgramService) Get(ctx context.Context, programID string) (*domain.Program, error) {
	return s.repo.FindByID(ctx, programID)
}

func (s *ProgramService) GetAll(ctx context.Context) ([]*domain.Program, error) {
	return s.repo.FindAll(ctx)
}

// Update applies field-level updates; nil input fields are left untouched.
func (s *ProgramService) Update(ctx context.Context, programID string, in ports.UpdateProgramInput) (*domain.Program, error) {
	program, err := s.repo.FindByID(ctx, programID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		program.Name = *in.Name
	}
	if in.Description != nil {
		program.Description = *in.Description
	}
	if in.IsActive != nil {
		program.IsActive = *in.IsActive
	}

	if err := s.repo.Update(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// Delete removes the program and returns the deleted record.
func (s *ProgramService) Delete(ctx context.Context, programID string) (*domain.Program, error) {
	program, err := s.repo.FindByID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, programID); err != nil {
		return nil, err
	}

	s.log.Info().Str("program_id", programID).Msg("program deleted")
	return program, nil
}

// Toggle flips the active flag.
func (s *ProgramService) Toggle(ctx context.Context, programID string) (*domain.Program, error) {
	program, err := s.repo.FindByID(ctx, programID)
	if err != nil {
		return nil, err
	}

	program.IsActive = !program.IsActive
	if err := s.repo.Update(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func newProgramID() string {
	return "PROG-" + uuid.NewString()
}
