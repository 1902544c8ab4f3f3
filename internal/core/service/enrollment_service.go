package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/carebridge/enrollment-api/internal/api/metrics"
	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

// EnrollmentService implements enrollment bookkeeping. Duplicate enrollments
// are prevented twice: a pre-insert check for the friendly error path, and the
// store's composite primary key for correctness under concurrent requests.
type EnrollmentService struct {
	enrollments ports.EnrollmentRepository
	programs    ports.ProgramRepository
	log         zerolog.Logger
}

func NewEnrollmentService(enrollments ports.EnrollmentRepository, programs ports.ProgramRepository, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, programs: programs, log: log}
}

// Enroll creates an active enrollment for (userID, programID). The program
// must exist and be active.
func (s *EnrollmentService) Enroll(ctx context.Context, in ports.EnrollInput) (*domain.Enrollment, error) {
	program, err := s.programs.FindByID(ctx, in.ProgramID)
	if err != nil {
		return nil, err
	}
	if !program.IsActive {
		return nil, domain.ErrProgramInactive
	}

	if _, err := s.enrollments.Find(ctx, in.UserID, in.ProgramID); err == nil {
		return nil, domain.ErrAlreadyEnrolled
	}

	enrollment := &domain.Enrollment{
		UserID:     in.UserID,
		ProgramID:  in.ProgramID,
		Status:     domain.EnrollmentActive,
		Progress:   0,
		Notes:      in.Notes,
		EnrolledAt: time.Now().UTC(),
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	metrics.EnrollmentsCreatedTotal.Inc()
	s.log.Info().Str("user_id", in.UserID).Str("program_id", in.ProgramID).Msg("enrollment created")
	return enrollment, nil
}

// Update applies status/progress/notes changes and stamps last access time.
func (s *EnrollmentService) Update(ctx context.Context, userID, programID string, in ports.UpdateEnrollmentInput) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.Find(ctx, userID, programID)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		enrollment.Status = *in.Status
	}
	if in.Progress != nil {
		enrollment.Progress = *in.Progress
	}
	if in.Notes != nil {
		enrollment.Notes = *in.Notes
	}
	now := time.Now().UTC()
	enrollment.LastAccessedAt = &now

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Complete marks the enrollment finished: status completed, full progress,
// completion timestamp.
func (s *EnrollmentService) Complete(ctx context.Context, userID, programID string) (*domain.Enrollment, error) {
	enrollment, err := s.enrollments.Find(ctx, userID, programID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	enrollment.Status = domain.EnrollmentCompleted
	enrollment.Progress = 100
	enrollment.CompletedAt = &now
	enrollment.LastAccessedAt = &now

	if err := s.enrollments.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	metrics.EnrollmentsCompletedTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("program_id", programID).Msg("enrollment completed")
	return enrollment, nil
}

func (s *EnrollmentService) Delete(ctx context.Context, userID, programID string) error {
	return s.enrollments.Delete(ctx, userID, programID)
}

func (s *EnrollmentService) ListAll(ctx context.Context) ([]*domain.Enrollment, error) {
	return s.enrollments.ListAll(ctx)
}

func (s *EnrollmentService) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	return s.enrollments.ListByUser(ctx, userID)
}

// ListByProgram verifies the program exists before listing its enrollments.
func (s *EnrollmentService) ListByProgram(ctx context.Context, programID string) ([]*domain.Enrollment, error) {
	if _, err := s.programs.FindByID(ctx, programID); err != nil {
		return nil, err
	}
	return s.enrollments.ListByProgram(ctx, programID)
}
