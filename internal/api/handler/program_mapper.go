package handler

import (
	"github.com/carebridge/enrollment-api/internal/core/domain"
)

func toProgramResponse(p *domain.Program) programResponse {
	return programResponse{
		ProgramID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func toProgramResponses(programs []*domain.Program) []programResponse {
	out := make([]programResponse, len(programs))
	for i, p := range programs {
		out[i] = toProgramResponse(p)
	}
	return out
}

func toEnrollmentResponse(e *domain.Enrollment) enrollmentResponse {
	resp := enrollmentResponse{
		UserID:     e.UserID,
		ProgramID:  e.ProgramID,
		Status:     string(e.Status),
		Progress:   e.Progress,
		Notes:      e.Notes,
		EnrolledAt: e.EnrolledAt.UTC(),
	}
	if e.LastAccessedAt != nil {
		t := e.LastAccessedAt.UTC()
		resp.LastAccessedAt = &t
	}
	if e.CompletedAt != nil {
		t := e.CompletedAt.UTC()
		resp.CompletedAt = &t
	}
	return resp
}

func toEnrollmentResponses(enrollments []*domain.Enrollment) []enrollmentResponse {
	out := make([]enrollmentResponse, len(enrollments))
	for i, e := range enrollments {
		out[i] = toEnrollmentResponse(e)
	}
	return out
}
