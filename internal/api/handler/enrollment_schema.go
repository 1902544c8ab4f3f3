package handler

import "time"

type enrollRequest struct {
	// UserID may only be set by admins; other callers enroll themselves.
	UserID string `json:"user_id"`
	Notes  string `json:"notes"`
}

type updateEnrollmentRequest struct {
	UserID   string  `json:"user_id"`
	Status   *string `json:"status"   validate:"omitempty,oneof=active completed inactive"`
	Progress *int    `json:"progress" validate:"omitempty,min=0,max=100"`
	Notes    *string `json:"notes"`
}

type completeEnrollmentRequest struct {
	UserID string `json:"user_id"`
}

type enrollmentResponse struct {
	UserID         string     `json:"user_id"`
	ProgramID      string     `json:"program_id"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	Notes          string     `json:"notes,omitempty"`
	EnrolledAt     time.Time  `json:"enrolled_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

type enrollmentListResponse struct {
	Data []enrollmentResponse `json:"data"`
}
