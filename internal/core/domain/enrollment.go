package domain

import "time"

// EnrollmentStatus labels the state of an enrollment. There is no transition
// graph beyond these three labels.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentInactive  EnrollmentStatus = "inactive"
)

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentInactive:
		return true
	}
	return false
}

// Enrollment associates an account with a program. The (UserID, ProgramID)
// pair is the identity: the store enforces it as a composite primary key.
type Enrollment struct {
	UserID         string           `json:"user_id"`
	ProgramID      string           `json:"program_id"`
	Status         EnrollmentStatus `json:"status"`
	Progress       int              `json:"progress"`
	Notes          string           `json:"notes,omitempty"`
	EnrolledAt     time.Time        `json:"enrolled_at"`
	LastAccessedAt *time.Time       `json:"last_accessed_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
}
