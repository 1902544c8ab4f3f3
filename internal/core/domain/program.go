package domain

import "time"

// Program is a catalog entry users can enroll into.
type Program struct {
	ID          string    `json:"program_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
