package handler

import "time"

type createProgramRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

type updateProgramRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type programResponse struct {
	ProgramID   string    `json:"program_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type programListResponse struct {
	Data []programResponse `json:"data"`
}
