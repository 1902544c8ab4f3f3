package handler

import "time"

// errorResponse documents the standard error envelope rendered by the central
// HTTP error handler on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	FirstName   string `json:"first_name"    validate:"required"`
	LastName    string `json:"last_name"     validate:"required"`
	Email       string `json:"email"         validate:"required,email"`
	Password    string `json:"password"      validate:"required,min=8"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Gender      string `json:"gender"        validate:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ImageURL    string `json:"image_url"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type requestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type resendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Response types ---
// Transport-owned so the JSON contract is not coupled to internal types.

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type clientProfileResponse struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

type doctorProfileResponse struct {
	LicenseNumber  string `json:"license_number"`
	Specialization string `json:"specialization"`
}

type userResponse struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	ImageURL   string    `json:"image_url,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	Profile    any       `json:"profile,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
