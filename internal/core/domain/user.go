package domain

import "time"

const (
	RoleClient = "client"
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	return r == RoleClient || r == RoleDoctor || r == RoleAdmin
}

// User is the login-capable account record. A verification or reset token and
// its expiry are always set and cleared together.
type User struct {
	ID           string `json:"user_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	ImageURL     string `json:"image_url,omitempty"`
	IsActive     bool   `json:"is_active"`
	IsVerified   bool   `json:"is_verified"`

	VerificationToken     string     `json:"-"`
	VerificationExpiresAt *time.Time `json:"-"`
	ResetToken            string     `json:"-"`
	ResetExpiresAt        *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// ClientProfile extends a client-role account with personal details.
type ClientProfile struct {
	UserID      string    `json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
}

// DoctorProfile extends a doctor-role account with licensing details.
type DoctorProfile struct {
	UserID         string `json:"user_id"`
	LicenseNumber  string `json:"license_number"`
	Specialization string `json:"specialization"`
}
