package postgres

import (
	"time"

	"github.com/carebridge/enrollment-api/internal/core/domain"
)

// Storage records are kept separate from the domain types so gorm tags and
// schema details never leak into the core packages.

type userRecord struct {
	ID           string `gorm:"primaryKey;size:64"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:16;not null"`
	ImageURL     string
	IsActive     bool `gorm:"not null;default:true"`
	IsVerified   bool `gorm:"not null;default:false"`

	VerificationToken     string `gorm:"index;size:64"`
	VerificationExpiresAt *time.Time
	ResetToken            string `gorm:"index;size:64"`
	ResetExpiresAt        *time.Time

	CreatedAt time.Time
}

func (userRecord) TableName() string { return "users" }

type clientRecord struct {
	UserID      string `gorm:"primaryKey;size:64"`
	FirstName   string `gorm:"size:128;not null"`
	LastName    string `gorm:"size:128;not null"`
	Gender      string `gorm:"size:16"`
	DateOfBirth time.Time
	Phone       string `gorm:"size:32"`
	Address     string
}

func (clientRecord) TableName() string { return "clients" }

type doctorRecord struct {
	UserID         string `gorm:"primaryKey;size:64"`
	LicenseNumber  string `gorm:"size:64;not null"`
	Specialization string `gorm:"size:128"`
}

func (doctorRecord) TableName() string { return "doctors" }

type programRecord struct {
	ID          string `gorm:"primaryKey;size:64"`
	Name        string `gorm:"size:255;not null"`
	Description string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (programRecord) TableName() string { return "health_programs" }

// enrollmentRecord uses a composite primary key so the store itself rejects a
// second enrollment of the same user into the same program.
type enrollmentRecord struct {
	UserID         string `gorm:"primaryKey;size:64"`
	ProgramID      string `gorm:"primaryKey;size:64;index"`
	Status         string `gorm:"size:16;not null"`
	Progress       int    `gorm:"not null;default:0"`
	Notes          string
	EnrolledAt     time.Time
	LastAccessedAt *time.Time
	CompletedAt    *time.Time
}

func (enrollmentRecord) TableName() string { return "enrollments" }

func toUserRecord(u *domain.User) *userRecord {
	return &userRecord{
		ID:                    u.ID,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Role:                  u.Role,
		ImageURL:              u.ImageURL,
		IsActive:              u.IsActive,
		IsVerified:            u.IsVerified,
		VerificationToken:     u.VerificationToken,
		VerificationExpiresAt: u.VerificationExpiresAt,
		ResetToken:            u.ResetToken,
		ResetExpiresAt:        u.ResetExpiresAt,
		CreatedAt:             u.CreatedAt,
	}
}

func (r *userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:                    r.ID,
		Email:                 r.Email,
		PasswordHash:          r.PasswordHash,
		Role:                  r.Role,
		ImageURL:              r.ImageURL,
		IsActive:              r.IsActive,
		IsVerified:            r.IsVerified,
		VerificationToken:     r.VerificationToken,
		VerificationExpiresAt: r.VerificationExpiresAt,
		ResetToken:            r.ResetToken,
		ResetExpiresAt:        r.ResetExpiresAt,
		CreatedAt:             r.CreatedAt,
	}
}

func toClientRecord(p *domain.ClientProfile) *clientRecord {
	return &clientRecord{
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Gender:      p.Gender,
		DateOfBirth: p.DateOfBirth,
		Phone:       p.Phone,
		Address:     p.Address,
	}
}

func (r *clientRecord) toDomain() *domain.ClientProfile {
	return &domain.ClientProfile{
		UserID:      r.UserID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Gender:      r.Gender,
		DateOfBirth: r.DateOfBirth,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}

func toDoctorRecord(p *domain.DoctorProfile) *doctorRecord {
	return &doctorRecord{
		UserID:         p.UserID,
		LicenseNumber:  p.LicenseNumber,
		Specialization: p.Specialization,
	}
}

func (r *doctorRecord) toDomain() *domain.DoctorProfile {
	return &domain.DoctorProfile{
		UserID:         r.UserID,
		LicenseNumber:  r.LicenseNumber,
		Specialization: r.Specialization,
	}
}

func toProgramRecord(p *domain.Program) *programRecord {
	return &programRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *programRecord) toDomain() *domain.Program {
	return &domain.Program{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
	}
}

func toEnrollmentRecord(e *domain.Enrollment) *enrollmentRecord {
	return &enrollmentRecord{
		UserID:         e.UserID,
		ProgramID:      e.ProgramID,
		Status:         string(e.Status),
		Progress:       e.Progress,
		Notes:          e.Notes,
		EnrolledAt:     e.EnrolledAt,
		LastAccessedAt: e.LastAccessedAt,
		CompletedAt:    e.CompletedAt,
	}
}

func (r *enrollmentRecord) toDomain() *domain.Enrollment {
	return &domain.Enrollment{
		UserID:         r.UserID,
		ProgramID:      r.ProgramID,
		Status:         domain.EnrollmentStatus(r.Status),
		Progress:       r.Progress,
		Notes:          r.Notes,
		EnrolledAt:     r.EnrolledAt,
		LastAccessedAt: r.LastAccessedAt,
		CompletedAt:    r.CompletedAt,
	}
}
