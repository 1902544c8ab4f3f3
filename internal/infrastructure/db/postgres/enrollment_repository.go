package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

var _ ports.EnrollmentRepository = (*EnrollmentRepository)(nil)

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	err := r.db.WithContext(ctx).Create(toEnrollmentRecord(e)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyEnrolled
	}
	return err
}

func (r *EnrollmentRepository) Find(ctx context.Context, userID, programID string) (*domain.Enrollment, error) {
	var rec enrollmentRecord
	err := r.db.WithContext(ctx).
		First(&rec, "user_id = ? AND program_id = ?", userID, programID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *EnrollmentRepository) Update(ctx context.Context, e *domain.Enrollment) error {
	res := r.db.WithContext(ctx).
		Model(&enrollmentRecord{}).
		Where("user_id = ? AND program_id = ?", e.UserID, e.ProgramID).
		Select("*").Omit("user_id", "program_id", "enrolled_at").
		Updates(toEnrollmentRecord(e))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, userID, programID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND program_id = ?", userID, programID).
		Delete(&enrollmentRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (r *EnrollmentRepository) ListAll(ctx context.Context) ([]*domain.Enrollment, error) {
	var recs []enrollmentRecord
	if err := r.db.WithContext(ctx).Order("enrolled_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainEnrollments(recs), nil
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	var recs []enrollmentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toDomainEnrollments(recs), nil
}

func (r *EnrollmentRepository) ListByProgram(ctx context.Context, programID string) ([]*domain.Enrollment, error) {
	var recs []enrollmentRecord
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("enrolled_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toDomainEnrollments(recs), nil
}

func toDomainEnrollments(recs []enrollmentRecord) []*domain.Enrollment {
	enrollments := make([]*domain.Enrollment, 0, len(recs))
	for i := range recs {
		enrollments = append(enrollments, recs[i].toDomain())
	}
	return enrollments
}
