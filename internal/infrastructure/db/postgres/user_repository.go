package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

type UserRepository struct {
	db *gorm.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateWithClientProfile(ctx context.Context, user *domain.User, profile *domain.ClientProfile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(toUserRecord(user)).Error; err != nil {
			return err
		}
		return tx.Create(toClientRecord(profile)).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailExists
	}
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).First(&rec, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) FindByVerificationToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).
		First(&rec, "verification_token = ? AND verification_expires_at > ?", token, now).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).
		First(&rec, "reset_token = ? AND reset_expires_at > ?", token, now).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	// Save with a full record so cleared tokens and flipped flags are written
	// back even when they are zero values.
	err := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", user.ID).
		Select("*").Omit("id", "created_at").
		Updates(toUserRecord(user)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailExists
	}
	return err
}

func (r *UserRepository) PromoteToDoctor(ctx context.Context, userID string, profile *domain.DoctorProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userRecord{}).Where("id = ?", userID).Update("role", domain.RoleDoctor)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return tx.Create(toDoctorRecord(profile)).Error
	})
}

func (r *UserRepository) ClientProfile(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	var rec clientRecord
	err := r.db.WithContext(ctx).First(&rec, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) DoctorProfile(ctx context.Context, userID string) (*domain.DoctorProfile, error) {
	var rec doctorRecord
	err := r.db.WithContext(ctx).First(&rec, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *UserRepository) UpdateClientProfile(ctx context.Context, profile *domain.ClientProfile) error {
	res := r.db.WithContext(ctx).
		Model(&clientRecord{}).
		Where("user_id = ?", profile.UserID).
		Select("*").Omit("user_id").
		Updates(toClientRecord(profile))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateDoctorProfile(ctx context.Context, profile *domain.DoctorProfile) error {
	res := r.db.WithContext(ctx).
		Model(&doctorRecord{}).
		Where("user_id = ?", profile.UserID).
		Select("*").Omit("user_id").
		Updates(toDoctorRecord(profile))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Search(ctx context.Context, query, role string) ([]*domain.User, error) {
	q := r.db.WithContext(ctx).Model(&userRecord{})
	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("email ILIKE ? OR id ILIKE ?", pattern, pattern)
	}
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var recs []userRecord
	if err := q.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainUsers(recs), nil
}

func (r *UserRepository) List(ctx context.Context, limit int) ([]*domain.User, error) {
	var recs []userRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return toDomainUsers(recs), nil
}

func toDomainUsers(recs []userRecord) []*domain.User {
	users := make([]*domain.User, 0, len(recs))
	for i := range recs {
		users = append(users, recs[i].toDomain())
	}
	return users
}
