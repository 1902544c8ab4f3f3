package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/carebridge/enrollment-api/internal/core/domain"
	"github.com/carebridge/enrollment-api/internal/core/ports"
)

type ProgramRepository struct {
	db *gorm.DB
}

var _ ports.ProgramRepository = (*ProgramRepository)(nil)

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(ctx context.Context, p *domain.Program) error {
	return r.db.WithContext(ctx).Create(toProgramRecord(p)).Error
}

func (r *ProgramRepository) FindByID(ctx context.Context, programID string) (*domain.Program, error) {
	var rec programRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", programID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProgramNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *ProgramRepository) FindAll(ctx context.Context) ([]*domain.Program, error) {
	var recs []programRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	programs := make([]*domain.Program, 0, len(recs))
	for i := range recs {
		programs = append(programs, recs[i].toDomain())
	}
	return programs, nil
}

func (r *ProgramRepository) Update(ctx context.Context, p *domain.Program) error {
	res := r.db.WithContext(ctx).
		Model(&programRecord{}).
		Where("id = ?", p.ID).
		Select("*").Omit("id", "created_at").
		Updates(toProgramRecord(p))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProgramNotFound
	}
	return nil
}

// Delete removes the program and its enrollments.
func (r *ProgramRepository) Delete(ctx context.Context, programID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("program_id = ?", programID).Delete(&enrollmentRecord{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", programID).Delete(&programRecord{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrProgramNotFound
		}
		return nil
	})
}
