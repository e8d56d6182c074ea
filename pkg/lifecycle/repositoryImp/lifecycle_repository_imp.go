package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/lifecycle/repository"
)

type lifecycleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LifecycleRepository { return &lifecycleRepo{db} }

func (r *lifecycleRepo) FindByFieldID(ctx context.Context, fieldID string) (*entities.Lifecycle, error) {
	var l entities.Lifecycle
	if err := r.db.WithContext(ctx).Where("field_id = ?", fieldID).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("lifecycle", fieldID)
		}
		return nil, err
	}
	return &l, nil
}

func (r *lifecycleRepo) Save(ctx context.Context, l *entities.Lifecycle) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "field_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"current_year", "cycle_start_date", "last_progression_date", "updated_at"}),
	}).Create(l).Error
}

func (r *lifecycleRepo) DeleteByFieldID(ctx context.Context, fieldID string) error {
	return r.db.WithContext(ctx).Where("field_id = ?", fieldID).Delete(&entities.Lifecycle{}).Error
}
