package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/preference/repository"
)

type prefRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PreferenceRepository { return &prefRepo{db} }

func (r *prefRepo) Find(ctx context.Context, ownerID, key string) (*entities.PreferenceBlob, error) {
	var b entities.PreferenceBlob
	err := r.db.WithContext(ctx).Where("owner_id = ? AND pref_key = ?", ownerID, key).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("preferences", ownerID)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *prefRepo) Save(ctx context.Context, b *entities.PreferenceBlob) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}, {Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(b).Error
}

func (r *prefRepo) Delete(ctx context.Context, ownerID, key string) error {
	return r.db.WithContext(ctx).Where("owner_id = ? AND pref_key = ?", ownerID, key).Delete(&entities.PreferenceBlob{}).Error
}
