package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) List(ctx context.Context) ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) FindByID(ctx context.Context, id string) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("field", id)
		}
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) Create(ctx context.Context, f *entities.Field) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fieldRepo) Update(ctx context.Context, f *entities.Field) error {
	res := r.db.WithContext(ctx).Model(&entities.Field{}).Where("id = ?", f.ID).Select("*").Omit("created_at").Updates(f)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("field", f.ID)
	}
	return nil
}

func (r *fieldRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Field{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("field", id)
	}
	return nil
}
