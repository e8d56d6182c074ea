package repositoryImp

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) List(ctx context.Context) ([]entities.User, error) {
	var out []entities.User
	if err := r.db.WithContext(ctx).Order("email ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.first(ctx, "user", id, "id = ?", id)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.first(ctx, "user", email, "lower(email) = ?", email)
}

func (r *userRepo) first(ctx context.Context, resource, key, query string, args ...any) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(resource, key)
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *entities.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}
