package repository

import (
	"context"

	"olive/entities"
)

type UserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, u *entities.User) error
}
