package repository

import (
	"context"

	"olive/entities"
)

type FieldRepository interface {
	List(ctx context.Context) ([]entities.Field, error)
	FindByID(ctx context.Context, id string) (*entities.Field, error)
	Create(ctx context.Context, f *entities.Field) error
	Update(ctx context.Context, f *entities.Field) error
	Delete(ctx context.Context, id string) error
}
