package repository

import (
	"context"

	"olive/entities"
)

type PreferenceRepository interface {
	// Find returns NotFound when the owner never saved anything under key.
	Find(ctx context.Context, ownerID, key string) (*entities.PreferenceBlob, error)
	Save(ctx context.Context, b *entities.PreferenceBlob) error
	Delete(ctx context.Context, ownerID, key string) error
}
