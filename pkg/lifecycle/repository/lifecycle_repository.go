package repository

import (
	"context"

	"olive/entities"
)

type LifecycleRepository interface {
	FindByFieldID(ctx context.Context, fieldID string) (*entities.Lifecycle, error)
	// Save inserts or replaces the lifecycle of its field.
	Save(ctx context.Context, l *entities.Lifecycle) error
	DeleteByFieldID(ctx context.Context, fieldID string) error
}

// Progressor is implemented by stores whose backend progresses a lifecycle itself, moving the
// lifecycle and its field in one call. Those stores also initialise lifecycles on their side.
type Progressor interface {
	Progress(ctx context.Context, fieldID string) (*entities.Lifecycle, error)
}
