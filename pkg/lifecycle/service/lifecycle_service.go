package service

import (
	"context"
	"errors"

	"olive/entities"
)

// ErrPartialProgression means the lifecycle record moved on but its field still shows the
// previous year. The two records are written one after the other, without a transaction.
var ErrPartialProgression = errors.New("lifecycle progressed but field year not updated")

type LifecycleService interface {
	// Get returns the field's lifecycle, creating it from the field on first access.
	Get(ctx context.Context, actor *entities.User, fieldID string) (*entities.Lifecycle, error)
	// Progress flips low/high and stamps the progression date.
	Progress(ctx context.Context, actor *entities.User, fieldID string) (*entities.Lifecycle, error)
}
