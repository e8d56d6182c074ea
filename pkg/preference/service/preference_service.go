package service

import (
	"context"
	"encoding/json"

	"olive/entities"
)

type PreferenceService interface {
	// Get merges the stored document over the defaults.
	Get(ctx context.Context, ownerID string) (entities.Preferences, error)
	// Update merges patch into the stored document and returns the new merged value.
	Update(ctx context.Context, ownerID string, patch json.RawMessage) (entities.Preferences, error)
	// Reset forgets every stored override.
	Reset(ctx context.Context, ownerID string) (entities.Preferences, error)
}
