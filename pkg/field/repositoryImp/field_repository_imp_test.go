package repositoryImp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olive/database"
	"olive/entities"
	"olive/pkg/apperr"
)

func TestFieldWrites(t *testing.T) {
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	r := New(db)
	ctx := context.Background()
	created := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	f := &entities.Field{OwnerID: "u1", Name: "Grove", Area: 2, CurrentLifecycleYear: entities.LifecycleLow, CreatedAt: created}
	require.NoError(t, r.Create(ctx, f))
	require.NotEmpty(t, f.ID)

	upd := *f
	upd.Name = "Upper grove"
	upd.Irrigation = true
	upd.CurrentLifecycleYear = entities.LifecycleHigh
	upd.CreatedAt = created.AddDate(0, 6, 0)
	require.NoError(t, r.Update(ctx, &upd))

	got, err := r.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Upper grove", got.Name)
	assert.True(t, got.Irrigation)
	assert.Equal(t, entities.LifecycleHigh, got.CurrentLifecycleYear)
	assert.True(t, got.CreatedAt.Equal(created))

	err = r.Update(ctx, &entities.Field{ID: "nope", Name: "x"})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	require.NoError(t, r.Delete(ctx, f.ID))
	_, err = r.FindByID(ctx, f.ID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.True(t, apperr.Is(r.Delete(ctx, f.ID), apperr.CodeNotFound))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
