package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olive/entities"
	"olive/pkg/apperr"
	"olive/pkg/store/fixtures"
	taskRepo "olive/pkg/task/repository"
)

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := NewWithFixtures(time.Now())
	b := NewWithFixtures(time.Now())

	require.NoError(t, a.Fields().Delete(ctx, fixtures.TerraceID))

	_, err := a.Fields().FindByID(ctx, fixtures.TerraceID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	_, err = b.Fields().FindByID(ctx, fixtures.TerraceID)
	assert.NoError(t, err)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := NewWithFixtures(time.Now())

	got, err := s.Tasks().FindByID(ctx, "t-prune-north")
	require.NoError(t, err)
	*got.Cost = 1
	got.Evidence[0].Notes = "tampered"
	got.Title = "tampered"

	again, err := s.Tasks().FindByID(ctx, "t-prune-north")
	require.NoError(t, err)
	assert.Equal(t, 640.0, *again.Cost)
	assert.Equal(t, "Winter pruning, rows 1-20", again.Title)
	assert.NotEqual(t, "tampered", again.Evidence[0].Notes)
}

func TestTaskListQuery(t *testing.T) {
	ctx := context.Background()
	s := NewWithFixtures(time.Now())

	all, err := s.Tasks().List(ctx, taskRepo.TaskQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	byField, err := s.Tasks().List(ctx, taskRepo.TaskQuery{FieldID: fixtures.KoroneikiID})
	require.NoError(t, err)
	assert.Len(t, byField, 3)

	both, err := s.Tasks().List(ctx, taskRepo.TaskQuery{FieldID: fixtures.KoroneikiID, AssignedTo: fixtures.ProviderID})
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestTaskUpdateKeepsImmutableParts(t *testing.T) {
	ctx := context.Background()
	s := NewWithFixtures(time.Now())

	cur, err := s.Tasks().FindByID(ctx, "t-prune-north")
	require.NoError(t, err)
	cur.FieldID = fixtures.ValleyID
	cur.Evidence = nil
	require.NoError(t, s.Tasks().Update(ctx, cur))

	got, err := s.Tasks().FindByID(ctx, "t-prune-north")
	require.NoError(t, err)
	assert.Equal(t, fixtures.KoroneikiID, got.FieldID)
	assert.Len(t, got.Evidence, 1)
}

func TestAppendEvidence(t *testing.T) {
	ctx := context.Background()
	s := NewWithFixtures(time.Now())

	ev := &entities.Evidence{Notes: "second visit", Timestamp: time.Now()}
	require.NoError(t, s.Tasks().AppendEvidence(ctx, "t-prune-north", ev))
	assert.NotEmpty(t, ev.ID)

	got, err := s.Tasks().FindByID(ctx, "t-prune-north")
	require.NoError(t, err)
	require.Len(t, got.Evidence, 2)
	assert.Equal(t, "second visit", got.Evidence[1].Notes)

	err = s.Tasks().AppendEvidence(ctx, "missing", &entities.Evidence{Notes: "x"})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestUsersAndLifecycles(t *testing.T) {
	ctx := context.Background()
	s := NewWithFixtures(time.Now())

	u, err := s.Users().FindByEmail(ctx, " OWNER@olive.example ")
	require.NoError(t, err)
	assert.Equal(t, fixtures.OwnerID, u.ID)

	err = s.Users().Create(ctx, &entities.User{Email: "owner@olive.example"})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	l := &entities.Lifecycle{FieldID: fixtures.KoroneikiID, CurrentYear: entities.LifecycleLow}
	require.NoError(t, s.Lifecycles().Save(ctx, l))
	assert.Equal(t, "l-koroneiki", l.ID)

	got, err := s.Lifecycles().FindByFieldID(ctx, fixtures.KoroneikiID)
	require.NoError(t, err)
	assert.Equal(t, entities.LifecycleLow, got.CurrentYear)

	require.NoError(t, s.Lifecycles().DeleteByFieldID(ctx, fixtures.KoroneikiID))
	_, err = s.Lifecycles().FindByFieldID(ctx, fixtures.KoroneikiID)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
