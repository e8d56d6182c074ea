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
	"olive/pkg/task/repository"
)

var t0 = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) repository.TaskRepository {
	t.Helper()
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	r := New(db)
	require.NoError(t, r.Create(context.Background(), &entities.Task{
		ID: "t1", FieldID: "f1", Title: "Prune", Status: entities.TaskPending, AssignedTo: "u1", CreatedAt: t0,
		Evidence: []entities.Evidence{{ID: "e1", Notes: "before", Timestamp: t0}},
	}))
	require.NoError(t, r.Create(context.Background(), &entities.Task{
		ID: "t2", FieldID: "f2", Title: "Spray", Status: entities.TaskPending, CreatedAt: t0.Add(time.Hour),
	}))
	return r
}

func TestUpdateKeepsFieldCreationAndEvidence(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	started := t0.Add(24 * time.Hour)
	cost := 40.0
	require.NoError(t, r.Update(ctx, &entities.Task{
		ID: "t1", FieldID: "elsewhere", Title: "Prune rows 1-5", Status: entities.TaskInProgress,
		ActualStart: &started, Cost: &cost, CreatedAt: t0.AddDate(1, 0, 0),
	}))

	got, err := r.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "f1", got.FieldID)
	assert.True(t, got.CreatedAt.Equal(t0))
	assert.Equal(t, "Prune rows 1-5", got.Title)
	assert.Equal(t, entities.TaskInProgress, got.Status)
	require.NotNil(t, got.ActualStart)
	assert.True(t, got.ActualStart.Equal(started))
	assert.Equal(t, 40.0, got.CostValue())
	// zero values are written too: the assignment was cleared
	assert.Empty(t, got.AssignedTo)
	require.Len(t, got.Evidence, 1)
	assert.Equal(t, "e1", got.Evidence[0].ID)
}

func TestUpdateUnknownTask(t *testing.T) {
	r := newRepo(t)
	err := r.Update(context.Background(), &entities.Task{ID: "nope", Title: "x"})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestAppendEvidence(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	ev := &entities.Evidence{Notes: "after", Timestamp: t0.Add(48 * time.Hour)}
	require.NoError(t, r.AppendEvidence(ctx, "t1", ev))
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "t1", ev.TaskID)

	got, err := r.FindByID(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got.Evidence, 2)
	assert.Equal(t, []string{"before", "after"}, []string{got.Evidence[0].Notes, got.Evidence[1].Notes})

	err = r.AppendEvidence(ctx, "nope", &entities.Evidence{Notes: "lost"})
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestListFilters(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		q    repository.TaskQuery
		want []string
	}{
		{"all", repository.TaskQuery{}, []string{"t1", "t2"}},
		{"by field", repository.TaskQuery{FieldID: "f2"}, []string{"t2"}},
		{"by assignee", repository.TaskQuery{AssignedTo: "u1"}, []string{"t1"}},
		{"no match", repository.TaskQuery{FieldID: "f1", AssignedTo: "u9"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.List(ctx, tt.q)
			require.NoError(t, err)
			var ids []string
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
