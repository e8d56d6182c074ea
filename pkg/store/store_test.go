package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olive/config"
	"olive/database"
	"olive/pkg/store/fixtures"
	taskRepo "olive/pkg/task/repository"
)

func TestOpenSelectsSource(t *testing.T) {
	s, err := Open(config.AppConfig{RecordSource: config.SourceMemory}, nil)
	require.NoError(t, err)
	assert.Equal(t, config.SourceMemory, s.Source)
	assert.NoError(t, s.Ping(context.Background()))

	_, err = Open(config.AppConfig{RecordSource: config.SourceSQLite}, nil)
	assert.Error(t, err)

	_, err = Open(config.AppConfig{RecordSource: config.SourceRemote}, nil)
	assert.Error(t, err)

	_, err = Open(config.AppConfig{RecordSource: "ftp"}, nil)
	assert.Error(t, err)
}

func TestSeedSQLiteTwice(t *testing.T) {
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	s := FromGorm(db)
	ctx := context.Background()
	d := fixtures.Build(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	n, err := Seed(ctx, s, d)
	require.NoError(t, err)
	assert.Equal(t, len(d.Users)+len(d.Fields)+len(d.Tasks)+len(d.Lifecycles), n)

	n, err = Seed(ctx, s, fixtures.Build(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Zero(t, n)

	tasks, err := s.Tasks.List(ctx, taskRepo.TaskQuery{FieldID: fixtures.KoroneikiID})
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	assert.NoError(t, s.Ping(ctx))
}
