// Package store selects the record store implementation once at process start.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"olive/config"
	fieldRepo "olive/pkg/field/repository"
	fieldRepoImp "olive/pkg/field/repositoryImp"
	lifecycleRepo "olive/pkg/lifecycle/repository"
	lifecycleRepoImp "olive/pkg/lifecycle/repositoryImp"
	"olive/pkg/store/fixtures"
	"olive/pkg/store/memory"
	"olive/pkg/store/remote"
	taskRepo "olive/pkg/task/repository"
	taskRepoImp "olive/pkg/task/repositoryImp"
	userRepo "olive/pkg/user/repository"
	userRepoImp "olive/pkg/user/repositoryImp"
)

var logger = log.New("store")

// Store bundles the four repositories of one record source.
type Store struct {
	Source     string
	Fields     fieldRepo.FieldRepository
	Tasks      taskRepo.TaskRepository
	Users      userRepo.UserRepository
	Lifecycles lifecycleRepo.LifecycleRepository
	ping       func(context.Context) error
}

func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Open builds the store named by cfg.RecordSource. db is only used by the sqlite source.
func Open(cfg config.AppConfig, db *gorm.DB) (*Store, error) {
	switch cfg.RecordSource {
	case config.SourceMemory:
		logger.Info("record source: in-memory demo fixtures")
		return FromMemory(memory.NewWithFixtures(time.Now())), nil
	case config.SourceSQLite:
		if db == nil {
			return nil, fmt.Errorf("sqlite record source needs a database")
		}
		logger.Infof("record source: sqlite %s", cfg.DBPath)
		return FromGorm(db), nil
	case config.SourceRemote:
		if cfg.RemoteBaseURL == "" {
			return nil, fmt.Errorf("REMOTE_BASE_URL is required for the remote record source")
		}
		logger.Infof("record source: remote %s", cfg.RemoteBaseURL)
		c := remote.New(cfg.RemoteBaseURL, cfg.RemoteToken, time.Duration(cfg.RemoteTimeout)*time.Second)
		return &Store{
			Source:     config.SourceRemote,
			Fields:     c.Fields(),
			Tasks:      c.Tasks(),
			Users:      c.Users(),
			Lifecycles: c.Lifecycles(),
			ping:       c.Ping,
		}, nil
	}
	return nil, fmt.Errorf("unknown RECORD_SOURCE %q", cfg.RecordSource)
}

func FromMemory(m *memory.Store) *Store {
	return &Store{
		Source:     config.SourceMemory,
		Fields:     m.Fields(),
		Tasks:      m.Tasks(),
		Users:      m.Users(),
		Lifecycles: m.Lifecycles(),
		ping:       m.Ping,
	}
}

func FromGorm(db *gorm.DB) *Store {
	return &Store{
		Source:     config.SourceSQLite,
		Fields:     fieldRepoImp.New(db),
		Tasks:      taskRepoImp.New(db),
		Users:      userRepoImp.New(db),
		Lifecycles: lifecycleRepoImp.New(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

// Seed writes d through s. Records that already exist are skipped, so seeding twice is harmless.
func Seed(ctx context.Context, s *Store, d fixtures.Dataset) (int, error) {
	n := 0
	for i := range d.Users {
		if _, err := s.Users.FindByID(ctx, d.Users[i].ID); err == nil {
			continue
		}
		if err := s.Users.Create(ctx, &d.Users[i]); err != nil {
			return n, fmt.Errorf("seed user %s: %w", d.Users[i].ID, err)
		}
		n++
	}
	for i := range d.Fields {
		if _, err := s.Fields.FindByID(ctx, d.Fields[i].ID); err == nil {
			continue
		}
		if err := s.Fields.Create(ctx, &d.Fields[i]); err != nil {
			return n, fmt.Errorf("seed field %s: %w", d.Fields[i].ID, err)
		}
		n++
	}
	for i := range d.Tasks {
		if _, err := s.Tasks.FindByID(ctx, d.Tasks[i].ID); err == nil {
			continue
		}
		if err := s.Tasks.Create(ctx, &d.Tasks[i]); err != nil {
			return n, fmt.Errorf("seed task %s: %w", d.Tasks[i].ID, err)
		}
		n++
	}
	for i := range d.Lifecycles {
		if _, err := s.Lifecycles.FindByFieldID(ctx, d.Lifecycles[i].FieldID); err == nil {
			continue
		}
		if err := s.Lifecycles.Save(ctx, &d.Lifecycles[i]); err != nil {
			return n, fmt.Errorf("seed lifecycle %s: %w", d.Lifecycles[i].FieldID, err)
		}
		n++
	}
	return n, nil
}
