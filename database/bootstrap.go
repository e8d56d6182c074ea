// database/bootstrap.go
package database

import (
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"olive/entities"
)

// MemoryDSN opens a private in-memory database; used by tests and the memory record source.
const MemoryDSN = ":memory:"

var dbLog = log.New("db")

// OpenSQLite opens path and migrates every table the service owns.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		// misses are expected (existence checks, lazily created rows) and map to NOT_FOUND
		Logger: logger.New(dbLog, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if path == MemoryDSN {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.Task{},
		&entities.Evidence{},
		&entities.User{},
		&entities.Lifecycle{},
		&entities.PreferenceBlob{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	dbLog.Infof("sqlite ready at %s", path)
	return db, nil
}
