package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// Pinger is the record store as seen by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCtrl struct {
	db      *gorm.DB
	records Pinger
	source  string
}

// NewHealthCtrl checks db (the preferences database) and the record store. Either may be nil
// when the process runs without it.
func NewHealthCtrl(db *gorm.DB, records Pinger, source string) *HealthCtrl {
	return &HealthCtrl{db: db, records: records, source: source}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	checks := map[string]check{}
	if h.db != nil {
		checks["database"] = pingDB(ctx, h.db)
	}
	if h.records != nil {
		rc := check{OK: true}
		if err := h.records.Ping(ctx); err != nil {
			rc = check{Err: err.Error()}
		}
		checks["records"] = rc
	}

	allOK := true
	for _, ch := range checks {
		allOK = allOK && ch.OK
	}
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"source":     h.source,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}

func pingDB(ctx context.Context, db *gorm.DB) check {
	sqlDB, err := db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
