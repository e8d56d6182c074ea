package controllerImp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olive/database"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)

	tests := []struct {
		name    string
		records Pinger
		status  int
	}{
		{"all up", pingFunc(func(context.Context) error { return nil }), http.StatusOK},
		{"records down", pingFunc(func(context.Context) error { return errors.New("upstream 502") }), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, NewHealthCtrl(db, tt.records, "remote").Health(c))
			assert.Equal(t, tt.status, rec.Code)

			var body struct {
				Checks map[string]check `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Checks["database"].OK)
			assert.Equal(t, tt.status == http.StatusOK, body.Checks["records"].OK)
		})
	}
}
