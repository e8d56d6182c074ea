package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olive/database"
	"olive/entities"
	"olive/pkg/auth/token"
	"olive/pkg/store"
	"olive/pkg/store/fixtures"
	"olive/pkg/store/memory"

	analyticsCtrlImp "olive/pkg/analytics/controllerImp"
	analyticsSvcImp "olive/pkg/analytics/serviceImp"
	authCtrlImp "olive/pkg/auth/controllerImp"
	authSvcImp "olive/pkg/auth/serviceImp"
	calendarCtrlImp "olive/pkg/calendar/controllerImp"
	calendarSvcImp "olive/pkg/calendar/serviceImp"
	fieldCtrlImp "olive/pkg/field/controllerImp"
	fieldSvcImp "olive/pkg/field/serviceImp"
	healthCtrlImp "olive/pkg/health/controllerImp"
	lifecycleCtrlImp "olive/pkg/lifecycle/controllerImp"
	lifecycleSvcImp "olive/pkg/lifecycle/serviceImp"
	prefCtrlImp "olive/pkg/preference/controllerImp"
	prefRepoImp "olive/pkg/preference/repositoryImp"
	prefSvcImp "olive/pkg/preference/serviceImp"
	reportCtrlImp "olive/pkg/report/controllerImp"
	reportSvcImp "olive/pkg/report/serviceImp"
	taskCtrlImp "olive/pkg/task/controllerImp"
	taskSvcImp "olive/pkg/task/serviceImp"
	userCtrlImp "olive/pkg/user/controllerImp"
)

func newTestServer(t *testing.T, devLogin bool) *echo.Echo {
	t.Helper()
	db, err := database.OpenSQLite(database.MemoryDSN)
	require.NoError(t, err)
	st := store.FromMemory(memory.NewWithFixtures(time.Now()))
	issuer := token.NewIssuer("test-secret", time.Hour)

	fSvc := fieldSvcImp.NewFieldService(st.Fields, st.Lifecycles)
	tSvc := taskSvcImp.NewTaskService(st.Tasks, st.Fields, st.Users, nil, time.Now)
	aSvc := analyticsSvcImp.NewAnalyticsService(st.Fields, st.Tasks)
	ctl := Controllers{
		Auth:       authCtrlImp.NewAuthController(authSvcImp.NewAuthService(st.Users, issuer), st.Users),
		Field:      fieldCtrlImp.New(fSvc),
		Lifecycle:  lifecycleCtrlImp.New(lifecycleSvcImp.NewLifecycleService(st.Lifecycles, st.Fields, time.Now)),
		Task:       taskCtrlImp.New(tSvc),
		Analytics:  analyticsCtrlImp.New(aSvc),
		Calendar:   calendarCtrlImp.New(calendarSvcImp.NewCalendarService(st.Fields, st.Tasks, time.Now)),
		Preference: prefCtrlImp.New(prefSvcImp.NewPreferenceService(prefRepoImp.New(db))),
		Report:     reportCtrlImp.New(reportSvcImp.NewReportService(aSvc, fSvc, tSvc)),
		User:       userCtrlImp.New(st.Users),
		Health:     healthCtrlImp.NewHealthCtrl(db, st, st.Source),
	}
	return New(echo.New(), ctl, Options{
		Tokens:      issuer,
		Users:       st.Users,
		DevLogin:    devLogin,
		CORSOrigins: []string{"*"},
	})
}

func call(e *echo.Echo, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := call(e, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"`+email+`","password":"`+fixtures.DemoPassword+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var s struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	return s.Token
}

func TestPublicRoutes(t *testing.T) {
	e := newTestServer(t, false)

	assert.Equal(t, http.StatusOK, call(e, http.MethodGet, "/health", "", "").Code)

	rec := call(e, http.MethodGet, "/api/v1/fields", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = call(e, http.MethodPost, "/api/v1/auth/login", "", `{"email":"owner@olive.example","password":"nope"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)

	// not routed without ENABLE_DEV_LOGIN
	assert.NotEqual(t, http.StatusOK, call(e, http.MethodGet, "/api/v1/auth/devlogin?uid=u-owner", "", "").Code)
}

func TestOwnerFlow(t *testing.T) {
	e := newTestServer(t, false)
	tok := login(t, e, "owner@olive.example")

	rec := call(e, http.MethodGet, "/api/v1/fields", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fields []entities.Field
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Len(t, fields, 2)

	rec = call(e, http.MethodGet, "/api/v1/fields/"+fixtures.ValleyID, tok, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = call(e, http.MethodGet, "/api/v1/fields/geojson", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FeatureCollection")

	rec = call(e, http.MethodPost, "/api/v1/fields/"+fixtures.TerraceID+"/lifecycle/progress", tok, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var l entities.Lifecycle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	assert.Equal(t, entities.LifecycleHigh, l.CurrentYear)

	rec = call(e, http.MethodGet, "/api/v1/analytics/dashboard", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"taskMetrics"`)

	rec = call(e, http.MethodGet, "/api/v1/reports/field-summary?format=csv", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.Contains(t, rec.Body.String(), "Hillside Terrace")

	rec = call(e, http.MethodGet, "/api/v1/reports/weather", tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(e, http.MethodPatch, "/api/v1/preferences", tok, `{"theme":"dark"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = call(e, http.MethodGet, "/api/v1/preferences", tok, "")
	assert.Contains(t, rec.Body.String(), `"theme":"dark"`)
}

func TestProviderRestrictions(t *testing.T) {
	e := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.AddCookie(&http.Cookie{Name: "OLIVE_UID", Value: fixtures.ProviderID})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	tok := login(t, e, "provider@olive.example")
	rec = call(e, http.MethodGet, "/api/v1/tasks", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []entities.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	for _, task := range tasks {
		assert.Equal(t, fixtures.ProviderID, task.AssignedTo)
	}
	assert.Len(t, tasks, 2)

	rec = call(e, http.MethodPatch, "/api/v1/tasks/t-fert-north/status", tok, `{"status":"completed"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
