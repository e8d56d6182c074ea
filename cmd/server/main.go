package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"olive/config"
	"olive/database"
	"olive/router"

	"olive/pkg/auth/token"
	"olive/pkg/media"
	"olive/pkg/store"

	// Auth
	authCtrlImp "olive/pkg/auth/controllerImp"
	authSvcImp "olive/pkg/auth/serviceImp"

	// Fields + lifecycle
	fieldCtrlImp "olive/pkg/field/controllerImp"
	fieldSvcImp "olive/pkg/field/serviceImp"
	lifecycleCtrlImp "olive/pkg/lifecycle/controllerImp"
	lifecycleSvcImp "olive/pkg/lifecycle/serviceImp"

	// Tasks
	taskCtrlImp "olive/pkg/task/controllerImp"
	taskSvcImp "olive/pkg/task/serviceImp"

	// Aggregations
	analyticsCtrlImp "olive/pkg/analytics/controllerImp"
	analyticsSvcImp "olive/pkg/analytics/serviceImp"
	calendarCtrlImp "olive/pkg/calendar/controllerImp"
	calendarSvcImp "olive/pkg/calendar/serviceImp"
	reportCtrlImp "olive/pkg/report/controllerImp"
	reportSvcImp "olive/pkg/report/serviceImp"

	// Preferences, users, health
	healthCtrlImp "olive/pkg/health/controllerImp"
	prefCtrlImp "olive/pkg/preference/controllerImp"
	prefRepoImp "olive/pkg/preference/repositoryImp"
	prefSvcImp "olive/pkg/preference/serviceImp"
	userCtrlImp "olive/pkg/user/controllerImp"
)

var logger = log.New("main")

func main() {
	// 1) Config
	cfg := config.Load()
	log.SetLevel(cfg.Level())
	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		logger.Warnf("timezone %q: %v", cfg.Timezone, err)
	}

	// 2) SQLite holds preferences, and the records too when RECORD_SOURCE=sqlite
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open sqlite: %v", err)
	}

	// 3) Record store
	st, err := store.Open(cfg, db)
	if err != nil {
		logger.Fatalf("record store: %v", err)
	}

	// 4) Media
	ctx := context.Background()
	photos, err := media.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("media store: %v", err)
	}

	// 5) Services
	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	fSvc := fieldSvcImp.NewFieldService(st.Fields, st.Lifecycles)
	tSvc := taskSvcImp.NewTaskService(st.Tasks, st.Fields, st.Users, photos, time.Now)
	aSvc := analyticsSvcImp.NewAnalyticsService(st.Fields, st.Tasks)

	ctl := router.Controllers{
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
	opt := router.Options{
		Tokens:      issuer,
		Users:       st.Users,
		DevLogin:    cfg.EnableDevLogin,
		CORSOrigins: cfg.CORSOrigins,
	}
	if cfg.GCSBucket == "" {
		opt.MediaDir, opt.MediaURL = cfg.MediaDir, cfg.MediaBaseURL
	}

	// 6) Router
	e := router.New(echo.New(), ctl, opt)

	// 7) Start
	logger.Infof("listening on :%s (records: %s)", cfg.Port, st.Source)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
