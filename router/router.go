package router

import (
	"slices"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"olive/entities"
	analyticsCtrl "olive/pkg/analytics/controller"
	authCtrl "olive/pkg/auth/controller"
	"olive/pkg/auth/token"
	calendarCtrl "olive/pkg/calendar/controller"
	fieldCtrl "olive/pkg/field/controller"
	lifecycleCtrl "olive/pkg/lifecycle/controller"
	"olive/pkg/middleware"
	prefCtrl "olive/pkg/preference/controller"
	reportCtrl "olive/pkg/report/controller"
	taskCtrl "olive/pkg/task/controller"
	userCtrl "olive/pkg/user/controller"
	userRepo "olive/pkg/user/repository"
)

var logger = log.New("router")

type Controllers struct {
	Auth       authCtrl.AuthController
	Field      fieldCtrl.FieldController
	Lifecycle  lifecycleCtrl.LifecycleController
	Task       taskCtrl.TaskController
	Analytics  analyticsCtrl.AnalyticsController
	Calendar   calendarCtrl.CalendarController
	Preference prefCtrl.PreferenceController
	Report     reportCtrl.ReportController
	User       userCtrl.UserController
	Health     interface{ Health(echo.Context) error }
}

type Options struct {
	Tokens      *token.Issuer
	Users       userRepo.UserRepository
	DevLogin    bool
	CORSOrigins []string
	// MediaDir is served under MediaURL when evidence photos are stored locally.
	MediaDir string
	MediaURL string
}

func New(e *echo.Echo, ctl Controllers, opt Options) *echo.Echo {
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator()

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			j := log.JSON{"method": v.Method, "uri": v.URI, "status": v.Status, "latency": v.Latency.String()}
			if v.Error != nil {
				j["error"] = v.Error.Error()
			}
			logger.Infoj(j)
			return nil
		},
	}))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     opt.CORSOrigins,
		AllowCredentials: !slices.Contains(opt.CORSOrigins, "*"),
	}))
	// Evidence photos arrive inline as data URLs.
	e.Use(echoMiddleware.BodyLimit("10M"))

	e.GET("/health", ctl.Health.Health)
	if opt.MediaDir != "" && opt.MediaURL != "" {
		e.Static(opt.MediaURL, opt.MediaDir)
	}

	v1 := e.Group("/api/v1")
	v1.POST("/auth/register", ctl.Auth.Register)
	v1.POST("/auth/login", ctl.Auth.Login)
	if opt.DevLogin {
		logger.Warn("dev login enabled")
		v1.GET("/auth/devlogin", ctl.Auth.DevLogin)
	}

	api := v1.Group("", middleware.Authenticate(opt.Tokens, opt.Users, opt.DevLogin))
	api.GET("/auth/me", ctl.Auth.Me)

	api.GET("/fields", ctl.Field.List)
	api.GET("/fields/geojson", ctl.Field.GeoJSON)
	api.POST("/fields", ctl.Field.Create)
	api.GET("/fields/:id", ctl.Field.Get)
	api.PATCH("/fields/:id", ctl.Field.Update)
	api.PUT("/fields/:id", ctl.Field.Update)
	api.DELETE("/fields/:id", ctl.Field.Delete)
	api.GET("/fields/:id/lifecycle", ctl.Lifecycle.Get)
	api.POST("/fields/:id/lifecycle/progress", ctl.Lifecycle.Progress)

	api.GET("/tasks", ctl.Task.List)
	api.POST("/tasks", ctl.Task.Create)
	api.GET("/tasks/:id", ctl.Task.Get)
	api.PATCH("/tasks/:id", ctl.Task.Update)
	api.PUT("/tasks/:id", ctl.Task.Update)
	api.PATCH("/tasks/:id/status", ctl.Task.UpdateStatus)
	api.PATCH("/tasks/:id/assign", ctl.Task.Assign)
	api.POST("/tasks/:id/evidence", ctl.Task.AddEvidence)

	an := api.Group("/analytics")
	an.GET("/dashboard", ctl.Analytics.Dashboard)
	an.GET("/tasks", ctl.Analytics.TaskMetrics)
	an.GET("/fields", ctl.Analytics.FieldMetrics)
	an.GET("/costs", ctl.Analytics.CostAnalysis)
	an.GET("/completion", ctl.Analytics.CompletionRates)
	an.GET("/status", ctl.Analytics.StatusDistribution)

	api.GET("/calendar/events", ctl.Calendar.Events)

	api.GET("/preferences", ctl.Preference.Get)
	api.PUT("/preferences", ctl.Preference.Update)
	api.PATCH("/preferences", ctl.Preference.Update)
	api.DELETE("/preferences", ctl.Preference.Reset)

	api.GET("/reports/:kind", ctl.Report.Download)

	staff := middleware.RequireRole(entities.RoleAdministrator, entities.RoleFieldOwner, entities.RoleProducer, entities.RoleAgronomist)
	api.GET("/users", ctl.User.List, staff)
	api.GET("/users/:id", ctl.User.Get, staff)

	return e
}
