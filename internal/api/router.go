// Package api assembles the HTTP surface of the scheduling server.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coffeelounge/shiftboard/internal/api/handler"
	"github.com/coffeelounge/shiftboard/internal/api/middleware"
	"github.com/coffeelounge/shiftboard/internal/core/domain"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
)

// Deps bundles everything the router needs. Redis is nil when the schedule
// cache is disabled; JWTSecret empty runs the API unauthenticated.
type Deps struct {
	Employees ports.EmployeeService
	Shifts    ports.ShiftService
	Schedule  ports.ScheduleService
	TimeOff   ports.TimeOffService
	Auth      ports.AuthService
	Audit     handler.AuditDispatcher

	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shiftboard"))

	// --- Handlers ---
	employeeHandler := handler.NewEmployeeHandler(deps.Employees, deps.Audit)
	shiftHandler := handler.NewShiftHandler(deps.Shifts, deps.Audit)
	scheduleHandler := handler.NewScheduleHandler(deps.Schedule)
	timeOffHandler := handler.NewTimeOffHandler(deps.TimeOff, deps.Audit)
	authHandler := handler.NewAuthHandler(deps.Auth)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Board API ---
	apiGroup := e.Group("/api")
	authenticated := deps.JWTSecret != ""
	if authenticated {
		apiGroup.Use(middleware.Auth(deps.JWTSecret))
	}

	apiGroup.GET("/employees/", employeeHandler.List)
	apiGroup.POST("/employees/", employeeHandler.Create)
	apiGroup.GET("/employees/:id", employeeHandler.Get)

	apiGroup.GET("/shifts/", shiftHandler.List)
	apiGroup.POST("/shifts/", shiftHandler.Create)

	apiGroup.GET("/schedule/week/", scheduleHandler.Week)

	apiGroup.GET("/timeoff/", timeOffHandler.List)
	apiGroup.POST("/timeoff/", timeOffHandler.Create)

	// Decisions are manager-only when the server runs authenticated.
	decide := apiGroup.Group("/timeoff")
	if authenticated {
		decide.Use(middleware.RBAC(domain.RoleManager))
	}
	decide.POST("/:id/approve", timeOffHandler.Approve)
	decide.POST("/:id/reject", timeOffHandler.Reject)

	return e
}
