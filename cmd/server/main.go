package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/coffeelounge/shiftboard/internal/api"
	"github.com/coffeelounge/shiftboard/internal/core/ports"
	"github.com/coffeelounge/shiftboard/internal/core/service"
	"github.com/coffeelounge/shiftboard/internal/infrastructure/config"
	"github.com/coffeelounge/shiftboard/internal/infrastructure/db/mongo"
	"github.com/coffeelounge/shiftboard/internal/infrastructure/db/redis"
	"github.com/coffeelounge/shiftboard/internal/infrastructure/queue"
	"github.com/coffeelounge/shiftboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	counters := mongo.NewCounters(db)
	employeeRepo := mongo.NewEmployeeRepository(db, counters)
	shiftRepo := mongo.NewShiftRepository(db, counters)
	timeOffRepo := mongo.NewTimeOffRepository(db, counters)
	auditRepo := mongo.NewAuditRepository(db)
	authRepo := mongo.NewAuthRepository(db)

	if err := mongo.EnsureIndexes(ctx, employeeRepo, shiftRepo, timeOffRepo, auditRepo, authRepo); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Schedule cache (optional) ---
	var rdb *goredis.Client
	var cache ports.ScheduleCache
	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		cache = redis.NewScheduleCache(rdb, cfg.Redis.CacheTTL)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, schedule cache disabled")
	}

	// --- Services ---
	employeeService := service.NewEmployeeService(employeeRepo, logger.Component("employees"))
	shiftService := service.NewShiftService(shiftRepo, employeeRepo, cache, logger.Component("shifts"))
	scheduleService := service.NewScheduleService(shiftRepo, employeeRepo, cache, logger.Component("schedule"))
	timeOffService := service.NewTimeOffService(timeOffRepo, employeeRepo, logger.Component("timeoff"))
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	// --- Audit pipeline ---
	auditService := service.NewAuditService(auditRepo, logger.Component("audit"))
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditService, logger.Component("dispatcher"))
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Employees: employeeService,
		Shifts:    shiftService,
		Schedule:  scheduleService,
		TimeOff:   timeOffService,
		Auth:      authService,
		Audit:     dispatcher,
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
