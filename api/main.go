package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/inventory-analytics/internal/alerts"
	"github.com/rogerio-castellano/inventory-analytics/internal/analytics"
	"github.com/rogerio-castellano/inventory-analytics/internal/config"
	"github.com/rogerio-castellano/inventory-analytics/internal/db"
	"github.com/rogerio-castellano/inventory-analytics/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-analytics/internal/http/router"
	"github.com/rogerio-castellano/inventory-analytics/internal/logger"
	"github.com/rogerio-castellano/inventory-analytics/internal/redissvc"
	"github.com/rogerio-castellano/inventory-analytics/internal/repo"
	"github.com/rogerio-castellano/inventory-analytics/internal/scheduler"
	"go.uber.org/zap"
)

// @title Inventory Analytics API
// @version 1.0
// @description REST API for inventory products, stock movements and usage and restock analytics.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo.SetQueryTimeout(cfg.Database.QueryTimeout)

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.EnsureSchema(ctx, database); err != nil {
		log.Fatal("could not create schema", zap.Error(err))
	}

	productRepo := repo.NewPostgresProductRepository(database)
	handlers.SetProductRepo(productRepo)
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetLogger(log)

	opts := []analytics.Option{analytics.WithLogger(log)}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisService := redissvc.NewRedisService(rdb, "inventory:")
		defer redisService.Close()

		if err := redisService.Ping(ctx); err != nil {
			log.Warn("redis unavailable, rankings are served uncached", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			opts = append(opts, analytics.WithCache(redisService))
		}
	}

	svc := analytics.NewService(productRepo, repo.NewPostgresUsageRepository(database), cfg.Analytics, opts...)
	handlers.SetAnalyticsService(svc)

	alertSvc := alerts.NewService(repo.NewPostgresAlertRepository(database), cfg.Analytics.Location, alerts.WithLogger(log))
	handlers.SetAlertService(alertSvc)

	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(cfg.Scheduler.WarmCacheSchedule, svc, logger.Named(log, "scheduler"))
		sched.AddAlertCheck(cfg.Scheduler.AlertCheckSchedule, alertSvc)
		if err := sched.Start(); err != nil {
			log.Fatal("could not start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	limiter := rl.New(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	go limiter.StartVisitorCleanupLoop(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router.NewRouter(router.Config{Logger: log, Limiter: limiter}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("server running", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
