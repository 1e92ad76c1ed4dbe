package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/httprate"

	httpadapter "phish-analytics/internal/adapter/http"
	"phish-analytics/internal/adapter/postgres"
	"phish-analytics/internal/adapter/redis"
	"phish-analytics/internal/adapter/usecase"
	"phish-analytics/internal/config"
	"phish-analytics/internal/db"
)

// main is the entry point of the phish-analytics service. It loads
// configuration, optionally runs database migrations and seeds demo data,
// wires repositories and usecases, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	events := postgres.NewEventRepository(pool)
	employees := postgres.NewEmployeeRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)

	if cfg.Psql.SeedFile != "" {
		fx, err := db.LoadFixture(cfg.Psql.SeedFile)
		if err != nil {
			logger.Error("seed fixture error", slog.Any("error", err))
			return
		}
		seeder := db.Seeder{Employees: employees, Campaigns: campaigns, Events: events}
		if err = seeder.Seed(ctx, fx); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("seed applied", slog.String("file", cfg.Psql.SeedFile))
	}

	opts := []httpadapter.Option{httpadapter.WithReadiness("postgres", pool)}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(cfg.Redis)
		defer rdb.Close()
		if err = rdb.Ping(ctx); err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		opts = append(opts, httpadapter.WithReadiness("redis", rdb))
		if cfg.RateLimit.Enabled {
			limiter := redis.NewFixedWindowLimiter(rdb, "rl:phish:", cfg.RateLimit.Requests, cfg.RateLimit.Window)
			opts = append(opts, httpadapter.WithRateLimit(httpadapter.RateLimit(limiter, logger)))
		}
	} else if cfg.RateLimit.Enabled {
		opts = append(opts, httpadapter.WithRateLimit(httprate.LimitByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window)))
	}

	handler := httpadapter.NewHandler(
		usecase.NewAnalyticsUseCase(events, employees, cfg.Analytics),
		usecase.NewTrackingUseCase(events, employees, campaigns, cfg.Analytics),
		usecase.NewDirectoryUseCase(employees),
		logger,
		opts...,
	)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
