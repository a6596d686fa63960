package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"hireboard/internal/app"
	"hireboard/internal/config"
	"hireboard/internal/database"
	"hireboard/internal/domain/analytics"
	"hireboard/internal/domain/applicant"
	"hireboard/internal/domain/location"
	"hireboard/internal/domain/plan"
	apphttp "hireboard/internal/http"
	"hireboard/internal/http/handlers"
	"hireboard/internal/http/metrics"
	httpmw "hireboard/internal/http/middleware"
	"hireboard/internal/http/response"
	"hireboard/internal/observability"
	"hireboard/internal/repository/postgres"
	"hireboard/internal/repository/sqlite"
	"hireboard/internal/security"
	"hireboard/internal/seed"
)

type repositories struct {
	plans        plan.Repository
	locations    location.Repository
	applications applicant.ApplicationRepository
	analytics    analytics.Repository
}

func main() {
	if err := run(); err != nil {
		slog.Error("api stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := observability.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, "hireboard-api", cfg.OTELEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", slog.String("error", err.Error()))
		}
	}()

	db, err := database.Open(ctx, database.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
		PingTimeout:     30 * time.Second,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	repos := newRepositories(cfg.DBDriver, db)
	planService := app.NewPlanService(repos.plans, repos.analytics)
	locationService := app.NewLocationService(repos.locations, repos.analytics)
	applicationService := app.NewApplicationService(repos.applications, repos.analytics)
	analyticsService := app.NewAnalyticsService(repos.analytics)

	if cfg.PlanSeedFile != "" {
		inputs, err := seed.LoadPlans(cfg.PlanSeedFile)
		if err != nil {
			return err
		}
		created, err := planService.EnsurePlans(ctx, inputs)
		if err != nil {
			return err
		}
		logger.Info("plan catalog applied", slog.Int("created", created), slog.Int("total", len(inputs)))
	}

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		client := redis.NewClient(opts)
		defer client.Close()
		limiter = httpmw.NewRedisLimiter(client)
		logger.Info("using redis rate limiter")
	}

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)
	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		PlanHandler:        handlers.NewPlanHandler(planService),
		LocationHandler:    handlers.NewLocationHandler(locationService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, limiter, cfg.ApplyRateLimitPerMin),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(analyticsService),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		AuthMiddleware:     httpmw.NewAuthMiddleware(jwtProvider),
		Metrics:            collector,
		WriteLimiter:       limiter,
		WriteRateLimit:     cfg.WriteRateLimitPerMin,
		RequestTimeout:     cfg.RequestTimeout,
		Health:             db.PingContext,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("API started", slog.String("addr", server.Addr), slog.String("driver", cfg.DBDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newRepositories(driver string, db *sql.DB) repositories {
	if driver == database.DriverSQLite {
		return repositories{
			plans:        sqlite.NewPlanRepository(db),
			locations:    sqlite.NewLocationRepository(db),
			applications: sqlite.NewApplicationRepository(db),
			analytics:    sqlite.NewAnalyticsRepository(db),
		}
	}
	return repositories{
		plans:        postgres.NewPlanRepository(db),
		locations:    postgres.NewLocationRepository(db),
		applications: postgres.NewApplicationRepository(db),
		analytics:    postgres.NewAnalyticsRepository(db),
	}
}
