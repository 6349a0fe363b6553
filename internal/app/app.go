// Package app wires configuration, storage, services and transport into a
// running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pebbl-backend/internal/adapter/postgres"
	mealrepo "github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/meal"
	mealplanrepo "github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/mealplan"
	nutritionrepo "github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/nutrition"
	pantryrepo "github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/pantry"
	profilerepo "github.com/heartmarshall/pebbl-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/pebbl-backend/internal/auth"
	"github.com/heartmarshall/pebbl-backend/internal/config"
	"github.com/heartmarshall/pebbl-backend/internal/domain"
	"github.com/heartmarshall/pebbl-backend/internal/metrics"
	"github.com/heartmarshall/pebbl-backend/internal/service/mealplan"
	"github.com/heartmarshall/pebbl-backend/internal/service/nutrition"
	"github.com/heartmarshall/pebbl-backend/internal/service/pantry"
	"github.com/heartmarshall/pebbl-backend/internal/service/profile"
	"github.com/heartmarshall/pebbl-backend/internal/transport/middleware"
	"github.com/heartmarshall/pebbl-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the HTTP handler and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.ProviderName()),
	)

	pool, err := postgres.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer pool.Close()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	model, err := NewModel(cfg.LLM, m, logger)
	if err != nil {
		return fmt.Errorf("init llm: %w", err)
	}

	handler, stop := NewHandler(cfg, pool, model, m, logger, domain.SystemClock)
	defer stop()

	if cfg.MealPlan.PruneInterval > 0 {
		go runPruner(ctx, mealplanrepo.New(pool), cfg.MealPlan.TTL, cfg.MealPlan.PruneInterval, domain.SystemClock, m, logger)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler builds repositories, services and the router on top of pool.
// The returned stop function releases background resources.
func NewHandler(
	cfg *config.Config,
	pool *pgxpool.Pool,
	model Model,
	m *metrics.Metrics,
	logger *slog.Logger,
	clock domain.Clock,
) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	profileSvc := profile.NewService(logger, profilerepo.New(pool), clock)
	pantrySvc := pantry.NewService(logger, pantryrepo.New(pool), txm, clock, m)
	nutritionSvc := nutrition.NewService(logger, mealrepo.New(pool), nutritionrepo.New(pool), model, clock, m)
	mealPlanSvc := mealplan.NewService(
		logger,
		mealplanrepo.New(pool),
		profileSvc,
		pantrySvc,
		nutritionSvc,
		model,
		clock,
		m,
		cfg.MealPlan,
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Nutrition: rest.NewNutritionHandler(nutritionSvc, logger),
		MealPlan:  rest.NewMealPlanHandler(mealPlanSvc, cfg.MealPlan.TTL, logger),
		Pantry:    rest.NewPantryHandler(pantrySvc, logger),
		Profile:   rest.NewProfileHandler(profileSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion(), cfg.LLM.ProviderName()),

		Auth:        middleware.Auth(jwtManager, logger),
		RateLimiter: limiter,
		Metrics:     m,
		Logger:      logger,

		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		MetricsPath: metricsPath,
	})

	stop := func() {
		if limiter != nil {
			limiter.Stop()
		}
	}
	return handler, stop
}

// serve runs srv until ctx is done, then drains in-flight requests for up
// to shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
