package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/heartmarshall/timetrack-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/activity"
	auditrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/audit"
	projectrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/project"
	recordrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/record"
	taskrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/task"
	tokenrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/timetrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/timetrack-backend/internal/auth"
	"github.com/heartmarshall/timetrack-backend/internal/config"
	authsvc "github.com/heartmarshall/timetrack-backend/internal/service/auth"
	"github.com/heartmarshall/timetrack-backend/internal/service/catalog"
	"github.com/heartmarshall/timetrack-backend/internal/service/stats"
	"github.com/heartmarshall/timetrack-backend/internal/service/tracker"
	"github.com/heartmarshall/timetrack-backend/internal/transport/loader"
	"github.com/heartmarshall/timetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/timetrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// repositories and services together, and serves HTTP until SIGINT or
// SIGTERM, then drains in-flight requests.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	projects := projectrepo.New(pool)
	activities := activityrepo.New(pool)
	tasks := taskrepo.New(pool)
	records := recordrepo.New(pool)
	audit := auditrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	catalogService := catalog.NewService(logger, projects, activities, tasks, records, audit, txManager)
	trackerService := tracker.NewService(logger, tasks, records, audit, txManager, cfg.Tracker)
	statsService := stats.NewService(logger, users, projects, tasks, records)

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger),
		Tracker: rest.NewTrackerHandler(trackerService, logger),
		Stats:   rest.NewStatsHandler(statsService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	var handler http.Handler = mux

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		handler = limitAuthEndpoints(handler, limiter, cfg.RateLimit.AuthPerMinute)
	}

	handler = middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		loader.Middleware(&loader.Repos{Record: records}),
	)(handler)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// limitAuthEndpoints rate-limits only the credential endpoints, where
// brute forcing is a concern. Everything else passes through.
func limitAuthEndpoints(next http.Handler, limiter *middleware.RateLimiter, perMinute int) http.Handler {
	limited := limiter.Limit(perMinute)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/auth/") {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

