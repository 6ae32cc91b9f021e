package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/company-directory/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/activity"
	buildingrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/building"
	companyrepo "github.com/heartmarshall/company-directory/internal/adapter/postgres/company"
	redisadapter "github.com/heartmarshall/company-directory/internal/adapter/redis"
	"github.com/heartmarshall/company-directory/internal/adapter/redis/taxonomycache"
	"github.com/heartmarshall/company-directory/internal/config"
	"github.com/heartmarshall/company-directory/internal/service/building"
	"github.com/heartmarshall/company-directory/internal/service/company"
	"github.com/heartmarshall/company-directory/internal/service/taxonomy"
	"github.com/heartmarshall/company-directory/internal/transport/middleware"
	"github.com/heartmarshall/company-directory/internal/transport/rest"
	"github.com/heartmarshall/company-directory/internal/transport/rest/dataloader"
	"github.com/heartmarshall/company-directory/internal/transport/validate"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when enabled), wires services and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("taxonomy_max_depth", cfg.Taxonomy.MaxDepth),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	activities := activityrepo.New(pool)
	buildings := buildingrepo.New(pool)
	companies := companyrepo.New(pool)

	health := rest.NewHealthHandler(pool, BuildVersion())

	var taxonomySvc *taxonomy.Service
	if cfg.Redis.Enabled {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		cache := taxonomycache.New(client, cfg.Redis.TTL)
		health.WithOptional("taxonomy_cache", cache)
		taxonomySvc = taxonomy.NewService(logger, activities, cache, txm, cfg.Taxonomy.MaxDepth)
	} else {
		taxonomySvc = taxonomy.NewService(logger, activities, nil, txm, cfg.Taxonomy.MaxDepth)
	}

	buildingSvc := building.NewService(logger, buildings, txm)
	companySvc := company.NewService(logger, companies, buildings, activities, taxonomySvc, txm, cfg.Taxonomy.MaxDepth)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		postgres.NewPoolCollector(pool),
	)
	metrics := middleware.NewMetrics(reg)

	v := validate.New()
	router := rest.NewRouter(rest.RouterDeps{
		Health:   health,
		Activity: rest.NewActivityHandler(taxonomySvc, v, cfg.Search, logger),
		Building: rest.NewBuildingHandler(buildingSvc, v, cfg.Search, logger),
		Company:  rest.NewCompanyHandler(companySvc, v, cfg.Search, logger),
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Loaders: &dataloader.Repos{
			Building: buildings,
			Phone:    companies,
			Activity: companies,
		},
	}, mux.MiddlewareFunc(metrics.Middleware()))

	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, reg)
		defer limiter.Stop()
		rateLimit = limiter.Middleware()
	}

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.ClientIP(),
		middleware.Logger(logger, "/live", "/ready", "/metrics"),
		middleware.CORS(cfg.CORS),
		rateLimit,
		middleware.APIKey(logger, cfg.Auth.APIKey, rest.PublicPaths...),
	)(router)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
