// Package app assembles and runs a single-resource HTTP service.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"

	"imaut/internal/config"
	"imaut/internal/core/validation"
	"imaut/internal/infrastructure/events"
	v1 "imaut/internal/infrastructure/http/v1"
	"imaut/internal/infrastructure/http/v1/handlers"
	"imaut/internal/infrastructure/metrics"
	"imaut/internal/infrastructure/storage/postgres"
	"imaut/pkg/logger"
)

// App is a wired service ready to serve.
type App struct {
	cfg     config.Config
	log     *logger.Logger
	handler http.Handler
	closers []func() error
}

// New wires mod with the storage, event and metrics backends selected by cfg.
func New(ctx context.Context, cfg config.Config, mod Module, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &App{cfg: cfg, log: log}

	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("init validator: %w", err)
	}

	d := deps{
		validator: v,
		base:      handlers.NewBaseHandler(),
		publisher: events.NopPublisher{},
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(mod.Name)
	}

	if cfg.StorageDriver == config.DriverPostgres {
		poolCfg := postgres.NewPoolConfig(cfg, mod.Name)
		pool, err := postgres.NewPool(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })

		d.txManager = postgres.NewTxManager(pool)
		if m != nil {
			m.RegisterPool(pool)
		}
		log.Infow("database connection established", "max_conns", poolCfg.MaxConns)
	} else {
		log.Warnw("using in-memory store, data is lost on restart")
	}

	if cfg.RabbitMQURL != "" {
		pub, err := events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect rabbitmq: %w", err)
		}
		a.closers = append(a.closers, pub.Close)
		d.publisher = pub
		log.Infow("publishing resource events", "exchange", cfg.EventsExchange)
	}

	handler, pinger := mod.mount(d)

	router := v1.NewRouter(v1.RouterConfig{
		Logger:    log,
		Metrics:   m,
		Health:    handlers.NewHealthHandler(pinger),
		Resources: []v1.Resource{{Path: mod.Path, Handler: handler}},
	})

	a.handler = wrap(router, cfg.CORSAllowedOrigins)
	return a, nil
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         ":" + a.cfg.ServerPort,
		Handler:      a.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infow("server starting", "port", a.cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}

// Close releases backends in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warnw("close failed", "error", err)
		}
	}
	a.closers = nil
}

// wrap adds CORS and gzip compression around the router.
func wrap(h http.Handler, origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Accept-Language", "X-Request-ID", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-ID"},
		MaxAge:         300,
	})
	return c.Handler(gzhttp.GzipHandler(h))
}
