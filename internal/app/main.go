package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"imaut/internal/config"
	"imaut/pkg/logger"
)

// Main loads configuration from the working directory and serves mod until SIGINT or SIGTERM.
func Main(mod Module) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
		Service:     mod.Name,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetDefault(log)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("starting service", "storage", cfg.StorageDriver, "path", mod.Path)

	a, err := New(ctx, cfg, mod, log)
	if err != nil {
		log.Fatalw("failed to start", "error", err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Errorw("server error", "error", err)
		a.Close()
		os.Exit(1)
	}
}
