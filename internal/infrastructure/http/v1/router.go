package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"imaut/internal/infrastructure/http/v1/handlers"
	"imaut/internal/infrastructure/http/v1/middleware"
	"imaut/internal/infrastructure/metrics"
	"imaut/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Metrics records request counters; nil disables /metrics
	Metrics *metrics.Metrics

	// Health serves the liveness and readiness probes
	Health *handlers.HealthHandler

	// Resources served at the root of the API
	Resources []Resource
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Locale())
	router.Use(middleware.Logger(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}
	router.Use(middleware.ErrorHandler())

	if cfg.Health != nil {
		health := router.Group("/health")
		{
			health.GET("/live", cfg.Health.Live)
			health.GET("/ready", cfg.Health.Ready)
		}
	}

	for _, res := range cfg.Resources {
		group := router.Group(res.Path, middleware.Resource(strings.TrimPrefix(res.Path, "/")))
		RegisterResourceRoutes(group, res.Handler)
	}

	return router
}
