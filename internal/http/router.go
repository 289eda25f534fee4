package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tileworks/tile-estimator/internal/metrics"
	"github.com/tileworks/tile-estimator/internal/middleware"
	"github.com/tileworks/tile-estimator/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	// RateLimiter overrides the limiter built from RateLimit and RateWindow.
	RateLimiter *middleware.RateLimiter
	// IdempotencyCache enables Idempotency-Key replay on POST routes.
	IdempotencyCache *middleware.IdempotencyCache
	// LogSink receives request and audit entries. Nil keeps them in the
	// process log only.
	LogSink service.LogSink
	// LoggingService enables GET /api/logs.
	LoggingService service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultRequestTimeout,
	}
}

// NewRouter creates and configures the Gin router for the tile estimator.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range apiRouteGroups(handler, &cfg) {
		group.RegisterRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(cfg.LogSink),
		middleware.ErrorHandler(),
	)

	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if limiter != nil {
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	if cfg.IdempotencyCache != nil {
		api.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Cache:   cfg.IdempotencyCache,
			Enabled: true,
		}))
	}
}

func apiRouteGroups(handler *Handler, cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if handler != nil {
		groups = append(groups,
			CatalogRoutes{handler: handler},
			EstimateRoutes{handler: handler},
			CustomerRoutes{handler: handler},
		)
	}
	if cfg.LoggingService != nil {
		groups = append(groups, LogRoutes{handler: NewLogsHandler(cfg.LoggingService)})
	}
	return groups
}
