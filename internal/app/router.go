// Package app provides router configuration.
package app

import (
	"github.com/tileworks/tile-estimator/config"
	"github.com/tileworks/tile-estimator/internal/http"
	"github.com/tileworks/tile-estimator/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	handlerOpts := []http.HandlerOption{
		http.WithCustomerService(services.Customers),
	}
	if services.LogWriter != nil {
		handlerOpts = append(handlerOpts, http.WithLogSink(services.LogWriter))
	}
	handler := http.NewHandler(services.Estimator, handlerOpts...)

	healthHandler := http.NewHealthHandler()
	routerCfg := http.RouterConfig{
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}

	if db != nil {
		store := db.Store
		if store == "" {
			store = "none"
		}
		healthHandler.SetInfo("store", store)
		for name, check := range db.HealthChecks {
			healthHandler.RegisterChecker(name, http.HealthCheckFunc(check))
		}
		if db.CustomersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_customers", db.CustomersCircuitBreaker)
		}
		if db.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
		}
		routerCfg.LoggingService = db.LoggingService
	}

	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimit = cfg.Server.RateLimit
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}
	if cfg.Server.IdempotencyEnabled {
		routerCfg.IdempotencyCache = middleware.DefaultIdempotencyConfig().Cache
	}
	if services.LogWriter != nil {
		routerCfg.LogSink = services.LogWriter
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
