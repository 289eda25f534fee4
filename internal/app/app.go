// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tileworks/tile-estimator/config"
	"github.com/tileworks/tile-estimator/internal/http"
)

// App is the wired application. Close releases what InitializeApp started.
type App struct {
	Router   *gin.Engine
	Database *DatabaseComponents
	Services *ServiceComponents
	routes   *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(cfg)
	services := InitializeServices(db)
	routes := InitializeRouter(services, db, cfg)

	log.Info().
		Str("store", db.Store).
		Bool("request_logs", services.LogWriter != nil).
		Msg("Application initialized")

	return &App{
		Router:   http.NewRouter(routes.Handler, routes.HealthHandler, routes.Config),
		Database: db,
		Services: services,
		routes:   routes,
	}
}

// Close stops background workers and closes the stores. Queued request logs
// are flushed before the database is closed.
func (a *App) Close(ctx context.Context) error {
	if a == nil {
		return nil
	}
	if a.routes != nil {
		if rl := a.routes.Config.RateLimiter; rl != nil {
			rl.Stop()
		}
		if cache := a.routes.Config.IdempotencyCache; cache != nil {
			cache.Stop()
		}
	}
	if a.Services != nil {
		a.Services.LogWriter.Stop()
	}

	return a.Database.Close(ctx)
}
