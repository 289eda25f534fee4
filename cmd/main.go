// Package main is the entry point for the tile estimator service.
//
// @title           Tile Estimator API
// @version         1.0.0
// @description     Tile quantity and cost estimates for showroom counters.
//
//	Converts room measurements into boxes, covered area, weight and cost, adds
//	the loading charge and stores the estimate against a customer.
//
// @contact.name   Tileworks Support
// @contact.email  support@tileworks.example
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Tile sizes and room categories
//
// @tag.name        Estimates
// @tag.description Estimate calculation and saving
//
// @tag.name        Customers
// @tag.description Saved customers, printable estimates and exports
//
// @tag.name        Logs
// @tag.description Request and audit log queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	_ "github.com/tileworks/tile-estimator/docs" // swagger docs

	"github.com/tileworks/tile-estimator/config"
	"github.com/tileworks/tile-estimator/internal/app"
)

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		_ = application.Close(context.Background())
		log.Fatal().Err(err).Msg("Server error")
	}
}
