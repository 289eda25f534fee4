// Package app provides logger initialization.
package app

import (
	"github.com/tileworks/tile-estimator/config"
	"github.com/tileworks/tile-estimator/internal/logger"
)

// InitializeLogger configures the global logger from cfg.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
