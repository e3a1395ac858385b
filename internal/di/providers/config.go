// Package providers contains dependency injection providers for the travel
// planner client.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/travelapp/travelplanner-client/internal/config"
	"github.com/travelapp/travelplanner-client/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.Load()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting Travel Planner client",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"api_base_url", cfg.API.BaseURL,
		"data_path", cfg.Data.Path,
	)

	return log, nil
}
