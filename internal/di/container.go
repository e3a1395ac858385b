// Package di provides dependency injection configuration for the travel
// planner client.
package di

import (
	"github.com/samber/do/v2"

	"github.com/travelapp/travelplanner-client/internal/config"
	"github.com/travelapp/travelplanner-client/internal/di/providers"
	"github.com/travelapp/travelplanner-client/internal/logger"
	"github.com/travelapp/travelplanner-client/internal/session"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
	"github.com/travelapp/travelplanner-client/internal/validation"
	"github.com/travelapp/travelplanner-client/internal/web"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Local state
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideSession)

	// Remote API
	do.Provide(injector, providers.ProvideAPIClient)

	// Page plumbing
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideLoginLimiter)

	// Server
	do.Provide(injector, providers.ProvideWebServer)
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// Invocation order matters only for the log output; the container resolves
// dependencies lazily.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*session.Manager](injector)
	_ = do.MustInvoke[*travelapi.Client](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.LoginLimiterHandle](injector)
	_ = do.MustInvoke[*web.Server](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
