package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/travelapp/travelplanner-client/internal/config"
	"github.com/travelapp/travelplanner-client/internal/logger"
	"github.com/travelapp/travelplanner-client/internal/session"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
	"github.com/travelapp/travelplanner-client/internal/validation"
	"github.com/travelapp/travelplanner-client/internal/web"
)

// ProvideWebServer provides the page handler stack.
func ProvideWebServer(i do.Injector) (*web.Server, error) {
	cfg := do.MustInvoke[*config.Config](i)
	api := do.MustInvoke[*travelapi.Client](i)
	sess := do.MustInvoke[*session.Manager](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	limiterHandle := do.MustInvoke[*LoginLimiterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return web.NewServer(
		api, sess, storeHandle.Store, validator, limiterHandle.KeyedLimiter,
		web.Config{RedirectDelay: cfg.Pages.RedirectDelay},
		log.Logger,
	), nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts listening.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	handler := do.MustInvoke[*web.Server](i)
	log := do.MustInvoke[*logger.Logger](i)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Web server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Web server error", "error", err)
		}
	}()

	log.Info("Open the app", "url", "http://localhost:"+cfg.Server.Port)

	return &HTTPServerHandle{Server: srv}, nil
}
