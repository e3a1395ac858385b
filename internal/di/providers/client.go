package providers

import (
	"github.com/samber/do/v2"

	"github.com/travelapp/travelplanner-client/internal/config"
	"github.com/travelapp/travelplanner-client/internal/logger"
	"github.com/travelapp/travelplanner-client/internal/ratelimit"
	"github.com/travelapp/travelplanner-client/internal/session"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
	"github.com/travelapp/travelplanner-client/internal/validation"
)

// ProvideAPIClient provides the remote travel API client, using the session
// manager as its token source, and closes the session/client cycle by
// attaching the client back as the manager's auth API.
func ProvideAPIClient(i do.Injector) (*travelapi.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	sess := do.MustInvoke[*session.Manager](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := travelapi.New(cfg.API.BaseURL, sess, cfg.API.Timeout, log.Logger)
	sess.SetAuthAPI(client)

	return client, nil
}

// ProvideValidator provides the form validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// LoginLimiterHandle wraps the login rate limiter for lifecycle management.
type LoginLimiterHandle struct {
	*ratelimit.KeyedLimiter
}

// Shutdown implements do.Shutdownable.
func (h *LoginLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideLoginLimiter provides the per-address login attempt limiter.
func ProvideLoginLimiter(i do.Injector) (*LoginLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return &LoginLimiterHandle{
		KeyedLimiter: ratelimit.New(cfg.Login.RateLimit, cfg.Login.Burst),
	}, nil
}
