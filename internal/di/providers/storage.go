package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/travelapp/travelplanner-client/internal/config"
	"github.com/travelapp/travelplanner-client/internal/logger"
	"github.com/travelapp/travelplanner-client/internal/session"
	"github.com/travelapp/travelplanner-client/internal/store"
)

// StoreHandle wraps the local state store for lifecycle management.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Store.Close()
}

// ProvideStore provides the embedded store that persists the session and
// display preferences across restarts.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	path := filepath.Join(cfg.Data.Path, "state")
	st, err := store.Open(path, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Local state store opened", "path", path)
	return &StoreHandle{Store: st}, nil
}

// ProvideSession provides the session manager, restoring any persisted
// credential. The auth API is attached later by ProvideAPIClient because the
// client and the manager reference each other.
func ProvideSession(i do.Injector) (*session.Manager, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return session.NewManager(storeHandle.Store, log.Logger), nil
}
