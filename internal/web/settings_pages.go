package web

import (
	"net/http"

	"github.com/travelapp/travelplanner-client/internal/store"
)

type settingsPage struct {
	page
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	s.render(w, "settings", settingsPage{page: s.newPage(r, "Settings")})
}

// handleThemeToggle flips the persisted theme between light and dark.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	next := "dark"
	if s.theme() == "dark" {
		next = "light"
	}

	if err := s.store.SetString(store.KeyTheme, next); err != nil {
		s.redirectWithError(w, r, "/settings", err)
		return
	}

	http.Redirect(w, r, "/settings", http.StatusFound)
}
