// Package web serves the travel planner's pages. Each handler is one page
// cycle: fetch from the remote API, derive the view-model, render. All state
// shown on a page is re-fetched per request; the only state kept between
// requests is the session and the theme preference.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/travelapp/travelplanner-client/internal/ratelimit"
	"github.com/travelapp/travelplanner-client/internal/session"
	"github.com/travelapp/travelplanner-client/internal/store"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
	"github.com/travelapp/travelplanner-client/internal/validation"
)

// Config holds page behavior settings.
type Config struct {
	// RedirectDelay is how long success pages wait before navigating on.
	RedirectDelay time.Duration
}

// Server holds the dependencies of the page handlers.
type Server struct {
	api          *travelapi.Client
	session      *session.Manager
	store        *store.Store
	validator    *validation.Validator
	loginLimiter *ratelimit.KeyedLimiter
	confirms     *confirmTokens
	router       *chi.Mux
	logger       *slog.Logger
	cfg          Config
}

// NewServer creates the web server with all routes configured.
func NewServer(api *travelapi.Client, sess *session.Manager, st *store.Store, validator *validation.Validator, loginLimiter *ratelimit.KeyedLimiter, cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		api:          api,
		session:      sess,
		store:        st,
		validator:    validator,
		loginLimiter: loginLimiter,
		confirms:     newConfirmTokens(),
		router:       chi.NewRouter(),
		logger:       logger,
		cfg:          cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}))
}

func (s *Server) setupRoutes() {
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	// Public pages.
	s.router.Get("/login", s.handleLoginPage)
	s.router.Post("/login", s.handleLoginSubmit)
	s.router.Get("/register", s.handleRegisterPage)
	s.router.Post("/register", s.handleRegisterSubmit)

	// Signed-in pages.
	s.router.Group(func(r chi.Router) {
		r.Use(s.requireSession)

		r.Post("/logout", s.handleLogout)

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/destinations/{id}", s.handleDestinationDetails)

		r.Get("/destinations/{id}/book", s.handleBookingForm)
		r.Post("/destinations/{id}/book", s.handleBookingSubmit)
		r.Get("/bookings", s.handleMyBookings)
		r.Get("/bookings/{id}/cancel", s.handleCancelConfirm)
		r.Post("/bookings/{id}/cancel", s.handleCancelSubmit)

		r.Get("/favorites", s.handleFavorites)
		r.Post("/favorites/toggle", s.handleFavoriteToggle)

		r.Get("/settings", s.handleSettings)
		r.Post("/settings/theme", s.handleThemeToggle)
	})

	// Admin pages. The guard is navigation only; the remote API still
	// rejects non-admin credentials on every call below.
	s.router.Group(func(r chi.Router) {
		r.Use(s.requireSession)
		r.Use(s.requireAdmin)

		r.Get("/admin/bookings", s.handleAdminBookings)
		r.Get("/admin/bookings/{id}/status", s.handleStatusConfirm)
		r.Post("/admin/bookings/{id}/status", s.handleStatusSubmit)

		r.Get("/admin/destinations/new", s.handleDestinationNew)
		r.Post("/admin/destinations/new", s.handleDestinationCreate)
		r.Get("/admin/destinations/{id}/edit", s.handleDestinationEdit)
		r.Post("/admin/destinations/{id}/edit", s.handleDestinationUpdate)
		r.Get("/admin/destinations/{id}/delete", s.handleDestinationDeleteConfirm)
		r.Post("/admin/destinations/{id}/delete", s.handleDestinationDelete)
	})
}
