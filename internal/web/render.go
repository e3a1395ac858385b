package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/travelapp/travelplanner-client/internal/domain"
	"github.com/travelapp/travelplanner-client/internal/errors"
	"github.com/travelapp/travelplanner-client/internal/store"
	"github.com/travelapp/travelplanner-client/internal/travelapi"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates maps page names to their parsed template set. Each set is
// the shared layout plus one page body.
var pageTemplates = mustLoadTemplates()

var templateFuncs = template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}

func mustLoadTemplates() map[string]*template.Template {
	pages := []string{
		"login", "register", "dashboard", "destination", "destination_form",
		"booking_form", "bookings", "admin_bookings", "favorites",
		"settings", "confirm", "success",
	}

	set := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		set[name] = template.Must(template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return set
}

// page is the data every template receives.
type page struct {
	Title    string
	SignedIn bool
	IsAdmin  bool
	Identity domain.Identity
	Theme    string
	// Error is the page's inline error string. Failures never escape a
	// handler; they all end up here.
	Error string
}

// newPage builds the shared page data for a request, picking up any flashed
// error from the query string.
func (s *Server) newPage(r *http.Request, title string) page {
	p := page{
		Title: title,
		Theme: s.theme(),
		Error: r.URL.Query().Get("error"),
	}
	if identity, ok := s.session.Identity(); ok {
		p.SignedIn = true
		p.Identity = identity
		p.IsAdmin = identity.IsAdmin()
	}
	return p
}

// theme returns the persisted display theme, defaulting to light.
func (s *Server) theme() string {
	theme, err := s.store.GetString(store.KeyTheme)
	if err != nil {
		return "light"
	}
	return theme
}

// render writes a page template. A template failure at this point means the
// response is already half-written, so it is only logged.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := pageTemplates[name]
	if !ok {
		s.logger.Error("unknown page template", "name", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.logger.Error("render page", "name", name, "error", err)
	}
}

// redirectWithError sends the user to target with the failure flashed as an
// inline error. An unauthorized remote response instead drops the session's
// claim to validity and lands on the login page.
func (s *Server) redirectWithError(w http.ResponseWriter, r *http.Request, target string, err error) {
	s.logger.Warn("page action failed", "path", r.URL.Path, "error", err)

	if errors.Is(err, travelapi.ErrUnauthorized) {
		http.Redirect(w, r, "/login?error="+url.QueryEscape("Your session is no longer valid, please sign in again"), http.StatusFound)
		return
	}
	http.Redirect(w, r, target+"?error="+url.QueryEscape(errorMessage(err)), http.StatusFound)
}

// Page-level failures that never involve the remote API.
var (
	errBadID             = errors.Validation("that page does not exist")
	errInvalidPrice      = errors.Validation("price must be a non-negative number")
	errStaleConfirmation = errors.Validation("the confirmation expired, please try again")
	errBadStartDate      = errors.Validation("please pick a valid start date")
	errBadStatus         = errors.Validation("that is not a valid booking status")
)

func isUnauthorized(err error) bool {
	return errors.Is(err, travelapi.ErrUnauthorized)
}

// errorMessage is the one user-facing string a failure collapses to.
func errorMessage(err error) string {
	var remote *travelapi.RemoteError
	if errors.As(err, &remote) && remote.Body != "" {
		return remote.Body
	}
	var domainErr *errors.Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

// successPage is the data for the post-write success view. The rendered
// page owns the pending navigation via a meta refresh, so leaving it
// abandons the redirect.
type successPage struct {
	page
	Heading      string
	Detail       string
	Target       string
	DelaySeconds int
}

func (s *Server) renderSuccess(w http.ResponseWriter, r *http.Request, heading, detail, target string) {
	data := successPage{
		page:         s.newPage(r, heading),
		Heading:      heading,
		Detail:       detail,
		Target:       target,
		DelaySeconds: int(s.cfg.RedirectDelay.Seconds()),
	}
	s.render(w, "success", data)
}

// confirmPage is the data for the blocking yes/no step before a destructive
// action. PostURL is where the form submits; the token is bound to the
// action key, which may be narrower than the URL (e.g. include the target
// status).
type confirmPage struct {
	page
	Question   string
	Detail     string
	PostURL    string
	Token      string
	Fields     map[string]string
	CancelLink string
}

func (s *Server) renderConfirm(w http.ResponseWriter, r *http.Request, question, detail, postURL, actionKey string, fields map[string]string, cancelLink string) {
	data := confirmPage{
		page:       s.newPage(r, "Please confirm"),
		Question:   question,
		Detail:     detail,
		PostURL:    postURL,
		Token:      s.confirms.Issue(actionKey),
		Fields:     fields,
		CancelLink: cancelLink,
	}
	s.render(w, "confirm", data)
}
