package web

import (
	"net/http"
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Name     string `form:"name" validate:"required,min=1,max=100"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6,max=100"`
}

type authPage struct {
	page
	Email string
	Name  string
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if s.session.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	s.render(w, "login", authPage{page: s.newPage(r, "Sign in")})
}

func (s *Server) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.loginLimiter.Allow(r.RemoteAddr) {
		data := authPage{page: s.newPage(r, "Sign in")}
		data.Error = "Too many attempts, slow down"
		s.render(w, "login", data)
		return
	}

	form := loginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	data := authPage{page: s.newPage(r, "Sign in"), Email: form.Email}

	if err := s.validator.Validate(form); err != nil {
		data.Error = errorMessage(err)
		s.render(w, "login", data)
		return
	}

	if err := s.session.Login(r.Context(), form.Email, form.Password); err != nil {
		s.logger.Warn("login failed", "error", err)
		if isUnauthorized(err) {
			data.Error = "Invalid email or password"
		} else {
			data.Error = errorMessage(err)
		}
		s.render(w, "login", data)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	if s.session.IsAuthenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	s.render(w, "register", authPage{page: s.newPage(r, "Create account")})
}

func (s *Server) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	form := registerForm{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	data := authPage{page: s.newPage(r, "Create account"), Email: form.Email, Name: form.Name}

	if err := s.validator.Validate(form); err != nil {
		data.Error = errorMessage(err)
		s.render(w, "register", data)
		return
	}

	if err := s.session.Register(r.Context(), form.Name, form.Email, form.Password); err != nil {
		s.logger.Warn("registration failed", "error", err)
		data.Error = errorMessage(err)
		s.render(w, "register", data)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(); err != nil {
		s.redirectWithError(w, r, "/dashboard", err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
