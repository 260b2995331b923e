package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/apopescu/daily-journal/internal/middleware"
	"github.com/apopescu/daily-journal/internal/services"
	"github.com/apopescu/daily-journal/internal/views"
)

// RegisterForm renders the registration form.
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, "register.html", views.Data{Nav: views.Nav(isAuthenticated(r))})
}

// Register creates a local account. Every validation failure re-renders
// the form with the error and returns: once a response is written, no
// further store mutation can happen.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.Users.Register(r.Context(), username, password)
	switch {
	case errors.Is(err, services.ErrWeakPassword):
		h.Views.Render(w, "register.html", views.Data{
			Nav:    views.Nav(false),
			Errors: []string{"Password should be at least 6 characters"},
		})
		return
	case errors.Is(err, services.ErrDuplicateUsername):
		h.Views.Render(w, "register.html", views.Data{
			Nav:    views.Nav(false),
			Errors: []string{"User already registered... Log in"},
		})
		return
	case err != nil:
		log.Printf("register: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not create your account. Please try again.", false)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}
	http.Redirect(w, r, "/userHome", http.StatusFound)
}

// LoginForm renders the login form.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, "login.html", views.Data{Nav: views.Nav(isAuthenticated(r))})
}

// Login runs the local login flow: an unknown username re-renders the form
// with an error, a wrong password redirects back to the form, and a match
// establishes the session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.Users.VerifyLocal(r.Context(), username, password)
	switch {
	case errors.Is(err, services.ErrUnknownUser):
		h.Views.Render(w, "login.html", views.Data{
			Nav:    views.Nav(false),
			Errors: []string{"This email has not been registered"},
		})
		return
	case errors.Is(err, services.ErrBadCredentials):
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	case err != nil:
		log.Printf("login: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not sign you in. Please try again.", false)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}
	http.Redirect(w, r, "/userHome", http.StatusFound)
}

// Logout destroys the session and returns to the anonymous landing page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.Sessions.Destroy(r.Context(), cookie.Value); err != nil {
			log.Printf("logout: %v", err)
		}
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
