package handlers

import (
	"log"
	"net/http"

	"github.com/apopescu/daily-journal/internal/middleware"
	"github.com/apopescu/daily-journal/internal/models"
	"github.com/apopescu/daily-journal/internal/services"
	"github.com/apopescu/daily-journal/internal/views"
)

// Handler carries the services every route needs.
type Handler struct {
	Users    *services.UserService
	Posts    *services.PostService
	Sessions *services.SessionService
	Views    *views.Renderer
	Google   GoogleConfig

	// HTTPClient performs the OAuth token and userinfo calls.
	// Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

func New(users *services.UserService, posts *services.PostService, sessions *services.SessionService, v *views.Renderer, google GoogleConfig) *Handler {
	return &Handler{
		Users:    users,
		Posts:    posts,
		Sessions: sessions,
		Views:    v,
		Google:   google,
	}
}

func (h *Handler) httpClient() *http.Client {
	if h.HTTPClient != nil {
		return h.HTTPClient
	}
	return http.DefaultClient
}

// startSession creates a session for user and sets the cookie. It reports
// whether the caller may proceed; on failure the response is already
// written.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user *models.User) bool {
	cookieValue, err := h.Sessions.Create(r.Context(), user.ID.Hex())
	if err != nil {
		log.Printf("create session: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not sign you in. Please try again.", false)
		return false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    cookieValue,
		Path:     "/",
		MaxAge:   int(services.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func isAuthenticated(r *http.Request) bool {
	_, ok := middleware.CurrentUser(r)
	return ok
}
