package handlers

import (
	"net/http"

	"github.com/apopescu/daily-journal/internal/views"
)

// Landing renders the anonymous welcome page, or sends a signed-in user
// straight to their journal.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	if isAuthenticated(r) {
		http.Redirect(w, r, "/userHome", http.StatusFound)
		return
	}
	h.Views.Render(w, "welcome.html", views.Data{Nav: views.Nav(false)})
}

// About is reachable signed in or out; only the nav differs.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.Views.Render(w, "about.html", views.Data{Nav: views.Nav(isAuthenticated(r))})
}
