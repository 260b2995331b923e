package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apopescu/daily-journal/internal/middleware"
	"github.com/apopescu/daily-journal/internal/services"
	"github.com/apopescu/daily-journal/internal/views"
)

// UserHome lists the signed-in user's posts, newest first.
func (h *Handler) UserHome(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	posts, err := h.Posts.ListByOwner(r.Context(), user.ID.Hex())
	if err != nil {
		log.Printf("list posts: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not load your journal. Please try again.", true)
		return
	}

	h.Views.Render(w, "userHome.html", views.Data{Nav: views.Nav(true), Posts: posts})
}

// ComposeForm renders the compose form for a signed-in user.
func (h *Handler) ComposeForm(w http.ResponseWriter, r *http.Request) {
	if !isAuthenticated(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.Views.Render(w, "compose.html", views.Data{Nav: views.Nav(true)})
}

// Compose creates a post owned by the signed-in user and returns to the
// landing page.
func (h *Handler) Compose(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	_, err := h.Posts.Create(r.Context(), user.ID.Hex(), r.FormValue("postTitle"), r.FormValue("postContent"))
	if err != nil {
		log.Printf("create post: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not save your entry. Please try again.", true)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// ShowPost renders a single post by id. Any signed-in user may view any
// post; there is no ownership check on reads.
func (h *Handler) ShowPost(w http.ResponseWriter, r *http.Request) {
	if !isAuthenticated(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	post, err := h.Posts.GetByID(r.Context(), chi.URLParam(r, "postID"))
	if errors.Is(err, services.ErrNotFound) {
		h.Views.RenderError(w, http.StatusNotFound, "That entry does not exist.", true)
		return
	}
	if err != nil {
		log.Printf("get post: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not load that entry. Please try again.", true)
		return
	}

	h.Views.Render(w, "post.html", views.Data{Nav: views.Nav(true), Post: post})
}

// DeletePost removes the post named in the form body. Deliberately, there
// is no session or ownership check here; see the trust-model note on
// PostService.Delete.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	err := h.Posts.Delete(r.Context(), r.FormValue("deletedPost"))
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		log.Printf("delete post: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not delete that entry. Please try again.", isAuthenticated(r))
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
