package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apopescu/daily-journal/internal/handlers"
)

func Setup(r *chi.Mux, h *handlers.Handler) {
	r.Get("/", h.Landing)
	r.Get("/about", h.About)

	r.Get("/register", h.RegisterForm)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)

	r.Get("/auth/google", h.GoogleLogin)
	r.Get("/auth/google/callback", h.GoogleCallback)

	r.Get("/userHome", h.UserHome)
	r.Get("/compose", h.ComposeForm)
	r.Post("/compose", h.Compose)
	r.Get("/posts/{postID}", h.ShowPost)
	r.Post("/delete", h.DeletePost)

	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir("public"))))
}
