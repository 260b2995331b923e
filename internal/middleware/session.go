package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/apopescu/daily-journal/internal/models"
	"github.com/apopescu/daily-journal/internal/services"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "session"

type contextKey int

const userContextKey contextKey = iota

// Session resolves the session cookie to a full user and attaches it to
// the request context. The user is refetched from the store on every
// request, so a session whose user has vanished is treated as anonymous
// rather than served stale data. Store failures also fall through to
// anonymous: an unreachable session store must not take down every page.
func Session(sessions *services.SessionService, users *services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				log.Printf("session resolve: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				if !errors.Is(err, services.ErrNotFound) {
					log.Printf("session user lookup: %v", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user attached by Session, if any.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userContextKey).(*models.User)
	return user, ok
}
