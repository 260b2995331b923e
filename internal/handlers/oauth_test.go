package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apopescu/daily-journal/internal/handlers"
)

// fakeProvider serves the token and userinfo endpoints of the identity
// provider.
type fakeProvider struct {
	server *httptest.Server

	// lastCode records the authorization code presented for exchange.
	lastCode string
}

func newFakeProvider(t *testing.T, profile map[string]string) *fakeProvider {
	t.Helper()
	p := &fakeProvider{}

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p.lastCode = r.PostFormValue("code")
		if r.PostFormValue("grant_type") != "authorization_code" || p.lastCode == "" {
			http.Error(w, "invalid grant", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": "provider-token"})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(profile)
	})

	p.server = httptest.NewServer(mux)
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakeProvider) config() handlers.GoogleConfig {
	return handlers.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		CallbackURL:  "http://localhost:3000/auth/google/callback",
		AuthURL:      p.server.URL + "/auth",
		TokenURL:     p.server.URL + "/token",
		UserInfoURL:  p.server.URL + "/userinfo",
	}
}

// startGoogleLogin follows GET /auth/google and returns the state the app
// handed to the provider.
func startGoogleLogin(t *testing.T, e *env) string {
	t.Helper()
	rec := e.do(http.MethodGet, "/auth/google", nil, nil)
	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "code", location.Query().Get("response_type"))
	assert.Equal(t, "client-id", location.Query().Get("client_id"))
	assert.Equal(t, "profile email", location.Query().Get("scope"))

	state := location.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func TestGoogleLoginDisabledRedirectsToLoginPage(t *testing.T) {
	e := newEnv(t)

	rec := e.do(http.MethodGet, "/auth/google", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestGoogleCallbackSignsUserIn(t *testing.T) {
	e := newEnv(t)
	provider := newFakeProvider(t, map[string]string{
		"sub":         "g-123",
		"email":       "alice@example.com",
		"given_name":  "Alice",
		"family_name": "Pop",
	})
	e.h.Google = provider.config()

	state := startGoogleLogin(t, e)

	rec := e.do(http.MethodGet, "/auth/google/callback?code=auth-code&state="+state, nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/userHome", rec.Header().Get("Location"))
	assert.Equal(t, "auth-code", provider.lastCode)
	assert.Equal(t, 1, e.users.count())

	cookie := sessionCookie(t, rec)
	home := e.do(http.MethodGet, "/userHome", nil, cookie)
	assert.Equal(t, http.StatusOK, home.Code)
}

func TestGoogleCallbackIsIdempotentPerSubject(t *testing.T) {
	e := newEnv(t)
	provider := newFakeProvider(t, map[string]string{
		"sub":   "g-123",
		"email": "alice@example.com",
	})
	e.h.Google = provider.config()

	for i := 0; i < 2; i++ {
		state := startGoogleLogin(t, e)
		rec := e.do(http.MethodGet, "/auth/google/callback?code=auth-code&state="+state, nil, nil)
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/userHome", rec.Header().Get("Location"))
	}

	assert.Equal(t, 1, e.users.count(), "a second sign-in must reuse the account")
}

func TestGoogleCallbackRejectsBadState(t *testing.T) {
	e := newEnv(t)
	provider := newFakeProvider(t, map[string]string{"sub": "g-123"})
	e.h.Google = provider.config()

	rec := e.do(http.MethodGet, "/auth/google/callback?code=auth-code&state=forged", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, e.users.count())
}

func TestGoogleCallbackStateIsSingleUse(t *testing.T) {
	e := newEnv(t)
	provider := newFakeProvider(t, map[string]string{"sub": "g-123"})
	e.h.Google = provider.config()

	state := startGoogleLogin(t, e)

	rec := e.do(http.MethodGet, "/auth/google/callback?code=auth-code&state="+state, nil, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/userHome", rec.Header().Get("Location"))

	replay := e.do(http.MethodGet, "/auth/google/callback?code=auth-code&state="+state, nil, nil)
	assert.Equal(t, http.StatusFound, replay.Code)
	assert.Equal(t, "/login", replay.Header().Get("Location"))
}

func TestGoogleCallbackProviderFailureRedirectsToLogin(t *testing.T) {
	e := newEnv(t)
	provider := newFakeProvider(t, map[string]string{"sub": "g-123"})
	e.h.Google = provider.config()

	rec := e.do(http.MethodGet, "/auth/google/callback?error=access_denied", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, e.users.count())
}
