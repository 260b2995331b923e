package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/apopescu/daily-journal/internal/services"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

// GoogleConfig configures the Google sign-in flow. The endpoint URLs
// default to Google's; tests point them at a local server.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string

	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

// Enabled reports whether provider credentials are configured.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

func (g GoogleConfig) authURL() string {
	if g.AuthURL != "" {
		return g.AuthURL
	}
	return googleAuthURL
}

func (g GoogleConfig) tokenURL() string {
	if g.TokenURL != "" {
		return g.TokenURL
	}
	return googleTokenURL
}

func (g GoogleConfig) userInfoURL() string {
	if g.UserInfoURL != "" {
		return g.UserInfoURL
	}
	return googleUserInfoURL
}

// GoogleLogin redirects to the identity provider requesting the profile
// and email scopes, with a single-use state token.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.Google.Enabled() {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	state, err := h.Sessions.CreateLoginState(r.Context())
	if err != nil {
		log.Printf("google login state: %v", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", h.Google.ClientID)
	query.Set("redirect_uri", h.Google.CallbackURL)
	query.Set("scope", strings.Join([]string{"profile", "email"}, " "))
	query.Set("state", state)

	http.Redirect(w, r, h.Google.authURL()+"?"+query.Encode(), http.StatusFound)
}

// GoogleCallback handles the provider redirect: verify state, exchange the
// code, fetch the profile, find or create the account, and sign the user
// in. Provider-side failures send the user back to the login page.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if !h.Google.Enabled() || r.URL.Query().Get("error") != "" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	ok, err := h.Sessions.ConsumeLoginState(r.Context(), r.URL.Query().Get("state"))
	if err != nil {
		log.Printf("google callback state: %v", err)
	}
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	accessToken, err := h.exchangeCode(r.Context(), code)
	if err != nil {
		log.Printf("google code exchange: %v", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	profile, err := h.fetchProfile(r.Context(), accessToken)
	if err != nil {
		log.Printf("google userinfo: %v", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := h.Users.FindOrCreateGoogle(r.Context(), profile)
	if err != nil {
		log.Printf("google find or create: %v", err)
		h.Views.RenderError(w, http.StatusInternalServerError, "Could not sign you in. Please try again.", false)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}
	http.Redirect(w, r, "/userHome", http.StatusFound)
}

func (h *Handler) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", h.Google.ClientID)
	form.Set("client_secret", h.Google.ClientSecret)
	form.Set("redirect_uri", h.Google.CallbackURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Google.tokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := h.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}
	return body.AccessToken, nil
}

func (h *Handler) fetchProfile(ctx context.Context, accessToken string) (services.GoogleProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Google.userInfoURL(), nil)
	if err != nil {
		return services.GoogleProfile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := h.httpClient().Do(req)
	if err != nil {
		return services.GoogleProfile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return services.GoogleProfile{}, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var body struct {
		Sub        string `json:"sub"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return services.GoogleProfile{}, err
	}
	if body.Sub == "" {
		return services.GoogleProfile{}, fmt.Errorf("userinfo response missing subject id")
	}
	return services.GoogleProfile{
		Sub:        body.Sub,
		Email:      body.Email,
		GivenName:  body.GivenName,
		FamilyName: body.FamilyName,
	}, nil
}
