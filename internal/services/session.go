package services

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// SessionDuration bounds a session's lifetime in the store.
	SessionDuration = 7 * 24 * time.Hour

	// loginStateTTL bounds how long an OAuth login state stays redeemable.
	loginStateTTL = 10 * time.Minute

	sessionKeyPrefix    = "session:"
	loginStateKeyPrefix = "oauthstate:"
)

// KV is the key-value surface the session manager needs. The Redis adapter
// in internal/database implements it; tests use an in-memory map.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns (value, true, nil) when the key exists and ("", false, nil)
	// when it does not.
	Get(ctx context.Context, key string) (string, bool, error)
	Del(ctx context.Context, key string) error
}

// SessionService maps opaque cookie tokens to user ids. A session record
// stores only the user's id; callers refetch the full user per request.
// Cookie values are token.signature, signed with the session secret so a
// forged token never reaches the store.
type SessionService struct {
	kv     KV
	secret []byte
}

func NewSessionService(kv KV, secret string) *SessionService {
	return &SessionService{kv: kv, secret: []byte(secret)}
}

// Create issues a session for userID and returns the signed cookie value.
func (s *SessionService) Create(ctx context.Context, userID string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(raw)

	if err := s.kv.Set(ctx, sessionKeyPrefix+token, userID, SessionDuration); err != nil {
		return "", err
	}
	return token + "." + s.sign(token), nil
}

// Resolve maps a cookie value back to a user id. A missing, expired, or
// tampered session is reported as (_, false, nil): anonymous, not an error.
func (s *SessionService) Resolve(ctx context.Context, cookieValue string) (string, bool, error) {
	token, ok := s.verify(cookieValue)
	if !ok {
		return "", false, nil
	}
	userID, found, err := s.kv.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	return userID, true, nil
}

// Destroy invalidates the session; subsequent Resolve calls for the same
// cookie value fail.
func (s *SessionService) Destroy(ctx context.Context, cookieValue string) error {
	token, ok := s.verify(cookieValue)
	if !ok {
		return nil
	}
	return s.kv.Del(ctx, sessionKeyPrefix+token)
}

// CreateLoginState stores a single-use state token for the OAuth redirect.
func (s *SessionService) CreateLoginState(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := s.kv.Set(ctx, loginStateKeyPrefix+state, "1", loginStateTTL); err != nil {
		return "", err
	}
	return state, nil
}

// ConsumeLoginState redeems a state token, deleting it so a replayed
// callback fails.
func (s *SessionService) ConsumeLoginState(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	key := loginStateKeyPrefix + state
	_, found, err := s.kv.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := s.kv.Del(ctx, key); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SessionService) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *SessionService) verify(cookieValue string) (string, bool) {
	token, sig, ok := strings.Cut(cookieValue, ".")
	if !ok || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(token))) {
		return "", false
	}
	return token, true
}
