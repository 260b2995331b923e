package services

import (
	"context"
	"errors"
	"time"

	"github.com/apopescu/daily-journal/internal/models"
	"github.com/apopescu/daily-journal/pkg/utils"
)

// MinPasswordLength is the registration minimum.
const MinPasswordLength = 6

// UserStore is the document-store surface the credential verifier needs.
// Implementations return ErrNotFound for absent users. UpsertByGoogleID
// must be atomic: concurrent calls for one googleID yield a single user.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	UpsertByGoogleID(ctx context.Context, googleID, username string, name models.AuthorName) (*models.User, error)
}

// GoogleProfile is the subset of the userinfo response the account needs.
type GoogleProfile struct {
	Sub        string
	Email      string
	GivenName  string
	FamilyName string
}

// UserService verifies and creates accounts: local registration and login,
// plus find-or-create for Google sign-in.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates a local account. Each validation failure returns before
// any store write: a short password never reaches the duplicate check, and
// a duplicate username never reaches the insert.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.users.Insert(ctx, &models.User{
		Username:  username,
		Password:  hash,
		CreatedAt: time.Now(),
	})
}

// VerifyLocal checks a username/password pair against the stored hash.
func (s *UserService) VerifyLocal(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, err
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !ok {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// FindOrCreateGoogle returns the account linked to the profile's subject
// id, creating it on first sign-in. The store upsert is atomic, so the
// operation is idempotent under concurrent callbacks.
func (s *UserService) FindOrCreateGoogle(ctx context.Context, profile GoogleProfile) (*models.User, error) {
	return s.users.UpsertByGoogleID(ctx, profile.Sub, profile.Email, models.AuthorName{
		GivenName:  profile.GivenName,
		FamilyName: profile.FamilyName,
	})
}

// FindByID refetches a user by id; the session middleware calls this on
// every request so stale sessions surface as ErrNotFound, not stale data.
func (s *UserService) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}
