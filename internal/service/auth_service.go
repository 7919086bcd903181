package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"flashcards/backend/internal/logger"
	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/service/google"
)

// LoginResult carries the authenticated user together with the raw session
// token. Only the SHA-256 hash of the token is stored.
type LoginResult struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	// LoginWithGoogle verifies a Google ID token, upserts the user and
	// opens a new session for them.
	LoginWithGoogle(ctx context.Context, credential string) (LoginResult, error)
	// ResolveSession maps a raw session token to its user. Returns
	// ErrUnauthorized for unknown, expired or revoked sessions.
	ResolveSession(ctx context.Context, token string) (model.User, error)
	// Logout revokes the session behind the raw token. Unknown tokens are
	// not an error.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	verifier google.Verifier
	users    repository.UserRepository
	sessions repository.SessionRepository
	ttl      time.Duration
}

func NewAuthService(
	verifier google.Verifier,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	ttlDays int,
) AuthService {
	if ttlDays <= 0 {
		ttlDays = 30
	}
	return &authService{
		verifier: verifier,
		users:    users,
		sessions: sessions,
		ttl:      time.Duration(ttlDays) * 24 * time.Hour,
	}
}

func (s *authService) LoginWithGoogle(ctx context.Context, credential string) (LoginResult, error) {
	claims, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		logger.Warn("google token verification failed",
			"module", "auth",
			"action", "login",
			"error", err.Error(),
		)
		return LoginResult{}, fmt.Errorf("%w: %s", ErrGoogleAuth, err)
	}

	now := time.Now().UTC()

	user, err := s.upsertUser(ctx, claims, now)
	if err != nil {
		return LoginResult{}, err
	}

	// Housekeeping: drop this user's dead sessions before opening a new one.
	if err := s.sessions.DeleteDefunctForUser(ctx, user.ID, now); err != nil {
		return LoginResult{}, fmt.Errorf("purge sessions: %w", err)
	}

	token, err := newSessionToken()
	if err != nil {
		return LoginResult{}, err
	}
	expiresAt := now.Add(s.ttl)

	if _, err := s.sessions.Create(ctx, user.ID, hashSessionToken(token), expiresAt); err != nil {
		return LoginResult{}, err
	}

	logger.Info("user logged in",
		"module", "auth",
		"action", "login",
		"resource", user.Email,
		"result", "success",
	)

	return LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) upsertUser(ctx context.Context, claims google.Claims, now time.Time) (model.User, error) {
	existing, err := s.users.FindByGoogleSubOrEmail(ctx, claims.Sub, claims.Email)
	if err != nil {
		return model.User{}, err
	}

	if existing == nil {
		user := model.User{
			GoogleSub:   claims.Sub,
			Email:       claims.Email,
			Name:        claims.Name,
			AvatarURL:   claims.Picture,
			LastLoginAt: &now,
		}
		return s.users.Create(ctx, user)
	}

	existing.GoogleSub = claims.Sub
	existing.Email = claims.Email
	if claims.Name != nil {
		existing.Name = claims.Name
	}
	if claims.Picture != nil {
		existing.AvatarURL = claims.Picture
	}
	existing.LastLoginAt = &now

	if err := s.users.UpdateProfile(ctx, *existing); err != nil {
		return model.User{}, err
	}
	return *existing, nil
}

func (s *authService) ResolveSession(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, ErrUnauthorized
	}

	user, err := s.sessions.FindUserByTokenHash(ctx, hashSessionToken(token), time.Now().UTC())
	if err != nil {
		return model.User{}, err
	}
	if user == nil {
		return model.User{}, ErrUnauthorized
	}
	return *user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, hashSessionToken(token), time.Now().UTC())
}

// newSessionToken returns a 32-byte random token in URL-safe base64.
func newSessionToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func hashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
