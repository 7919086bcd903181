package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/snowflake"
)

type SessionRepository interface {
	Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (model.Session, error)
	// FindUserByTokenHash resolves a token hash to its user. Returns nil if
	// the session does not exist, is revoked, or expired at the given time.
	FindUserByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*model.User, error)
	Revoke(ctx context.Context, tokenHash string, now time.Time) error
	DeleteDefunctForUser(ctx context.Context, userID int64, now time.Time) error
	DeleteDefunct(ctx context.Context, now time.Time) (int64, error)
	CountActive(ctx context.Context, now time.Time) (int, error)
}

type sessionRepository struct {
	db dbtx
}

func NewSessionRepository(db dbtx) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (model.Session, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO user_sessions (id, user_id, token_hash, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		id,
		userID,
		tokenHash,
		formatTime(now),
		formatTime(expiresAt),
	)
	if err != nil {
		return model.Session{}, fmt.Errorf("create session: %w", err)
	}

	return model.Session{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		CreatedAt: now,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

func (r *sessionRepository) FindUserByTokenHash(ctx context.Context, tokenHash string, now time.Time) (*model.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT u.id, u.google_sub, u.email, u.name, u.avatar_url, u.created_at, u.last_login_at
		 FROM users u
		 INNER JOIN user_sessions s ON s.user_id = u.id
		 WHERE s.token_hash = ? AND s.revoked_at IS NULL AND s.expires_at > ?`,
		tokenHash,
		formatTime(now),
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find session user: %w", err)
	}
	return &user, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, tokenHash string, now time.Time) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE user_sessions SET revoked_at = ? WHERE token_hash = ? AND revoked_at IS NULL`,
		formatTime(now),
		tokenHash,
	)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// DeleteDefunctForUser removes a user's expired or revoked sessions, as done
// on each login.
func (r *sessionRepository) DeleteDefunctForUser(ctx context.Context, userID int64, now time.Time) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM user_sessions WHERE user_id = ? AND (expires_at <= ? OR revoked_at IS NOT NULL)`,
		userID,
		formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("delete defunct sessions: %w", err)
	}
	return nil
}

// DeleteDefunct removes expired or revoked sessions service-wide. Used by
// the background scheduler.
func (r *sessionRepository) DeleteDefunct(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`DELETE FROM user_sessions WHERE expires_at <= ? OR revoked_at IS NOT NULL`,
		formatTime(now),
	)
	if err != nil {
		return 0, fmt.Errorf("delete defunct sessions: %w", err)
	}
	return res.RowsAffected()
}

func (r *sessionRepository) CountActive(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM user_sessions WHERE revoked_at IS NULL AND expires_at > ?`,
		formatTime(now),
	).Scan(&count)
	return count, err
}
