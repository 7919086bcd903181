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

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (model.User, error)
	FindByGoogleSubOrEmail(ctx context.Context, googleSub, email string) (*model.User, error)
	Create(ctx context.Context, user model.User) (model.User, error)
	UpdateProfile(ctx context.Context, user model.User) error
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	db dbtx
}

func NewUserRepository(db dbtx) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, google_sub, email, name, avatar_url, created_at, last_login_at`

func (r *userRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *userRepository) FindByGoogleSubOrEmail(ctx context.Context, googleSub, email string) (*model.User, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+userColumns+` FROM users WHERE google_sub = ? OR email = ?`,
		googleSub,
		email,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	user.ID = snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (id, google_sub, email, name, avatar_url, created_at, last_login_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.GoogleSub,
		user.Email,
		nullableString(user.Name),
		nullableString(user.AvatarURL),
		formatTime(now),
		nullableTime(user.LastLoginAt),
	)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	user.CreatedAt = now
	return user, nil
}

// UpdateProfile refreshes the Google-provided fields and last login stamp.
func (r *userRepository) UpdateProfile(ctx context.Context, user model.User) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE users SET google_sub = ?, email = ?, name = ?, avatar_url = ?, last_login_at = ? WHERE id = ?`,
		user.GoogleSub,
		user.Email,
		nullableString(user.Name),
		nullableString(user.AvatarURL),
		nullableTime(user.LastLoginAt),
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	var name, avatarURL sql.NullString
	var createdAt string
	var lastLoginAt sql.NullString

	err := row.Scan(&u.ID, &u.GoogleSub, &u.Email, &name, &avatarURL, &createdAt, &lastLoginAt)
	if err != nil {
		return model.User{}, err
	}

	u.Name = stringPtrFromNull(name)
	u.AvatarURL = stringPtrFromNull(avatarURL)
	u.CreatedAt, _ = parseTime(createdAt)
	if lastLoginAt.Valid {
		u.LastLoginAt = ParseTimePtr(lastLoginAt.String)
	}

	return u, nil
}
