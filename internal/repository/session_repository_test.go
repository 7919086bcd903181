package repository_test

import (
	"context"
	"testing"
	"time"

	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestSessionRepository_FindUserByTokenHash(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	userID := testutil.SeedUser(t, db, "sub-1", "a@example.com")
	testutil.SeedSession(t, db, userID, "hash-1", now.Add(time.Hour))

	user, err := repo.FindUserByTokenHash(ctx, "hash-1", now)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, userID, user.ID)

	// Unknown hash
	user, err = repo.FindUserByTokenHash(ctx, "hash-unknown", now)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestSessionRepository_ExpiredSessionNotResolved(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	userID := testutil.SeedUser(t, db, "sub-1", "a@example.com")
	testutil.SeedSession(t, db, userID, "hash-1", now.Add(-time.Minute))

	user, err := repo.FindUserByTokenHash(ctx, "hash-1", now)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestSessionRepository_Revoke(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	userID := testutil.SeedUser(t, db, "sub-1", "a@example.com")
	testutil.SeedSession(t, db, userID, "hash-1", now.Add(time.Hour))

	require.NoError(t, repo.Revoke(ctx, "hash-1", now))

	user, err := repo.FindUserByTokenHash(ctx, "hash-1", now)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestSessionRepository_DeleteDefunct(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	userID := testutil.SeedUser(t, db, "sub-1", "a@example.com")
	testutil.SeedSession(t, db, userID, "live", now.Add(time.Hour))
	testutil.SeedSession(t, db, userID, "expired", now.Add(-time.Hour))
	testutil.SeedSession(t, db, userID, "revoked", now.Add(time.Hour))
	require.NoError(t, repo.Revoke(ctx, "revoked", now))

	deleted, err := repo.DeleteDefunct(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	count, err := repo.CountActive(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSessionRepository_DeleteDefunctForUser_ScopedToUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	user1 := testutil.SeedUser(t, db, "sub-1", "a@example.com")
	user2 := testutil.SeedUser(t, db, "sub-2", "b@example.com")
	testutil.SeedSession(t, db, user1, "u1-expired", now.Add(-time.Hour))
	testutil.SeedSession(t, db, user2, "u2-expired", now.Add(-time.Hour))

	require.NoError(t, repo.DeleteDefunctForUser(ctx, user1, now))

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM user_sessions`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
