package repository_test

import (
	"context"
	"testing"
	"time"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	name := "Ada"
	created, err := repo.Create(ctx, model.User{
		GoogleSub: "sub-1",
		Email:     "ada@example.com",
		Name:      &name,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	// Match by sub
	found, err := repo.FindByGoogleSubOrEmail(ctx, "sub-1", "other@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	// Match by email with a different sub (account re-link)
	found, err = repo.FindByGoogleSubOrEmail(ctx, "sub-other", "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	// No match
	found, err = repo.FindByGoogleSubOrEmail(ctx, "sub-x", "x@example.com")
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.User{GoogleSub: "sub-1", Email: "a@example.com"})
	require.NoError(t, err)

	name := "Ada Lovelace"
	avatar := "https://example.com/avatar.png"
	lastLogin := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	created.Name = &name
	created.AvatarURL = &avatar
	created.LastLoginAt = &lastLogin

	require.NoError(t, repo.UpdateProfile(ctx, created))

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Name)
	require.Equal(t, name, *fetched.Name)
	require.NotNil(t, fetched.AvatarURL)
	require.Equal(t, avatar, *fetched.AvatarURL)
	require.NotNil(t, fetched.LastLoginAt)
	require.Equal(t, lastLogin, fetched.LastLoginAt.UTC())
}
