package repository_test

import (
	"context"
	"testing"

	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestExampleRepository_ListByEntryID_OrderedByRank(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExampleRepository(db)
	ctx := context.Background()

	entryID := testutil.SeedEntry(t, db, "boarding pass", nil, nil)
	testutil.SeedExample(t, db, entryID, "Second sentence.", 2)
	testutil.SeedExample(t, db, entryID, "First sentence.", 1)

	examples, err := repo.ListByEntryID(ctx, entryID)
	require.NoError(t, err)
	require.Len(t, examples, 2)
	require.Equal(t, "First sentence.", examples[0].TextEN)
	require.Equal(t, "Second sentence.", examples[1].TextEN)
}

func TestExampleRepository_ExistsText(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExampleRepository(db)
	ctx := context.Background()

	entryID := testutil.SeedEntry(t, db, "stew", nil, nil)
	testutil.SeedExample(t, db, entryID, "The stew simmered all day.", 1)

	exists, err := repo.ExistsText(ctx, entryID, "The stew simmered all day.")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.ExistsText(ctx, entryID, "Another sentence.")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestExampleRepository_MaxRank(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExampleRepository(db)
	ctx := context.Background()

	entryID := testutil.SeedEntry(t, db, "stew", nil, nil)

	max, err := repo.MaxRank(ctx, entryID)
	require.NoError(t, err)
	require.Equal(t, 0, max)

	testutil.SeedExample(t, db, entryID, "One.", 1)
	testutil.SeedExample(t, db, entryID, "Three.", 3)

	max, err = repo.MaxRank(ctx, entryID)
	require.NoError(t, err)
	require.Equal(t, 3, max)
}

func TestExampleRepository_CascadeDeleteWithEntry(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExampleRepository(db)
	ctx := context.Background()

	entryID := testutil.SeedEntry(t, db, "stew", nil, nil)
	testutil.SeedExample(t, db, entryID, "One.", 1)

	_, err := db.Exec(`DELETE FROM entries WHERE id = ?`, entryID)
	require.NoError(t, err)

	examples, err := repo.ListByEntryID(ctx, entryID)
	require.NoError(t, err)
	require.Empty(t, examples)
}
