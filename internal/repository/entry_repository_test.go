package repository_test

import (
	"context"
	"testing"
	"time"

	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestEntryRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	meaningEN := "a pass allowing a passenger to board"
	entry, err := repo.Create(ctx, "boarding pass", &meaningEN, nil)
	require.NoError(t, err)
	require.NotZero(t, entry.ID)

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.Equal(t, "boarding pass", fetched.Headword)
	require.NotNil(t, fetched.MeaningEN)
	require.Equal(t, meaningEN, *fetched.MeaningEN)
	require.Nil(t, fetched.MeaningES)
}

func TestEntryRepository_FindByHeadword_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Boarding Pass", nil, nil)
	require.NoError(t, err)

	found, err := repo.FindByHeadword(ctx, "boarding pass")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, created.ID, found.ID)

	missing, err := repo.FindByHeadword(ctx, "luggage")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestEntryRepository_List_Filters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	travelID := testutil.SeedTopic(t, db, "Travel", false)
	foodID := testutil.SeedTopic(t, db, "Food", false)

	en1 := "a pass allowing a passenger to board"
	e1 := testutil.SeedEntry(t, db, "boarding pass", &en1, nil)
	e2 := testutil.SeedEntry(t, db, "stew", nil, nil)
	testutil.AttachTopicEntry(t, db, travelID, e1)
	testutil.AttachTopicEntry(t, db, foodID, e2)

	// By topic
	entries, err := repo.List(ctx, repository.EntryListFilter{TopicID: &travelID})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, e1, entries[0].ID)

	// Substring query matches headword and meanings, case-insensitively
	entries, err = repo.List(ctx, repository.EntryListFilter{Query: "PASSENGER"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, e1, entries[0].ID)

	// Limit
	entries, err = repo.List(ctx, repository.EntryListFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// No filter returns all, ordered by id
	entries, err = repo.List(ctx, repository.EntryListFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, e1, entries[0].ID)
	require.Equal(t, e2, entries[1].ID)
}

func TestEntryRepository_Search_Ranking(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	topicID := testutil.SeedTopic(t, db, "Travel", false)

	e1 := testutil.SeedEntry(t, db, "bookcase", nil, nil)
	e2 := testutil.SeedEntry(t, db, "book", nil, nil)
	e3 := testutil.SeedEntry(t, db, "booking", nil, nil)
	testutil.AttachTopicEntry(t, db, topicID, e1)
	testutil.AttachTopicEntry(t, db, topicID, e2)
	testutil.AttachTopicEntry(t, db, topicID, e3)

	hits, err := repo.Search(ctx, "book", 10)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	// Exact match first, then shorter headwords.
	require.Equal(t, "book", hits[0].Entry.Headword)
	require.Equal(t, "booking", hits[1].Entry.Headword)
	require.Equal(t, "bookcase", hits[2].Entry.Headword)
}

func TestEntryRepository_Search_PrimaryTopicSkipsMixed(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	mixedID := testutil.SeedTopic(t, db, "Mixed", false)
	travelID := testutil.SeedTopic(t, db, "Travel", false)

	entryID := testutil.SeedEntry(t, db, "boarding pass", nil, nil)
	testutil.AttachTopicEntry(t, db, mixedID, entryID)
	testutil.AttachTopicEntry(t, db, travelID, entryID)

	hits, err := repo.Search(ctx, "boarding", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.ElementsMatch(t, []int64{mixedID, travelID}, hits[0].TopicIDs)
	require.NotNil(t, hits[0].PrimaryTopic)
	require.Equal(t, travelID, hits[0].PrimaryTopic.ID)
	require.Equal(t, "Travel", hits[0].PrimaryTopic.Name)
}

func TestEntryRepository_Search_PrimaryTopicFallsBackToMixed(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	mixedID := testutil.SeedTopic(t, db, "mixed", false)
	entryID := testutil.SeedEntry(t, db, "thing", nil, nil)
	testutil.AttachTopicEntry(t, db, mixedID, entryID)

	hits, err := repo.Search(ctx, "thing", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.NotNil(t, hits[0].PrimaryTopic)
	require.Equal(t, mixedID, hits[0].PrimaryTopic.ID)
}

func TestEntryRepository_Search_ExcludesTopiclessEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	testutil.SeedEntry(t, db, "orphan", nil, nil)

	hits, err := repo.Search(ctx, "orphan", 10)
	require.NoError(t, err)
	require.Empty(t, hits)
}

func TestEntryRepository_UpdateMeanings(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEntryRepository(db)
	ctx := context.Background()

	oldEN := "old meaning"
	entry, err := repo.Create(ctx, "stew", &oldEN, nil)
	require.NoError(t, err)

	newEN := "a dish of slow-cooked meat and vegetables"
	newES := "guiso"
	err = repo.UpdateMeanings(ctx, entry.ID, &newEN, &newES)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.Equal(t, newEN, *fetched.MeaningEN)
	require.Equal(t, newES, *fetched.MeaningES)

	// Nil fields are left untouched
	err = repo.UpdateMeanings(ctx, entry.ID, nil, nil)
	require.NoError(t, err)
	fetched, err = repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.Equal(t, newEN, *fetched.MeaningEN)
}

func TestParseTimePtr(t *testing.T) {
	require.Nil(t, repository.ParseTimePtr(""))

	ts := "2025-01-04T12:34:56Z"
	got := repository.ParseTimePtr(ts)
	require.NotNil(t, got)
	require.Equal(t, ts, got.UTC().Format(time.RFC3339))
}
