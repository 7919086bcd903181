package service_test

import (
	"context"
	"strings"
	"testing"

	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/repository/testutil"
	"flashcards/backend/internal/service"

	"github.com/stretchr/testify/require"
)

const sampleCSV = `Topic,Entrie,Meaning_En,Meaning_Es,Example Sentence
Travel,boarding pass,a card allowing you to board,tarjeta de embarque,Show your boarding pass at the gate.
Travel,boarding pass,a card allowing you to board,tarjeta de embarque,Keep your boarding pass handy.
Food,stew,,,The stew simmered all day.
,orphan,,,This row has no topic.
`

func TestImportService_Import(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewImportService(db)
	ctx := context.Background()

	result, err := svc.Import(ctx, strings.NewReader(sampleCSV), nil)
	require.NoError(t, err)
	require.Equal(t, 2, result.TopicsCreated)
	require.Equal(t, 2, result.EntriesCreated)
	require.Equal(t, 0, result.EntriesUpdated)
	require.Equal(t, 2, result.LinksCreated)
	require.Equal(t, 3, result.ExamplesCreated)
	require.Equal(t, 1, result.RowsSkipped)
	require.Equal(t, 4, result.RowsTotal)

	entries := repository.NewEntryRepository(db)
	entry, err := entries.FindByHeadword(ctx, "boarding pass")
	require.NoError(t, err)
	require.NotNil(t, entry)

	examples := repository.NewExampleRepository(db)
	list, err := examples.ListByEntryID(ctx, entry.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, 1, list[0].Rank)
	require.Equal(t, 2, list[1].Rank)
}

func TestImportService_Import_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewImportService(db)
	ctx := context.Background()

	_, err := svc.Import(ctx, strings.NewReader(sampleCSV), nil)
	require.NoError(t, err)

	// A second run finds everything already in place.
	result, err := svc.Import(ctx, strings.NewReader(sampleCSV), nil)
	require.NoError(t, err)
	require.Equal(t, 0, result.TopicsCreated)
	require.Equal(t, 0, result.EntriesCreated)
	require.Equal(t, 0, result.EntriesUpdated)
	require.Equal(t, 0, result.LinksCreated)
	require.Equal(t, 0, result.ExamplesCreated)
}

func TestImportService_Import_UpdatesChangedMeanings(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewImportService(db)
	ctx := context.Background()

	first := "Topic,Entry,Meaning_En,Meaning_Es,Example_Sentence\n" +
		"Food,stew,old meaning,,The stew simmered all day.\n"
	_, err := svc.Import(ctx, strings.NewReader(first), nil)
	require.NoError(t, err)

	second := "Topic,Entry,Meaning_En,Meaning_Es,Example_Sentence\n" +
		"Food,stew,a dish of slow-cooked meat,guiso,The stew simmered all day.\n"
	result, err := svc.Import(ctx, strings.NewReader(second), nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.EntriesUpdated)
	require.Equal(t, 0, result.ExamplesCreated)

	entries := repository.NewEntryRepository(db)
	entry, err := entries.FindByHeadword(ctx, "stew")
	require.NoError(t, err)
	require.NotNil(t, entry.MeaningEN)
	require.Equal(t, "a dish of slow-cooked meat", *entry.MeaningEN)
	require.NotNil(t, entry.MeaningES)
	require.Equal(t, "guiso", *entry.MeaningES)
}

func TestImportService_Import_StripsHTML(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewImportService(db)
	ctx := context.Background()

	csv := "Topic,Entry,Meaning_En,Meaning_Es,Example_Sentence\n" +
		"Food,stew,<b>a hearty dish</b>,,<script>alert(1)</script>The stew simmered.\n"
	_, err := svc.Import(ctx, strings.NewReader(csv), nil)
	require.NoError(t, err)

	entries := repository.NewEntryRepository(db)
	entry, err := entries.FindByHeadword(ctx, "stew")
	require.NoError(t, err)
	require.Equal(t, "a hearty dish", *entry.MeaningEN)

	examples := repository.NewExampleRepository(db)
	list, err := examples.ListByEntryID(ctx, entry.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "The stew simmered.", list[0].TextEN)
}

func TestImportService_Import_MissingColumns(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewImportService(db)

	_, err := svc.Import(context.Background(), strings.NewReader("Word,Definition\nfoo,bar\n"), nil)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestImportService_Import_CancelledContextRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewImportService(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Import(ctx, strings.NewReader(sampleCSV), nil)
	require.Error(t, err)

	topics := repository.NewTopicRepository(db)
	count, err := topics.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestImportService_Import_ReportsProgress(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewImportService(db)

	var updates []service.ImportProgress
	_, err := svc.Import(context.Background(), strings.NewReader(sampleCSV), func(p service.ImportProgress) {
		updates = append(updates, p)
	})
	require.NoError(t, err)
	require.NotEmpty(t, updates)
	require.Equal(t, "started", updates[0].Status)
	last := updates[len(updates)-1]
	require.Equal(t, 3, last.Current)
	require.Equal(t, 4, last.Total)
}
