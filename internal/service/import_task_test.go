package service_test

import (
	"errors"
	"testing"

	"flashcards/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func TestImportTaskService_Lifecycle(t *testing.T) {
	svc := service.NewImportTaskService()

	require.Nil(t, svc.Get())

	id, ctx := svc.Start(0)
	require.NotEmpty(t, id)
	require.NoError(t, ctx.Err())

	// The total is only known once the CSV is parsed, so it arrives with
	// the progress updates.
	svc.Update(4, 2, "boarding pass")

	task := svc.Get()
	require.NotNil(t, task)
	require.Equal(t, "running", task.Status)
	require.Equal(t, 4, task.Total)
	require.Equal(t, 2, task.Current)
	require.Equal(t, "boarding pass", task.Headword)

	svc.Complete(service.ImportResult{EntriesCreated: 2, RowsTotal: 4})

	task = svc.Get()
	require.Equal(t, "done", task.Status)
	require.Empty(t, task.Headword)
	require.NotNil(t, task.Result)
	require.Equal(t, 2, task.Result.EntriesCreated)

	// Updates after the task finished are ignored.
	svc.Update(4, 3, "stew")
	require.Equal(t, 2, svc.Get().Current)
}

func TestImportTaskService_StartCancelsPrevious(t *testing.T) {
	svc := service.NewImportTaskService()

	_, firstCtx := svc.Start(0)
	secondID, secondCtx := svc.Start(0)

	require.Error(t, firstCtx.Err())
	require.NoError(t, secondCtx.Err())
	require.Equal(t, secondID, svc.Get().ID)
}

func TestImportTaskService_Cancel(t *testing.T) {
	svc := service.NewImportTaskService()

	require.False(t, svc.Cancel())

	_, ctx := svc.Start(0)
	require.True(t, svc.Cancel())
	require.Error(t, ctx.Err())
	require.Equal(t, "cancelled", svc.Get().Status)

	// A finished task cannot be cancelled again.
	require.False(t, svc.Cancel())
}

func TestImportTaskService_Fail(t *testing.T) {
	svc := service.NewImportTaskService()

	svc.Start(0)
	svc.Fail(errors.New("csv malformed"))

	task := svc.Get()
	require.Equal(t, "error", task.Status)
	require.Equal(t, "csv malformed", task.Error)
}
