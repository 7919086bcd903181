package service_test

import (
	"context"
	"errors"
	"testing"

	"flashcards/backend/internal/repository/mock"
	"flashcards/backend/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStatsService(ctrl *gomock.Controller) (service.StatsService, *mock.MockTopicRepository, *mock.MockEntryRepository, *mock.MockExampleRepository, *mock.MockUserRepository, *mock.MockSessionRepository) {
	topics := mock.NewMockTopicRepository(ctrl)
	entries := mock.NewMockEntryRepository(ctrl)
	examples := mock.NewMockExampleRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	svc := service.NewStatsService(topics, entries, examples, users, sessions)
	return svc, topics, entries, examples, users, sessions
}

func TestStatsService_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, topics, entries, examples, users, sessions := newStatsService(ctrl)

	topics.EXPECT().Count(gomock.Any()).Return(12, nil)
	entries.EXPECT().Count(gomock.Any()).Return(340, nil)
	examples.EXPECT().Count(gomock.Any()).Return(1021, nil)
	users.EXPECT().Count(gomock.Any()).Return(5, nil)
	sessions.EXPECT().CountActive(gomock.Any(), gomock.Any()).Return(3, nil)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.StatsOverview{
		Topics:         12,
		Entries:        340,
		Examples:       1021,
		Users:          5,
		ActiveSessions: 3,
	}, overview)
}

func TestStatsService_Overview_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, topics, entries, examples, users, sessions := newStatsService(ctrl)

	boom := errors.New("db gone")
	topics.EXPECT().Count(gomock.Any()).Return(0, boom)
	entries.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()
	examples.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()
	users.EXPECT().Count(gomock.Any()).Return(0, nil).AnyTimes()
	sessions.EXPECT().CountActive(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	_, err := svc.Overview(context.Background())
	require.ErrorIs(t, err, boom)
}
