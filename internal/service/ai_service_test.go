package service_test

import (
	"context"
	"database/sql"
	"testing"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository/mock"
	"flashcards/backend/internal/service"
	"flashcards/backend/internal/service/ai"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAIService(t *testing.T) (service.AIService, *mock.MockEntryRepository, *mock.MockExampleRepository, *mock.MockSettingsRepository) {
	ctrl := gomock.NewController(t)
	mockEntries := mock.NewMockEntryRepository(ctrl)
	mockExamples := mock.NewMockExampleRepository(ctrl)
	mockSettings := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewAIService(mockEntries, mockExamples, mockSettings, ai.NewRateLimiter(ai.DefaultRateLimit))
	return svc, mockEntries, mockExamples, mockSettings
}

func TestAIService_GenerateExamples_EntryNotFound(t *testing.T) {
	svc, mockEntries, _, _ := newAIService(t)
	ctx := context.Background()

	mockEntries.EXPECT().
		GetByID(ctx, int64(7)).
		Return(model.Entry{}, sql.ErrNoRows)

	_, err := svc.GenerateExamples(ctx, 7, 3)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestAIService_GenerateExamples_NotConfigured(t *testing.T) {
	svc, mockEntries, _, mockSettings := newAIService(t)
	ctx := context.Background()

	mockEntries.EXPECT().
		GetByID(ctx, int64(7)).
		Return(model.Entry{ID: 7, Headword: "stew"}, nil)
	mockSettings.EXPECT().
		GetByPrefix(ctx, "ai.").
		Return([]model.Setting{
			{Key: "ai.provider", Value: "openai"},
		}, nil)

	_, err := svc.GenerateExamples(ctx, 7, 3)
	require.ErrorIs(t, err, service.ErrAINotConfigured)
}

func TestAIService_GenerateExamples_UnknownProvider(t *testing.T) {
	svc, mockEntries, _, mockSettings := newAIService(t)
	ctx := context.Background()

	mockEntries.EXPECT().
		GetByID(ctx, int64(7)).
		Return(model.Entry{ID: 7, Headword: "stew"}, nil)
	mockSettings.EXPECT().
		GetByPrefix(ctx, "ai.").
		Return([]model.Setting{
			{Key: "ai.provider", Value: "bogus"},
			{Key: "ai.api_key", Value: "sk-key"},
			{Key: "ai.model", Value: "some-model"},
		}, nil)

	_, err := svc.GenerateExamples(ctx, 7, 3)
	require.ErrorIs(t, err, ai.ErrInvalidProvider)
}
