package service_test

import (
	"context"
	"testing"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository/mock"
	"flashcards/backend/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setting(key, value string) *model.Setting {
	return &model.Setting{Key: key, Value: value}
}

func TestSettingsService_GetAISettings_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "ai.provider").Return(nil, nil)
	repo.EXPECT().Get(ctx, "ai.api_key").Return(nil, nil)
	repo.EXPECT().Get(ctx, "ai.base_url").Return(nil, nil)
	repo.EXPECT().Get(ctx, "ai.model").Return(nil, nil)

	settings, err := svc.GetAISettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "openai", settings.Provider)
	require.Empty(t, settings.APIKey)
	require.Empty(t, settings.Model)
}

func TestSettingsService_GetAISettings_MasksKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "ai.provider").Return(setting("ai.provider", "anthropic"), nil)
	repo.EXPECT().Get(ctx, "ai.api_key").Return(setting("ai.api_key", "sk-1234567890abcdef"), nil)
	repo.EXPECT().Get(ctx, "ai.base_url").Return(nil, nil)
	repo.EXPECT().Get(ctx, "ai.model").Return(setting("ai.model", "claude-sonnet-4-5"), nil)

	settings, err := svc.GetAISettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "anthropic", settings.Provider)
	require.Equal(t, "sk-***def", settings.APIKey)
	require.Equal(t, "claude-sonnet-4-5", settings.Model)
}

func TestSettingsService_SetAISettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)
	ctx := context.Background()

	repo.EXPECT().Set(ctx, "ai.provider", "openai").Return(nil)
	repo.EXPECT().Set(ctx, "ai.api_key", "sk-new-key-1234567890").Return(nil)
	repo.EXPECT().Set(ctx, "ai.base_url", "").Return(nil)
	repo.EXPECT().Set(ctx, "ai.model", "gpt-4o-mini").Return(nil)

	err := svc.SetAISettings(ctx, &service.AISettings{
		Provider: "openai",
		APIKey:   "sk-new-key-1234567890",
		Model:    "gpt-4o-mini",
	})
	require.NoError(t, err)
}

func TestSettingsService_SetAISettings_KeepsMaskedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)
	ctx := context.Background()

	// A masked key means the client sent the display value back unchanged.
	repo.EXPECT().Set(ctx, "ai.provider", "openai").Return(nil)
	repo.EXPECT().Set(ctx, "ai.base_url", "").Return(nil)
	repo.EXPECT().Set(ctx, "ai.model", "gpt-4o-mini").Return(nil)

	err := svc.SetAISettings(ctx, &service.AISettings{
		Provider: "openai",
		APIKey:   "sk-***def",
		Model:    "gpt-4o-mini",
	})
	require.NoError(t, err)
}

func TestSettingsService_SetAISettings_KeepsKeyWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)
	ctx := context.Background()

	repo.EXPECT().Set(ctx, "ai.provider", "compatible").Return(nil)
	repo.EXPECT().Set(ctx, "ai.base_url", "https://llm.internal/v1").Return(nil)
	repo.EXPECT().Set(ctx, "ai.model", "qwen2.5").Return(nil)

	err := svc.SetAISettings(ctx, &service.AISettings{
		Provider: "compatible",
		BaseURL:  "https://llm.internal/v1",
		Model:    "qwen2.5",
	})
	require.NoError(t, err)
}

func TestSettingsService_TestAI_InvalidProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(repo)

	_, err := svc.TestAI(context.Background(), "bogus", "sk-key", "", "model")
	require.Error(t, err)
}
