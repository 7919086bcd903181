package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"flashcards/backend/internal/logger"
	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository"
	"flashcards/backend/internal/service/ai"
)

// ErrAINotConfigured is returned when no AI provider has been set up.
var ErrAINotConfigured = errors.New("ai provider not configured")

const defaultGeneratedExamples = 3

// AIService generates example sentences for entries.
type AIService interface {
	// GenerateExamples asks the configured provider for count example
	// sentences, appends the new ones to the entry and returns them.
	// Sentences already present on the entry are skipped.
	GenerateExamples(ctx context.Context, entryID int64, count int) ([]model.Example, error)
}

type aiService struct {
	entries     repository.EntryRepository
	examples    repository.ExampleRepository
	settings    repository.SettingsRepository
	rateLimiter *ai.RateLimiter
}

func NewAIService(
	entries repository.EntryRepository,
	examples repository.ExampleRepository,
	settings repository.SettingsRepository,
	rateLimiter *ai.RateLimiter,
) AIService {
	return &aiService{
		entries:     entries,
		examples:    examples,
		settings:    settings,
		rateLimiter: rateLimiter,
	}
}

func (s *aiService) GenerateExamples(ctx context.Context, entryID int64, count int) ([]model.Example, error) {
	if count <= 0 {
		count = defaultGeneratedExamples
	}
	if count > 10 {
		count = 10
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cfg, err := s.getAIConfig(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := ai.NewProvider(cfg)
	if err != nil {
		logger.Warn("ai provider create failed", "module", "service", "action", "generate", "resource", "ai", "result", "failed", "provider", cfg.Provider, "model", cfg.Model, "error", err)
		return nil, fmt.Errorf("create provider: %w", err)
	}

	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	meaning := ""
	if entry.MeaningEN != nil {
		meaning = *entry.MeaningEN
	}
	systemPrompt := ai.GetExamplesPrompt(entry.Headword, meaning, count)

	output, err := provider.Complete(ctx, systemPrompt, entry.Headword)
	if err != nil {
		logger.Warn("ai example generation failed", "module", "service", "action", "generate", "resource", "ai", "result", "failed", "entry_id", entryID, "error", err)
		return nil, fmt.Errorf("generate examples: %w", err)
	}

	sentences := ai.ParseSentences(output)
	if len(sentences) > count {
		sentences = sentences[:count]
	}

	rank, err := s.examples.MaxRank(ctx, entryID)
	if err != nil {
		return nil, err
	}

	var created []model.Example
	for _, sentence := range sentences {
		exists, err := s.examples.ExistsText(ctx, entryID, sentence)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		rank++
		example, err := s.examples.Create(ctx, entryID, sentence, rank)
		if err != nil {
			return nil, err
		}
		created = append(created, example)
	}

	logger.Info("ai examples generated", "module", "service", "action", "generate", "resource", "ai", "result", "ok", "entry_id", entryID, "count", len(created))
	return created, nil
}

func (s *aiService) getAIConfig(ctx context.Context) (ai.Config, error) {
	var cfg ai.Config

	settings, err := s.settings.GetByPrefix(ctx, "ai.")
	if err != nil {
		return cfg, fmt.Errorf("get ai settings: %w", err)
	}

	settingsMap := make(map[string]string, len(settings))
	for _, setting := range settings {
		settingsMap[setting.Key] = setting.Value
	}

	cfg.Provider = settingsMap[keyAIProvider]
	cfg.APIKey = settingsMap[keyAIAPIKey]
	cfg.BaseURL = settingsMap[keyAIBaseURL]
	cfg.Model = settingsMap[keyAIModel]

	if cfg.Provider == "" || cfg.APIKey == "" || cfg.Model == "" {
		return cfg, ErrAINotConfigured
	}
	return cfg, nil
}
