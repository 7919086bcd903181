package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository"
)

const (
	defaultListLimit = 200
	maxListLimit     = 2000

	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

type EntryListParams struct {
	TopicID *int64
	Query   string
	Limit   int
}

// EntryDetail is an entry together with its example sentences.
type EntryDetail struct {
	Entry    model.Entry
	Examples []model.Example
}

type EntryService interface {
	List(ctx context.Context, params EntryListParams) ([]model.Entry, error)
	Search(ctx context.Context, query string, limit int) ([]model.SearchHit, error)
	GetDetail(ctx context.Context, id int64) (EntryDetail, error)
}

type entryService struct {
	entries  repository.EntryRepository
	topics   repository.TopicRepository
	examples repository.ExampleRepository
}

func NewEntryService(
	entries repository.EntryRepository,
	topics repository.TopicRepository,
	examples repository.ExampleRepository,
) EntryService {
	return &entryService{
		entries:  entries,
		topics:   topics,
		examples: examples,
	}
}

func (s *entryService) List(ctx context.Context, params EntryListParams) ([]model.Entry, error) {
	// Validate topicID exists if provided
	if params.TopicID != nil {
		_, err := s.topics.GetByID(ctx, *params.TopicID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	filter := repository.EntryListFilter{
		TopicID: params.TopicID,
		Query:   strings.TrimSpace(params.Query),
		Limit:   limit,
	}

	return s.entries.List(ctx, filter)
}

func (s *entryService) Search(ctx context.Context, query string, limit int) ([]model.SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalid
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	return s.entries.Search(ctx, query, limit)
}

func (s *entryService) GetDetail(ctx context.Context, id int64) (EntryDetail, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EntryDetail{}, ErrNotFound
		}
		return EntryDetail{}, err
	}

	examples, err := s.examples.ListByEntryID(ctx, id)
	if err != nil {
		return EntryDetail{}, err
	}

	return EntryDetail{Entry: entry, Examples: examples}, nil
}
