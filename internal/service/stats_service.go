package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"flashcards/backend/internal/repository"
)

// StatsOverview aggregates table counts for the admin overview.
type StatsOverview struct {
	Topics         int `json:"topics"`
	Entries        int `json:"entries"`
	Examples       int `json:"examples"`
	Users          int `json:"users"`
	ActiveSessions int `json:"activeSessions"`
}

type StatsService interface {
	Overview(ctx context.Context) (StatsOverview, error)
}

type statsService struct {
	topics   repository.TopicRepository
	entries  repository.EntryRepository
	examples repository.ExampleRepository
	users    repository.UserRepository
	sessions repository.SessionRepository
}

func NewStatsService(
	topics repository.TopicRepository,
	entries repository.EntryRepository,
	examples repository.ExampleRepository,
	users repository.UserRepository,
	sessions repository.SessionRepository,
) StatsService {
	return &statsService{
		topics:   topics,
		entries:  entries,
		examples: examples,
		users:    users,
		sessions: sessions,
	}
}

func (s *statsService) Overview(ctx context.Context) (StatsOverview, error) {
	var overview StatsOverview
	now := time.Now().UTC()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.Topics, err = s.topics.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Entries, err = s.entries.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Examples, err = s.examples.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.Users, err = s.users.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		overview.ActiveSessions, err = s.sessions.CountActive(ctx, now)
		return err
	})

	if err := g.Wait(); err != nil {
		return StatsOverview{}, err
	}
	return overview, nil
}
