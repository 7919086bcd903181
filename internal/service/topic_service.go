package service

import (
	"context"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/repository"
)

type TopicService interface {
	List(ctx context.Context) ([]model.Topic, error)
}

type topicService struct {
	topics repository.TopicRepository
}

func NewTopicService(topics repository.TopicRepository) TopicService {
	return &topicService{topics: topics}
}

func (s *topicService) List(ctx context.Context) ([]model.Topic, error) {
	return s.topics.List(ctx)
}
