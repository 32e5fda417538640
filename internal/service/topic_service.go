package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// topicService implements TopicService
type topicService struct {
	topics repository.TopicRepository
	log    zerolog.Logger
}

func newTopicService(topics repository.TopicRepository, log zerolog.Logger) *topicService {
	return &topicService{
		topics: topics,
		log:    log.With().Str("service", "topic").Logger(),
	}
}

// List returns all topics
func (s *topicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}
