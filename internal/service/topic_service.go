package service

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
)

// TopicService provides topic operations.
type TopicService interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
}

type topicService struct {
	topics store.TopicStore
}

// NewTopicService creates a TopicService. It panics if topics is nil.
func NewTopicService(topics store.TopicStore) TopicService {
	if topics == nil {
		panic("topic service requires a topic store")
	}
	return &topicService{topics: topics}
}

func (s *topicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, wrap("topic", "list_topics", err)
	}
	return topics, nil
}
