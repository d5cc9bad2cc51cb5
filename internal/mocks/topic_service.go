package mocks

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// MockTopicService implements service.TopicService for testing
type MockTopicService struct {
	ListTopicsFn func(ctx context.Context) ([]domain.Topic, error)

	Topics       []domain.Topic
	DefaultError error
}

// ListTopics implements the TopicService.ListTopics method
func (m *MockTopicService) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	if m.ListTopicsFn != nil {
		return m.ListTopicsFn(ctx)
	}
	return m.Topics, m.DefaultError
}
