package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// TopicStore defines the interface for topic data access.
type TopicStore interface {
	// List returns every topic ordered by slug.
	List(ctx context.Context) ([]domain.Topic, error)

	// Exists returns nil if the topic exists and ErrTopicNotFound otherwise.
	Exists(ctx context.Context, slug string) error
}
