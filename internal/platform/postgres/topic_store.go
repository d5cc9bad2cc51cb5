package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the TopicStore interface.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	topics := []domain.Topic{}
	err := sqlx.SelectContext(ctx, s.db, &topics,
		`SELECT slug, description FROM topics ORDER BY slug`)
	if err != nil {
		log.Error("failed to list topics", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return topics, nil
}

// Exists implements store.TopicStore.Exists
func (s *PostgresTopicStore) Exists(ctx context.Context, slug string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := sqlx.GetContext(ctx, s.db, &exists,
		`SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`, slug)
	if err != nil {
		log.Error("failed to check topic existence",
			slog.String("error", err.Error()),
			slog.String("topic", slug))
		return MapError(err)
	}
	if !exists {
		log.Debug("topic not found", slog.String("topic", slug))
		return store.ErrTopicNotFound
	}
	return nil
}
