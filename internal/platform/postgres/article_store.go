package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the ArticleStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// List implements store.ArticleStore.List
func (s *PostgresArticleStore) List(
	ctx context.Context,
	q domain.ArticleQuery,
) ([]domain.ArticleSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildListArticlesQuery(q)
	if err != nil {
		return nil, err
	}

	articles := []domain.ArticleSummary{}
	if err := sqlx.SelectContext(ctx, s.db, &articles, query, args...); err != nil {
		log.Error("failed to list articles",
			slog.String("error", err.Error()),
			slog.String("sort_by", string(q.SortBy)),
			slog.String("order", string(q.Order)),
			slog.String("topic", q.Topic))
		return nil, MapError(err)
	}

	log.Debug("listed articles",
		slog.Int("count", len(articles)),
		slog.String("sort_by", string(q.SortBy)),
		slog.String("order", string(q.Order)),
		slog.String("topic", q.Topic))
	return articles, nil
}

// GetByID implements store.ArticleStore.GetByID
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes,
		       COUNT(c.comment_id) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`

	var article domain.Article
	if err := sqlx.GetContext(ctx, s.db, &article, query, id); err != nil {
		err = mapNotFound(err, store.ErrArticleNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("article not found", slog.Int("article_id", id))
		} else {
			log.Error("failed to get article",
				slog.String("error", err.Error()),
				slog.Int("article_id", id))
		}
		return nil, err
	}

	return &article, nil
}

// Exists implements store.ArticleStore.Exists
func (s *PostgresArticleStore) Exists(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := sqlx.GetContext(ctx, s.db, &exists,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, id)
	if err != nil {
		log.Error("failed to check article existence",
			slog.String("error", err.Error()),
			slog.Int("article_id", id))
		return MapError(err)
	}
	if !exists {
		log.Debug("article not found", slog.Int("article_id", id))
		return store.ErrArticleNotFound
	}
	return nil
}

// AddVotes implements store.ArticleStore.AddVotes
// The increment happens inside the UPDATE, so concurrent votes never
// overwrite each other.
func (s *PostgresArticleStore) AddVotes(ctx context.Context, id int, delta int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		WITH updated AS (
			UPDATE articles
			SET votes = votes + $1
			WHERE article_id = $2
			RETURNING article_id, title, topic, author, body, created_at, votes
		)
		SELECT u.article_id, u.title, u.topic, u.author, u.body, u.created_at, u.votes,
		       (SELECT COUNT(*) FROM comments c WHERE c.article_id = u.article_id) AS comment_count
		FROM updated u
	`

	var article domain.Article
	if err := sqlx.GetContext(ctx, s.db, &article, query, delta, id); err != nil {
		err = mapNotFound(err, store.ErrArticleNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("article not found for vote", slog.Int("article_id", id))
		} else {
			log.Error("failed to update article votes",
				slog.String("error", err.Error()),
				slog.Int("article_id", id),
				slog.Int("delta", delta))
		}
		return nil, err
	}

	log.Debug("article votes updated",
		slog.Int("article_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", article.Votes))
	return &article, nil
}
