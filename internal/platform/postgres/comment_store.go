package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

const commentColumns = `comment_id, body, article_id, author, votes, created_at`

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle
func (s *PostgresCommentStore) ListByArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC
	`

	comments := []domain.Comment{}
	if err := sqlx.SelectContext(ctx, s.db, &comments, query, articleID); err != nil {
		log.Error("failed to list comments",
			slog.String("error", err.Error()),
			slog.Int("article_id", articleID))
		return nil, MapError(err)
	}

	log.Debug("listed comments",
		slog.Int("article_id", articleID),
		slog.Int("count", len(comments)))
	return comments, nil
}

// Create implements store.CommentStore.Create
// Returns store.ErrInvalidReference if the author or article doesn't exist (foreign key violation).
func (s *PostgresCommentStore) Create(ctx context.Context, c domain.NewComment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := c.Validate(); err != nil {
		log.Debug("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.Int("article_id", c.ArticleID))
		return nil, err
	}

	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	var comment domain.Comment
	if err := sqlx.GetContext(ctx, s.db, &comment, query, c.ArticleID, c.Author, c.Body); err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("foreign key violation during comment creation",
				slog.String("error", err.Error()),
				slog.Int("article_id", c.ArticleID),
				slog.String("author", c.Author))
		} else {
			log.Error("failed to create comment",
				slog.String("error", err.Error()),
				slog.Int("article_id", c.ArticleID),
				slog.String("author", c.Author))
		}
		return nil, MapError(err)
	}

	log.Info("comment created",
		slog.Int("comment_id", comment.ID),
		slog.Int("article_id", comment.ArticleID),
		slog.String("author", comment.Author))
	return &comment, nil
}

// AddVotes implements store.CommentStore.AddVotes
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) AddVotes(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns

	var comment domain.Comment
	if err := sqlx.GetContext(ctx, s.db, &comment, query, delta, id); err != nil {
		err = mapNotFound(err, store.ErrCommentNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("comment not found for vote", slog.Int("comment_id", id))
		} else {
			log.Error("failed to update comment votes",
				slog.String("error", err.Error()),
				slog.Int("comment_id", id),
				slog.Int("delta", delta))
		}
		return nil, err
	}

	log.Debug("comment votes updated",
		slog.Int("comment_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", comment.Votes))
	return &comment, nil
}

// Delete implements store.CommentStore.Delete
func (s *PostgresCommentStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int("comment_id", id))
		return MapError(err)
	}

	// A missing row is not an error; the count is only logged.
	rows, err := result.RowsAffected()
	if err == nil {
		log.Debug("comment delete executed",
			slog.Int("comment_id", id),
			slog.Int64("rows_affected", rows))
	}
	return nil
}
