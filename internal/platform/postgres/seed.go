package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// Dataset is a complete set of rows for the four news tables. Articles are
// inserted in slice order, so the first article receives article_id 1.
type Dataset struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []domain.Article
	Comments []domain.Comment
}

const (
	truncateAll = `TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`

	insertTopics = `INSERT INTO topics (slug, description) VALUES (:slug, :description)`

	insertUsers = `INSERT INTO users (username, name, avatar_url) VALUES (:username, :name, :avatar_url)`

	insertArticles = `
		INSERT INTO articles (title, topic, author, body, created_at, votes)
		VALUES (:title, :topic, :author, :body, :created_at, :votes)`

	insertComments = `
		INSERT INTO comments (body, article_id, author, votes, created_at)
		VALUES (:body, :article_id, :author, :votes, :created_at)`
)

// Seed replaces the contents of every news table with data inside a single
// transaction. Identity sequences restart, so generated IDs are repeatable.
func Seed(ctx context.Context, db *sqlx.DB, data Dataset) error {
	log := logger.FromContext(ctx).With(slog.String("component", "seed"))

	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, truncateAll); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}

		steps := []struct {
			table string
			query string
			rows  any
			count int
		}{
			{"topics", insertTopics, data.Topics, len(data.Topics)},
			{"users", insertUsers, data.Users, len(data.Users)},
			{"articles", insertArticles, data.Articles, len(data.Articles)},
			{"comments", insertComments, data.Comments, len(data.Comments)},
		}

		for _, step := range steps {
			if step.count == 0 {
				continue
			}
			if _, err := tx.NamedExecContext(ctx, step.query, step.rows); err != nil {
				return fmt.Errorf("failed to insert %s: %w", step.table, MapError(err))
			}
			log.Debug("seeded table",
				slog.String("table", step.table),
				slog.Int("rows", step.count))
		}

		log.Info("seed complete",
			slog.Int("topics", len(data.Topics)),
			slog.Int("users", len(data.Users)),
			slog.Int("articles", len(data.Articles)),
			slog.Int("comments", len(data.Comments)))
		return nil
	})
}
