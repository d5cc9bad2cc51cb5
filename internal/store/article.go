package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// ArticleStore defines the interface for article data access.
type ArticleStore interface {
	// List returns article summaries ordered and filtered by q.
	// q must come from domain.NewArticleQuery. Returns an empty slice when
	// nothing matches.
	List(ctx context.Context, q domain.ArticleQuery) ([]domain.ArticleSummary, error)

	// GetByID retrieves an article with its comment count.
	// Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id int) (*domain.Article, error)

	// Exists returns nil if the article exists and ErrArticleNotFound otherwise.
	Exists(ctx context.Context, id int) error

	// AddVotes adds delta to the article's vote count in a single statement
	// and returns the updated article.
	// Returns ErrArticleNotFound if the article does not exist.
	AddVotes(ctx context.Context, id int, delta int) (*domain.Article, error)
}
