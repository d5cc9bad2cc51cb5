package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// CommentStore defines the interface for comment data access.
type CommentStore interface {
	// ListByArticle returns the comments on an article, newest first.
	// It does not check that the article exists; an unknown article
	// yields an empty slice.
	ListByArticle(ctx context.Context, articleID int) ([]domain.Comment, error)

	// Create inserts a comment and returns it with its generated fields.
	// Returns ErrInvalidReference if the author or article does not exist.
	Create(ctx context.Context, c domain.NewComment) (*domain.Comment, error)

	// AddVotes adds delta to the comment's vote count in a single statement.
	// Returns ErrCommentNotFound if the comment does not exist.
	AddVotes(ctx context.Context, id int, delta int) (*domain.Comment, error)

	// Delete removes a comment. Deleting an absent comment is not an error.
	Delete(ctx context.Context, id int) error
}
