package domain

import (
	"fmt"
	"time"
)

// Validation errors for new comments.
var (
	ErrEmptyCommentAuthor = fmt.Errorf("%w: comment username cannot be empty", ErrValidation)
	ErrEmptyCommentBody   = fmt.Errorf("%w: comment body cannot be empty", ErrValidation)
)

// Comment is a reader's response to an article.
type Comment struct {
	ID        int       `db:"comment_id"`
	Body      string    `db:"body"`
	ArticleID int       `db:"article_id"`
	Author    string    `db:"author"`
	Votes     int       `db:"votes"`
	CreatedAt time.Time `db:"created_at"`
}

// NewComment holds the caller-supplied fields of a comment about to be
// inserted. The store assigns the identifier, vote count and timestamp.
type NewComment struct {
	ArticleID int
	Author    string
	Body      string
}

// Validate checks that the author and body are present. Whether the author
// and article actually exist is left to the store's foreign keys.
func (c NewComment) Validate() error {
	if c.Author == "" {
		return ErrEmptyCommentAuthor
	}
	if c.Body == "" {
		return ErrEmptyCommentBody
	}
	return nil
}
