package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// CommentService provides comment operations.
type CommentService interface {
	// ListComments returns the comments on an article. It fails with
	// store.ErrArticleNotFound when the article does not exist and returns
	// an empty slice when it exists without comments.
	ListComments(ctx context.Context, articleID int) ([]domain.Comment, error)

	// AddComment creates a comment. Unknown authors or articles surface as
	// store.ErrInvalidReference.
	AddComment(ctx context.Context, c domain.NewComment) (*domain.Comment, error)

	// VoteComment adds delta to a comment's votes and returns the result.
	VoteComment(ctx context.Context, id int, delta int) (*domain.Comment, error)

	// DeleteComment removes a comment. Absent comments are not an error.
	DeleteComment(ctx context.Context, id int) error
}

type commentService struct {
	comments store.CommentStore
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewCommentService creates a CommentService. It panics if a store is nil.
func NewCommentService(
	comments store.CommentStore,
	articles store.ArticleStore,
	logger *slog.Logger,
) CommentService {
	if comments == nil || articles == nil {
		panic("comment service requires comment and article stores")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		comments: comments,
		articles: articles,
		logger:   logger.With(slog.String("component", "comment_service")),
	}
}

// ListComments runs the article existence check and the comment query
// concurrently. The first failure cancels the other.
func (s *commentService) ListComments(ctx context.Context, articleID int) ([]domain.Comment, error) {
	var comments []domain.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.articles.Exists(gctx, articleID)
	})
	g.Go(func() error {
		var err error
		comments, err = s.comments.ListByArticle(gctx, articleID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrap("comment", "list_comments", err)
	}
	return comments, nil
}

func (s *commentService) AddComment(ctx context.Context, c domain.NewComment) (*domain.Comment, error) {
	comment, err := s.comments.Create(ctx, c)
	if err != nil {
		return nil, wrap("comment", "add_comment", err)
	}
	return comment, nil
}

func (s *commentService) VoteComment(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	comment, err := s.comments.AddVotes(ctx, id, delta)
	if err != nil {
		return nil, wrap("comment", "vote_comment", err)
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	return wrap("comment", "delete_comment", s.comments.Delete(ctx, id))
}
