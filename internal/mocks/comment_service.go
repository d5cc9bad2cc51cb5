package mocks

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// MockCommentService implements service.CommentService for testing
type MockCommentService struct {
	ListCommentsFn  func(ctx context.Context, articleID int) ([]domain.Comment, error)
	AddCommentFn    func(ctx context.Context, c domain.NewComment) (*domain.Comment, error)
	VoteCommentFn   func(ctx context.Context, id int, delta int) (*domain.Comment, error)
	DeleteCommentFn func(ctx context.Context, id int) error

	// Default return values
	Comments     []domain.Comment
	Comment      *domain.Comment
	DefaultError error
}

// ListComments implements the CommentService.ListComments method
func (m *MockCommentService) ListComments(ctx context.Context, articleID int) ([]domain.Comment, error) {
	if m.ListCommentsFn != nil {
		return m.ListCommentsFn(ctx, articleID)
	}
	return m.Comments, m.DefaultError
}

// AddComment implements the CommentService.AddComment method
func (m *MockCommentService) AddComment(ctx context.Context, c domain.NewComment) (*domain.Comment, error) {
	if m.AddCommentFn != nil {
		return m.AddCommentFn(ctx, c)
	}
	return m.Comment, m.DefaultError
}

// VoteComment implements the CommentService.VoteComment method
func (m *MockCommentService) VoteComment(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	if m.VoteCommentFn != nil {
		return m.VoteCommentFn(ctx, id, delta)
	}
	return m.Comment, m.DefaultError
}

// DeleteComment implements the CommentService.DeleteComment method
func (m *MockCommentService) DeleteComment(ctx context.Context, id int) error {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, id)
	}
	return m.DefaultError
}
