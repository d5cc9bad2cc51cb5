package mocks

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// MockArticleService implements service.ArticleService for testing
type MockArticleService struct {
	ListArticlesFn func(ctx context.Context, q domain.ArticleQuery) ([]domain.ArticleSummary, error)
	GetArticleFn   func(ctx context.Context, id int) (*domain.Article, error)
	VoteArticleFn  func(ctx context.Context, id int, delta int) (*domain.Article, error)

	// Default return values
	Articles     []domain.ArticleSummary
	Article      *domain.Article
	DefaultError error
}

// ListArticles implements the ArticleService.ListArticles method
func (m *MockArticleService) ListArticles(ctx context.Context, q domain.ArticleQuery) ([]domain.ArticleSummary, error) {
	if m.ListArticlesFn != nil {
		return m.ListArticlesFn(ctx, q)
	}
	return m.Articles, m.DefaultError
}

// GetArticle implements the ArticleService.GetArticle method
func (m *MockArticleService) GetArticle(ctx context.Context, id int) (*domain.Article, error) {
	if m.GetArticleFn != nil {
		return m.GetArticleFn(ctx, id)
	}
	return m.Article, m.DefaultError
}

// VoteArticle implements the ArticleService.VoteArticle method
func (m *MockArticleService) VoteArticle(ctx context.Context, id int, delta int) (*domain.Article, error) {
	if m.VoteArticleFn != nil {
		return m.VoteArticleFn(ctx, id, delta)
	}
	return m.Article, m.DefaultError
}
