package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// ArticleService provides article operations.
type ArticleService interface {
	// ListArticles returns article summaries for q. When q names a topic,
	// the topic must exist; an existing topic without articles yields an
	// empty slice.
	ListArticles(ctx context.Context, q domain.ArticleQuery) ([]domain.ArticleSummary, error)

	// GetArticle returns a single article with its comment count.
	GetArticle(ctx context.Context, id int) (*domain.Article, error)

	// VoteArticle adds delta to an article's votes and returns the result.
	VoteArticle(ctx context.Context, id int, delta int) (*domain.Article, error)
}

type articleService struct {
	articles store.ArticleStore
	topics   store.TopicStore
	logger   *slog.Logger
}

// NewArticleService creates an ArticleService. It panics if a store is nil.
func NewArticleService(
	articles store.ArticleStore,
	topics store.TopicStore,
	logger *slog.Logger,
) ArticleService {
	if articles == nil || topics == nil {
		panic("article service requires article and topic stores")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &articleService{
		articles: articles,
		topics:   topics,
		logger:   logger.With(slog.String("component", "article_service")),
	}
}

// ListArticles checks the topic filter and runs the listing concurrently.
// If the topic is unknown the listing is cancelled and ErrTopicNotFound is
// returned.
func (s *articleService) ListArticles(
	ctx context.Context,
	q domain.ArticleQuery,
) ([]domain.ArticleSummary, error) {
	if q.Topic == "" {
		articles, err := s.articles.List(ctx, q)
		return articles, wrap("article", "list_articles", err)
	}

	var articles []domain.ArticleSummary
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.topics.Exists(gctx, q.Topic)
	})
	g.Go(func() error {
		var err error
		articles, err = s.articles.List(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrap("article", "list_articles", err)
	}
	return articles, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, wrap("article", "get_article", err)
	}
	return article, nil
}

func (s *articleService) VoteArticle(ctx context.Context, id int, delta int) (*domain.Article, error) {
	article, err := s.articles.AddVotes(ctx, id, delta)
	if err != nil {
		return nil, wrap("article", "vote_article", err)
	}
	return article, nil
}
