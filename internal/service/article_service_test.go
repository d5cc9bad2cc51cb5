package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newArticleServiceWithMocks() (ArticleService, *MockArticleStore, *MockTopicStore) {
	articles := &MockArticleStore{}
	topics := &MockTopicStore{}
	return NewArticleService(articles, topics, nil), articles, topics
}

func TestArticleService_ListArticles(t *testing.T) {
	ctx := context.Background()

	t.Run("without topic skips topic check", func(t *testing.T) {
		svc, articles, topics := newArticleServiceWithMocks()
		q := domain.ArticleQuery{SortBy: domain.SortByCreatedAt, Order: domain.OrderDesc}
		want := []domain.ArticleSummary{{ID: 1, Title: "Living in the shadow of a great man"}}
		articles.On("List", ctx, q).Return(want, nil)

		got, err := svc.ListArticles(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		topics.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		articles.AssertExpectations(t)
	})

	t.Run("known topic with no articles returns empty slice", func(t *testing.T) {
		svc, articles, topics := newArticleServiceWithMocks()
		q := domain.ArticleQuery{SortBy: domain.SortByCreatedAt, Order: domain.OrderDesc, Topic: "paper"}
		topics.On("Exists", mock.Anything, "paper").Return(nil)
		articles.On("List", mock.Anything, q).Return([]domain.ArticleSummary{}, nil)

		got, err := svc.ListArticles(ctx, q)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown topic is not found", func(t *testing.T) {
		svc, articles, topics := newArticleServiceWithMocks()
		q := domain.ArticleQuery{SortBy: domain.SortByVotes, Order: domain.OrderAsc, Topic: "dogs"}
		topics.On("Exists", mock.Anything, "dogs").Return(store.ErrTopicNotFound)
		articles.On("List", mock.Anything, q).Return([]domain.ArticleSummary{}, nil).Maybe()

		got, err := svc.ListArticles(ctx, q)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrTopicNotFound)
		assert.Equal(t, store.KindNotFound, store.KindOf(err))

		var svcErr *ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "list_articles", svcErr.Operation)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		svc, articles, _ := newArticleServiceWithMocks()
		q := domain.ArticleQuery{SortBy: domain.SortByTitle, Order: domain.OrderAsc}
		dbErr := errors.New("connection reset")
		articles.On("List", ctx, q).Return(nil, dbErr)

		_, err := svc.ListArticles(ctx, q)

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, store.KindServerError, store.KindOf(err))
	})
}

func TestArticleService_GetArticle(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, articles, _ := newArticleServiceWithMocks()
		want := &domain.Article{ID: 1, Title: "Living in the shadow of a great man", CommentCount: 11}
		articles.On("GetByID", ctx, 1).Return(want, nil)

		got, err := svc.GetArticle(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc, articles, _ := newArticleServiceWithMocks()
		articles.On("GetByID", ctx, 999).Return(nil, store.ErrArticleNotFound)

		got, err := svc.GetArticle(ctx, 999)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})
}

func TestArticleService_VoteArticle(t *testing.T) {
	ctx := context.Background()
	svc, articles, _ := newArticleServiceWithMocks()
	want := &domain.Article{ID: 1, Votes: 101}
	articles.On("AddVotes", ctx, 1, 1).Return(want, nil)
	articles.On("AddVotes", ctx, 404, -3).Return(nil, store.ErrArticleNotFound)

	got, err := svc.VoteArticle(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 101, got.Votes)

	_, err = svc.VoteArticle(ctx, 404, -3)
	assert.ErrorIs(t, err, store.ErrArticleNotFound)
	articles.AssertExpectations(t)
}

func TestNewArticleService_PanicsOnNilStore(t *testing.T) {
	assert.Panics(t, func() { NewArticleService(nil, &MockTopicStore{}, nil) })
	assert.Panics(t, func() { NewArticleService(&MockArticleStore{}, nil, nil) })
}
