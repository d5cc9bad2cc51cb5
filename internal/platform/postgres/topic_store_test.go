package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresTopicStore_List(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresTopicStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slug, description FROM topics ORDER BY slug")).
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("cats", "Not dogs").
			AddRow("mitch", "The man, the Mitch, the legend").
			AddRow("paper", "what books are made of"))

	topics, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, domain.Topic{Slug: "cats", Description: "Not dogs"}, topics[0])
}

func TestPostgresTopicStore_Exists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresTopicStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM topics WHERE slug = $1")).
			WithArgs("paper").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		assert.NoError(t, s.Exists(context.Background(), "paper"))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresTopicStore(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta("FROM topics WHERE slug = $1")).
			WithArgs("some-invalid-topic").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := s.Exists(context.Background(), "some-invalid-topic")
		assert.ErrorIs(t, err, store.ErrTopicNotFound)
	})
}
