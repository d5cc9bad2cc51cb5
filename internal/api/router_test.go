package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/endpoints"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmatchedRoutes(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/not-a-route"},
		{http.MethodGet, "/nothing"},
		{http.MethodPut, "/api/articles/1"},
		{http.MethodPost, "/api/topics"},
		{http.MethodGet, "/api/comments/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			svc := newTestServices()

			rec := svc.do(t, tt.method, tt.target, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"msg":"Path not found"}`, rec.Body.String())
		})
	}
}

func TestListTopics(t *testing.T) {
	svc := newTestServices()
	svc.topics.Topics = []domain.Topic{
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
	}

	rec := svc.do(t, http.MethodGet, "/api/topics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"topics":[
		{"slug":"cats","description":"Not dogs"},
		{"slug":"mitch","description":"The man, the Mitch, the legend"}]}`, rec.Body.String())

	svc.topics.DefaultError = errors.New("db down")
	rec = svc.do(t, http.MethodGet, "/api/topics", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUsers(t *testing.T) {
	rogersop := domain.User{
		Username:  "rogersop",
		Name:      "paul",
		AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
	}

	t.Run("list", func(t *testing.T) {
		svc := newTestServices()
		svc.users.Users = []domain.User{rogersop}

		rec := svc.do(t, http.MethodGet, "/api/users", "")

		require.Equal(t, http.StatusOK, rec.Code)
		users := decodeBody(t, rec)["users"].([]any)
		require.Len(t, users, 1)
		assert.Equal(t, "rogersop", users[0].(map[string]any)["username"])
	})

	t.Run("get", func(t *testing.T) {
		svc := newTestServices()
		svc.users.GetUserFn = func(ctx context.Context, username string) (*domain.User, error) {
			if username == "rogersop" {
				return &rogersop, nil
			}
			return nil, store.ErrUserNotFound
		}

		rec := svc.do(t, http.MethodGet, "/api/users/rogersop", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":{
			"username":"rogersop",
			"name":"paul",
			"avatar_url":"https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"}}`, rec.Body.String())

		rec = svc.do(t, http.MethodGet, "/api/users/ghost", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"User not found"}`, rec.Body.String())
	})
}

func TestGetEndpoints(t *testing.T) {
	t.Run("embedded directory", func(t *testing.T) {
		svc := newTestServices()

		rec := svc.do(t, http.MethodGet, "/api", "")

		require.Equal(t, http.StatusOK, rec.Code)
		eps := decodeBody(t, rec)["endpoints"].(map[string]any)
		assert.Contains(t, eps, "GET /api/articles")
		assert.Contains(t, eps, "DELETE /api/comments/:comment_id")
	})

	t.Run("unavailable directory", func(t *testing.T) {
		svc := newTestServices()
		svc.endpoints = func() (endpoints.Directory, error) {
			return nil, endpoints.ErrUnavailable
		}

		rec := svc.do(t, http.MethodGet, "/api", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"msg":"Not found"}`, rec.Body.String())
	})
}
