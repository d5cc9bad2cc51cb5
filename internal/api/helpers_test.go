package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/endpoints"
	"github.com/phrazzld/news-api/internal/mocks"
	"github.com/stretchr/testify/require"
)

// testServices holds the mocks behind a test router.
type testServices struct {
	articles  *mocks.MockArticleService
	comments  *mocks.MockCommentService
	topics    *mocks.MockTopicService
	users     *mocks.MockUserService
	endpoints func() (endpoints.Directory, error)
}

func newTestServices() *testServices {
	return &testServices{
		articles: &mocks.MockArticleService{},
		comments: &mocks.MockCommentService{},
		topics:   &mocks.MockTopicService{},
		users:    &mocks.MockUserService{},
	}
}

func (s *testServices) router() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, Handlers{
		Topics:    NewTopicHandler(s.topics, nil),
		Articles:  NewArticleHandler(s.articles, nil),
		Comments:  NewCommentHandler(s.comments, nil),
		Users:     NewUserHandler(s.users, nil),
		Endpoints: NewEndpointHandler(s.endpoints, nil),
	})
	return r
}

func (s *testServices) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}
