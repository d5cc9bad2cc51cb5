package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
)

// Path parameter names.
const (
	paramArticleID = "article_id"
	paramCommentID = "comment_id"
	paramUsername  = "username"
)

// pathID parses a numeric path parameter. Malformed values fail with
// domain.ErrInvalidID.
func pathID(r *http.Request, name string) (int, error) {
	return domain.ParseID(chi.URLParam(r, name))
}

// decodeVoteRequest reads a vote payload. An empty body is a zero delta.
func decodeVoteRequest(r *http.Request) (VoteRequest, error) {
	var req VoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			return VoteRequest{}, nil
		}
		return VoteRequest{}, badRequest(err)
	}
	return req, nil
}
