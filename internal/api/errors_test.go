package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"article not found", store.ErrArticleNotFound, http.StatusNotFound, MsgArticleNotFound},
		{"comment not found", fmt.Errorf("wrapped: %w", store.ErrCommentNotFound), http.StatusNotFound, MsgCommentNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound, MsgUserNotFound},
		{"topic not found", store.ErrTopicNotFound, http.StatusNotFound, MsgTopicNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound, MsgNotFound},
		{"bad request", store.ErrBadRequest, http.StatusBadRequest, MsgBadRequest},
		{"validation", domain.ErrInvalidSortColumn, http.StatusBadRequest, MsgBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, MsgBadRequest},
		{"invalid reference", store.ErrInvalidReference, http.StatusBadRequest, MsgInvalidReference},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError, MsgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.wantMsg, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_DoesNotLeak(t *testing.T) {
	err := errors.New(`pq: relation "articles" does not exist at postgres://news:pw@db/news`)
	msg := GetSafeErrorMessage(err)
	assert.Equal(t, "Uh oh! Server Error!", msg)
}

func TestBadRequest(t *testing.T) {
	err := badRequest(errors.New("unexpected EOF"))
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, store.KindBadRequest, store.KindOf(err))

	assert.Same(t, domain.ErrInvalidVoteDelta, badRequest(domain.ErrInvalidVoteDelta))
}
