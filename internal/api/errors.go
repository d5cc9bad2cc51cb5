package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/middleware"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
)

// Client-facing error messages.
const (
	MsgBadRequest       = "Bad request"
	MsgInvalidReference = "invalid username or article"
	MsgPathNotFound     = "Path not found"
	MsgNotFound         = "Not found"
	MsgArticleNotFound  = "Article not found"
	MsgCommentNotFound  = "Comment not found"
	MsgUserNotFound     = "User not found"
	MsgTopicNotFound    = "Topic not found"
	MsgServerError      = middleware.ServerErrorMessage
)

// MapErrorToStatusCode maps an error to its HTTP status code by kind.
func MapErrorToStatusCode(err error) int {
	switch store.KindOf(err) {
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindBadRequest, store.KindInvalidReference:
		return http.StatusBadRequest
	case store.KindServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Internal
// details never leak into it.
func GetSafeErrorMessage(err error) string {
	switch store.KindOf(err) {
	case store.KindNotFound:
		return notFoundMessage(err)
	case store.KindBadRequest:
		return MsgBadRequest
	case store.KindInvalidReference:
		return MsgInvalidReference
	case store.KindServerError:
		return MsgServerError
	default:
		return MsgServerError
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrArticleNotFound):
		return MsgArticleNotFound
	case errors.Is(err, store.ErrCommentNotFound):
		return MsgCommentNotFound
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrTopicNotFound):
		return MsgTopicNotFound
	default:
		return MsgNotFound
	}
}

// HandleError writes the error response for err and logs it.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// badRequest marks a request decoding failure as a validation error.
func badRequest(err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
