package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/news-api/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific errors below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrBadRequest is returned when the store rejects a value because of its
	// shape, for example text where an integer is expected or a missing
	// required column.
	ErrBadRequest = errors.New("malformed input")

	// ErrInvalidReference is returned when a write names a related entity
	// that does not exist (a foreign key violation).
	ErrInvalidReference = errors.New("invalid reference")

	// Entity-specific "not found" errors

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTopicNotFound indicates that the requested topic does not exist.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)
)

// Kind classifies an error into one of the outcomes a caller can act on.
type Kind uint8

// Error kinds. KindServerError is the zero value so that anything
// unrecognised is treated as a server fault.
const (
	KindServerError Kind = iota
	KindNotFound
	KindBadRequest
	KindInvalidReference
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindInvalidReference:
		return "invalid_reference"
	default:
		return "server_error"
	}
}

// KindOf classifies err. Domain validation failures count as bad requests.
// A nil error has no meaningful kind and reports KindServerError.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindServerError
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidReference):
		return KindInvalidReference
	case errors.Is(err, ErrBadRequest), errors.Is(err, domain.ErrValidation):
		return KindBadRequest
	default:
		return KindServerError
	}
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
