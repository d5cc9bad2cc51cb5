package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// UserStore defines the interface for user data access.
type UserStore interface {
	// List returns every user ordered by username.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a single user.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
