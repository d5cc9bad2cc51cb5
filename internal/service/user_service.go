package service

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
)

// UserService provides user operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	// GetUser returns store.ErrUserNotFound for unknown usernames.
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

type userService struct {
	users store.UserStore
}

// NewUserService creates a UserService. It panics if users is nil.
func NewUserService(users store.UserStore) UserService {
	if users == nil {
		panic("user service requires a user store")
	}
	return &userService{users: users}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, wrap("user", "list_users", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, wrap("user", "get_user", err)
	}
	return user, nil
}
