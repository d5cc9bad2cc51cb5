package mocks

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	ListUsersFn func(ctx context.Context) ([]domain.User, error)
	GetUserFn   func(ctx context.Context, username string) (*domain.User, error)

	Users        []domain.User
	User         *domain.User
	DefaultError error
}

// ListUsers implements the UserService.ListUsers method
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return m.Users, m.DefaultError
}

// GetUser implements the UserService.GetUser method
func (m *MockUserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, username)
	}
	return m.User, m.DefaultError
}
