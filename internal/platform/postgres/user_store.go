package postgres

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users := []domain.User{}
	err := sqlx.SelectContext(ctx, s.db, &users,
		`SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return users, nil
}

// GetByUsername implements store.UserStore.GetByUsername
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user domain.User
	err := sqlx.GetContext(ctx, s.db, &user,
		`SELECT username, name, avatar_url FROM users WHERE username = $1`, username)
	if err != nil {
		err = mapNotFound(err, store.ErrUserNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("user not found", slog.String("username", username))
		} else {
			log.Error("failed to get user",
				slog.String("error", err.Error()),
				slog.String("username", username))
		}
		return nil, err
	}
	return &user, nil
}
