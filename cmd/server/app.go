package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/news-api/internal/api"
	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/service"
	"github.com/phrazzld/news-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	articleStore store.ArticleStore
	commentStore store.CommentStore
	topicStore   store.TopicStore
	userStore    store.UserStore

	articleService service.ArticleService
	commentService service.CommentService
	topicService   service.TopicService
	userService    service.UserService
}

// newApplication wires stores and services over an open connection pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	if cfg == nil || logger == nil || db == nil {
		return nil, errors.New("newApplication: missing dependency")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.articleStore = postgres.NewPostgresArticleStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)
	app.topicStore = postgres.NewPostgresTopicStore(db, logger)
	app.userStore = postgres.NewPostgresUserStore(db, logger)

	app.articleService = service.NewArticleService(app.articleStore, app.topicStore, logger)
	app.commentService = service.NewCommentService(app.commentStore, app.articleStore, logger)
	app.topicService = service.NewTopicService(app.topicStore)
	app.userService = service.NewUserService(app.userStore)

	return app, nil
}

// handlers builds the API handlers over the application's services.
func (app *application) handlers() api.Handlers {
	return api.Handlers{
		Topics:    api.NewTopicHandler(app.topicService, app.logger),
		Articles:  api.NewArticleHandler(app.articleService, app.logger),
		Comments:  api.NewCommentHandler(app.commentService, app.logger),
		Users:     api.NewUserHandler(app.userService, app.logger),
		Endpoints: api.NewEndpointHandler(nil, app.logger),
	}
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
