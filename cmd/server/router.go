package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/news-api/internal/api"
	apiMiddleware "github.com/phrazzld/news-api/internal/api/middleware"
	"github.com/phrazzld/news-api/internal/platform/metrics"
)

// setupRouter creates the application router over the application's services.
func (app *application) setupRouter() http.Handler {
	return newRouter(app.handlers(), app.logger, app.config.Metrics.Enabled)
}

// newRouter assembles middleware, the /api routes and the operational
// endpoints. It takes no database so the routes command can document it.
func newRouter(h api.Handlers, logger *slog.Logger, metricsEnabled bool) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(logger))
	if metricsEnabled {
		r.Use(metrics.Middleware)
	}
	r.Use(middleware.Logger)
	r.Use(apiMiddleware.Recoverer)

	api.RegisterRoutes(r, h)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	if metricsEnabled {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	return r
}
