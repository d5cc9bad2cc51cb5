package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/api/shared"
)

// Handlers groups the handlers mounted under /api.
type Handlers struct {
	Topics    *TopicHandler
	Articles  *ArticleHandler
	Comments  *CommentHandler
	Users     *UserHandler
	Endpoints *EndpointHandler
}

// RegisterRoutes mounts the /api routes on r and installs the 404
// handlers. Unknown paths and unsupported methods both answer
// 404 "Path not found".
func RegisterRoutes(r chi.Router, h Handlers) {
	r.NotFound(PathNotFound)
	r.MethodNotAllowed(PathNotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Endpoints.GetEndpoints)
		r.Get("/topics", h.Topics.ListTopics)

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", h.Articles.ListArticles)
			r.Route("/{article_id}", func(r chi.Router) {
				r.Get("/", h.Articles.GetArticle)
				r.Patch("/", h.Articles.VoteArticle)
				r.Get("/comments", h.Comments.ListComments)
				r.Post("/comments", h.Comments.CreateComment)
			})
		})

		r.Route("/comments/{comment_id}", func(r chi.Router) {
			r.Patch("/", h.Comments.VoteComment)
			r.Delete("/", h.Comments.DeleteComment)
		})

		r.Get("/users", h.Users.ListUsers)
		r.Get("/users/{username}", h.Users.GetUser)
	})
}

// PathNotFound answers 404 "Path not found".
func PathNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgPathNotFound)
}
