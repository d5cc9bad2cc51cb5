package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/service"
)

// ArticleHandler handles article requests.
type ArticleHandler struct {
	articles service.ArticleService
	logger   *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(articles service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		articles: articles,
		logger:   logger.With(slog.String("component", "article_handler")),
	}
}

// ListArticles handles GET /api/articles?sort_by&order&topic.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q, err := domain.NewArticleQuery(query.Get("sort_by"), query.Get("order"), query.Get("topic"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	articles, err := h.articles.ListArticles(r.Context(), q)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("listed articles",
		slog.String("sort_by", string(q.SortBy)),
		slog.String("order", string(q.Order)),
		slog.String("topic", q.Topic),
		slog.Int("count", len(articles)))

	shared.RespondWithJSON(w, r, http.StatusOK, articlesEnvelope{Articles: toArticleSummaryResponses(articles)})
}

// GetArticle handles GET /api/articles/{article_id}.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, paramArticleID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	article, err := h.articles.GetArticle(r.Context(), id)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, articleEnvelope{Article: toArticleResponse(article)})
}

// VoteArticle handles PATCH /api/articles/{article_id}.
func (h *ArticleHandler) VoteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, paramArticleID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	req, err := decodeVoteRequest(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	article, err := h.articles.VoteArticle(r.Context(), id, int(req.IncVotes))
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, articleEnvelope{Article: toArticleResponse(article)})
}
