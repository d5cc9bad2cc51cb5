package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/service"
)

// TopicHandler handles topic requests.
type TopicHandler struct {
	topics service.TopicService
	logger *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(topics service.TopicService, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{topics: topics, logger: logger.With(slog.String("component", "topic_handler"))}
}

// ListTopics handles GET /api/topics.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.ListTopics(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, topicsEnvelope{Topics: toTopicResponses(topics)})
}
