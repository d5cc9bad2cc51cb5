package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/service"
)

// CommentHandler handles comment requests.
type CommentHandler struct {
	comments service.CommentService
	logger   *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(comments service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_handler")),
	}
}

// ListComments handles GET /api/articles/{article_id}/comments.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, paramArticleID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	comments, err := h.comments.ListComments(r.Context(), articleID)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, commentsEnvelope{Comments: toCommentResponses(comments)})
}

// CreateComment handles POST /api/articles/{article_id}/comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathID(r, paramArticleID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty request body")
		}
		HandleError(w, r, badRequest(err))
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleError(w, r, badRequest(err))
		return
	}

	comment, err := h.comments.AddComment(r.Context(), domain.NewComment{
		ArticleID: articleID,
		Author:    req.Username,
		Body:      req.Body,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("comment created",
		slog.Int("comment_id", comment.ID),
		slog.Int("article_id", comment.ArticleID),
		slog.String("author", comment.Author))

	shared.RespondWithJSON(w, r, http.StatusCreated, commentEnvelope{Comment: toCommentResponse(comment)})
}

// VoteComment handles PATCH /api/comments/{comment_id}.
func (h *CommentHandler) VoteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, paramCommentID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	req, err := decodeVoteRequest(r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	comment, err := h.comments.VoteComment(r.Context(), id, int(req.IncVotes))
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, commentEnvelope{Comment: toCommentResponse(comment)})
}

// DeleteComment handles DELETE /api/comments/{comment_id}. Deleting an
// absent comment still responds 204.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, paramCommentID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	if err := h.comments.DeleteComment(r.Context(), id); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondNoContent(w, r)
}
