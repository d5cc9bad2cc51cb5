package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/endpoints"
)

// EndpointHandler serves the endpoint directory.
type EndpointHandler struct {
	load   func() (endpoints.Directory, error)
	logger *slog.Logger
}

// NewEndpointHandler creates an EndpointHandler. A nil load uses the
// embedded directory.
func NewEndpointHandler(load func() (endpoints.Directory, error), logger *slog.Logger) *EndpointHandler {
	if load == nil {
		load = endpoints.Load
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EndpointHandler{load: load, logger: logger.With(slog.String("component", "endpoint_handler"))}
}

// GetEndpoints handles GET /api.
func (h *EndpointHandler) GetEndpoints(w http.ResponseWriter, r *http.Request) {
	dir, err := h.load()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, MsgNotFound, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, endpointsEnvelope{Endpoints: dir})
}
