package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

type retroGetter interface {
	GetRetro(ctx context.Context, id string) (domain.Retrospective, error)
}

type eventStreamer interface {
	Stream(w http.ResponseWriter, r *http.Request, room string)
}

// EventsHandler serves the SSE change stream of one retrospective.
type EventsHandler struct {
	retros retroGetter
	stream eventStreamer
	log    *slog.Logger
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(retros retroGetter, stream eventStreamer, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{retros: retros, stream: stream, log: logger.With("handler", "events")}
}

// Stream handles GET /api/retrospectives/{id}/events. An unknown
// retrospective is a 404 before the stream opens.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.retros.GetRetro(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.stream.Stream(w, r, id)
}
