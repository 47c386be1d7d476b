package realtime

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// SSEHandler streams one room as server-sent events. It is the fallback for
// clients that cannot hold a WebSocket.
type SSEHandler struct {
	hub       *Hub
	heartbeat time.Duration
	log       *slog.Logger
}

func NewSSEHandler(log *slog.Logger, hub *Hub, heartbeat time.Duration) *SSEHandler {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &SSEHandler{hub: hub, heartbeat: heartbeat, log: log.With("handler", "sse")}
}

// Stream subscribes to room and writes events until the client goes away.
func (h *SSEHandler) Stream(w http.ResponseWriter, r *http.Request, room string) {
	rc := http.NewResponseController(w)
	// The server write timeout would cut the stream.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sub := h.hub.Subscribe(room)
	defer sub.Close()

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", MsgJoined, controlFrame(MsgJoined, room)); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		h.log.WarnContext(r.Context(), "response does not support flushing", slog.String("error", err.Error()))
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case env, ok := <-sub.C():
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", env.Type, env.Payload); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}
