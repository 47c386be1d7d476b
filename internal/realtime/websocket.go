package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const maxControlFrame = 4096

// WSConfig tunes WebSocket connections.
type WSConfig struct {
	PingInterval   time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string // empty or "*" allows any origin
}

// WSHandler serves GET /ws. A client joins rooms with join/leave control
// frames, or on connect with ?retroId=.
type WSHandler struct {
	hub      *Hub
	cfg      WSConfig
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewWSHandler(log *slog.Logger, hub *Hub, cfg WSConfig) *WSHandler {
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 30 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	h := &WSHandler{
		hub: hub,
		cfg: cfg,
		log: log.With("handler", "ws"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range h.cfg.AllowedOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.log.DebugContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	sub := h.hub.NewSubscriber()
	log := h.log.With(slog.String("subscriber", sub.ID()))
	if room := strings.TrimSpace(r.URL.Query().Get("retroId")); room != "" {
		sub.Join(room)
		sub.Offer(control(MsgJoined, room))
	}
	log.DebugContext(r.Context(), "websocket connected")

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeLoop(conn, sub, log)
	}()

	h.readLoop(conn, sub, log)
	sub.Close()
	<-done
	_ = conn.Close()
	log.Debug("websocket disconnected")
}

// readLoop applies control frames until the connection fails.
func (h *WSHandler) readLoop(conn *websocket.Conn, sub *Subscriber, log *slog.Logger) {
	conn.SetReadLimit(maxControlFrame)
	wait := 2 * h.cfg.PingInterval
	_ = conn.SetReadDeadline(time.Now().Add(wait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("websocket read failed", slog.String("error", err.Error()))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(wait))

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sub.Offer(control(MsgError, ""))
			continue
		}
		room := strings.TrimSpace(msg.RetroID)
		switch {
		case room == "":
			sub.Offer(control(MsgError, ""))
		case msg.Type == MsgJoin:
			sub.Join(room)
			sub.Offer(control(MsgJoined, room))
		case msg.Type == MsgLeave:
			sub.Leave(room)
			sub.Offer(control(MsgLeft, room))
		default:
			sub.Offer(control(MsgError, room))
		}
	}
}

// writeLoop forwards queued envelopes and keeps the connection alive with
// pings. It returns when the subscriber is closed or a write fails.
func (h *WSHandler) writeLoop(conn *websocket.Conn, sub *Subscriber, log *slog.Logger) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case env, ok := <-sub.C():
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, env.Payload); err != nil {
				log.Debug("websocket write failed", slog.String("error", err.Error()))
				// Unblock readLoop so the handler can finish.
				_ = conn.Close()
				drain(sub)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = conn.Close()
				drain(sub)
				return
			}
		}
	}
}

// drain discards envelopes until the subscriber is closed.
func drain(sub *Subscriber) {
	for range sub.C() {
	}
}

func control(typ, room string) Envelope {
	return Envelope{Room: room, Type: typ, Payload: controlFrame(typ, room)}
}

// IsControl reports whether a frame type is a hub control frame rather than
// a domain event.
func IsControl(typ string) bool {
	switch typ {
	case MsgJoined, MsgLeft, MsgError:
		return true
	}
	return false
}
