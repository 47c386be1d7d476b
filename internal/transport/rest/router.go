package rest

import "net/http"

// Handlers groups everything the router mounts. WS and Metrics are plain
// handlers built outside this package.
type Handlers struct {
	Health  *HealthHandler
	Session *SessionHandler
	Retro   *RetroHandler
	Card    *CardHandler
	Action  *ActionHandler
	Group   *GroupHandler
	Events  *EventsHandler
	WS      http.Handler
	Metrics http.Handler
}

// NewRouter registers every route on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /api/session", h.Session.Create)
	mux.HandleFunc("GET /api/session", h.Session.Current)

	mux.HandleFunc("GET /api/retrospectives", h.Retro.List)
	mux.HandleFunc("POST /api/retrospectives", h.Retro.Create)
	mux.HandleFunc("GET /api/retrospectives/{id}", h.Retro.Get)
	mux.HandleFunc("PATCH /api/retrospectives/{id}", h.Retro.Update)
	mux.HandleFunc("DELETE /api/retrospectives/{id}", h.Retro.Delete)

	mux.HandleFunc("GET /api/retrospectives/{id}/cards", h.Card.List)
	mux.HandleFunc("POST /api/retrospectives/{id}/cards", h.Card.Create)
	mux.HandleFunc("PATCH /api/cards/{id}", h.Card.Update)
	mux.HandleFunc("DELETE /api/cards/{id}", h.Card.Delete)
	mux.HandleFunc("POST /api/cards/{id}/vote", h.Card.Vote)
	mux.HandleFunc("POST /api/cards/{id}/comments", h.Card.AddComment)
	mux.HandleFunc("DELETE /api/comments/{id}", h.Card.DeleteComment)

	mux.HandleFunc("GET /api/retrospectives/{id}/actions", h.Action.List)
	mux.HandleFunc("POST /api/retrospectives/{id}/actions", h.Action.Create)
	mux.HandleFunc("PATCH /api/actions/{id}", h.Action.Update)
	mux.HandleFunc("POST /api/actions/{id}/toggle", h.Action.Toggle)
	mux.HandleFunc("DELETE /api/actions/{id}", h.Action.Delete)

	mux.HandleFunc("GET /api/retrospectives/{id}/groups", h.Group.List)
	mux.HandleFunc("POST /api/retrospectives/{id}/groups", h.Group.Create)
	mux.HandleFunc("PATCH /api/groups/{id}", h.Group.Rename)
	mux.HandleFunc("DELETE /api/groups/{id}", h.Group.Delete)
	mux.HandleFunc("POST /api/groups/{id}/cards", h.Group.AddCard)
	mux.HandleFunc("DELETE /api/groups/{id}/cards/{cardId}", h.Group.RemoveCard)

	mux.HandleFunc("GET /api/retrospectives/{id}/events", h.Events.Stream)
	if h.WS != nil {
		mux.Handle("GET /ws", h.WS)
	}

	return mux
}
