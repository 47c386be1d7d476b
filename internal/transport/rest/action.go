package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/internal/service/action"
)

type actionService interface {
	ListActions(ctx context.Context, retroID string) ([]domain.ActionItem, error)
	CreateAction(ctx context.Context, input action.CreateActionInput) (domain.ActionItem, error)
	UpdateAction(ctx context.Context, input action.UpdateActionInput) (domain.ActionItem, error)
	ToggleAction(ctx context.Context, id string) (domain.ActionItem, error)
	DeleteAction(ctx context.Context, id string) error
}

// ActionHandler serves action items.
type ActionHandler struct {
	svc actionService
	log *slog.Logger
}

// NewActionHandler creates an ActionHandler.
func NewActionHandler(svc actionService, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{svc: svc, log: logger.With("handler", "action")}
}

type createActionRequest struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Assignee string `json:"assignee"`
	CardID   string `json:"cardId"`
}

type updateActionRequest struct {
	Text      *string `json:"text"`
	Assignee  *string `json:"assignee"`
	Completed *bool   `json:"completed"`
}

// List handles GET /api/retrospectives/{id}/actions.
func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListActions(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/retrospectives/{id}/actions.
func (h *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActionRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateAction(r.Context(), action.CreateActionInput{
		RetroID:  r.PathValue("id"),
		ID:       req.ID,
		Text:     req.Text,
		Assignee: req.Assignee,
		CardID:   req.CardID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/actions/{id}.
func (h *ActionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateActionRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.UpdateAction(r.Context(), action.UpdateActionInput{
		ActionID:  r.PathValue("id"),
		Text:      req.Text,
		Assignee:  req.Assignee,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Toggle handles POST /api/actions/{id}/toggle.
func (h *ActionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	updated, err := h.svc.ToggleAction(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/actions/{id}.
func (h *ActionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAction(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
