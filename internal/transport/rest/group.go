package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/internal/service/group"
)

type groupService interface {
	ListGroups(ctx context.Context, retroID string) ([]domain.CardGroup, error)
	CreateGroup(ctx context.Context, input group.CreateGroupInput) (domain.CardGroup, error)
	RenameGroup(ctx context.Context, id, title string) (domain.CardGroup, error)
	DeleteGroup(ctx context.Context, id string) error
	AddCard(ctx context.Context, input group.MembershipInput) (domain.CardGroup, error)
	RemoveCard(ctx context.Context, input group.MembershipInput) (domain.CardGroup, error)
}

// GroupHandler serves card groups.
type GroupHandler struct {
	svc groupService
	log *slog.Logger
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: logger.With("handler", "group")}
}

type createGroupRequest struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	CardIDs []string `json:"cardIds"`
}

type renameGroupRequest struct {
	Title string `json:"title"`
}

type membershipRequest struct {
	CardID string `json:"cardId"`
}

// List handles GET /api/retrospectives/{id}/groups.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListGroups(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/retrospectives/{id}/groups.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateGroup(r.Context(), group.CreateGroupInput{
		RetroID: r.PathValue("id"),
		ID:      req.ID,
		Title:   req.Title,
		CardIDs: req.CardIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Rename handles PATCH /api/groups/{id}.
func (h *GroupHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req renameGroupRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.RenameGroup(r.Context(), r.PathValue("id"), req.Title)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// Delete handles DELETE /api/groups/{id}. Member cards are kept and
// ungrouped.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGroup(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddCard handles POST /api/groups/{id}/cards.
func (h *GroupHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req membershipRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	g, err := h.svc.AddCard(r.Context(), group.MembershipInput{GroupID: r.PathValue("id"), CardID: req.CardID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// RemoveCard handles DELETE /api/groups/{id}/cards/{cardId}.
func (h *GroupHandler) RemoveCard(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.RemoveCard(r.Context(), group.MembershipInput{
		GroupID: r.PathValue("id"),
		CardID:  r.PathValue("cardId"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
