package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/internal/service/retro"
)

type retroService interface {
	ListRetros(ctx context.Context, input retro.ListRetrosInput) ([]domain.Retrospective, error)
	CreateRetro(ctx context.Context, input retro.CreateRetroInput) (domain.Retrospective, error)
	GetRetro(ctx context.Context, id string) (domain.Retrospective, error)
	UpdateRetro(ctx context.Context, input retro.UpdateRetroInput) (domain.Retrospective, error)
	DeleteRetro(ctx context.Context, id string) error
}

// RetroHandler serves /api/retrospectives.
type RetroHandler struct {
	svc retroService
	log *slog.Logger
}

// NewRetroHandler creates a RetroHandler.
func NewRetroHandler(svc retroService, logger *slog.Logger) *RetroHandler {
	return &RetroHandler{svc: svc, log: logger.With("handler", "retro")}
}

type createRetroRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	CreatedBy   string `json:"createdBy"`
	IsAnonymous bool   `json:"isAnonymous"`
}

type updateRetroRequest struct {
	Name        *string `json:"name"`
	Team        *string `json:"team"`
	IsAnonymous *bool   `json:"isAnonymous"`
}

// List handles GET /api/retrospectives?team=&limit=.
func (h *RetroHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := retro.ListRetrosInput{Team: q.Get("team")}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be a number"))
			return
		}
		input.Limit = n
	}

	list, err := h.svc.ListRetros(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/retrospectives.
func (h *RetroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRetroRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateRetro(r.Context(), retro.CreateRetroInput{
		ID:          req.ID,
		Name:        req.Name,
		Team:        req.Team,
		CreatedBy:   req.CreatedBy,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/retrospectives/{id}.
func (h *RetroHandler) Get(w http.ResponseWriter, r *http.Request) {
	got, err := h.svc.GetRetro(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, got)
}

// Update handles PATCH /api/retrospectives/{id}.
func (h *RetroHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRetroRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.UpdateRetro(r.Context(), retro.UpdateRetroInput{
		RetroID:     r.PathValue("id"),
		Name:        req.Name,
		Team:        req.Team,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/retrospectives/{id}.
func (h *RetroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRetro(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
