package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
	"github.com/heartmarshall/retroboard-backend/internal/service/card"
	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

type cardService interface {
	ListCards(ctx context.Context, retroID, viewer string) ([]domain.CardView, error)
	CreateCard(ctx context.Context, input card.CreateCardInput) (domain.Card, error)
	UpdateCard(ctx context.Context, input card.UpdateCardInput) (domain.Card, error)
	DeleteCard(ctx context.Context, id string) error
	ToggleVote(ctx context.Context, input card.ToggleVoteInput) (domain.VoteResult, error)
	AddComment(ctx context.Context, input card.AddCommentInput) (domain.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

// CardHandler serves cards, votes and comments.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "card")}
}

type createCardRequest struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Author   string `json:"author"`
}

type updateCardRequest struct {
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type voteRequest struct {
	UserID string `json:"userId"`
}

type commentRequest struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// List handles GET /api/retrospectives/{id}/cards?userId=. hasVoted is
// computed for userId, or for the session user when it is omitted.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := ctxutil.UserNameOr(r.Context(), r.URL.Query().Get("userId"))

	cards, err := h.svc.ListCards(r.Context(), r.PathValue("id"), viewer)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// Create handles POST /api/retrospectives/{id}/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	created, err := h.svc.CreateCard(r.Context(), card.CreateCardInput{
		RetroID:  r.PathValue("id"),
		ID:       req.ID,
		Category: req.Category,
		Content:  req.Content,
		Author:   req.Author,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PATCH /api/cards/{id}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCardRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	updated, err := h.svc.UpdateCard(r.Context(), card.UpdateCardInput{
		CardID:   r.PathValue("id"),
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCard(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Vote handles POST /api/cards/{id}/vote. The body is optional; without a
// userId the session user votes.
func (h *CardHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ToggleVote(r.Context(), card.ToggleVoteInput{
		CardID: r.PathValue("id"),
		UserID: req.UserID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// AddComment handles POST /api/cards/{id}/comments.
func (h *CardHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), card.AddCommentInput{
		CardID:  r.PathValue("id"),
		ID:      req.ID,
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// DeleteComment handles DELETE /api/comments/{id}.
func (h *CardHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteComment(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
