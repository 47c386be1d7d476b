package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/retroboard-backend/internal/auth"
	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

type sessionIssuer interface {
	Issue(name string) (string, auth.Session, error)
}

// SessionHandler issues display-name session tokens.
type SessionHandler struct {
	issuer sessionIssuer
	log    *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(issuer sessionIssuer, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{issuer: issuer, log: logger.With("handler", "session")}
}

type sessionRequest struct {
	Name string `json:"name"`
}

type sessionResponse struct {
	Token     string    `json:"token,omitempty"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

// Create handles POST /api/session.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	token, s, err := h.issuer.Issue(req.Name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "session issued", slog.String("name", s.Name))
	writeJSON(w, http.StatusCreated, sessionResponse{Token: token, Name: s.Name, ExpiresAt: s.ExpiresAt})
}

// Current handles GET /api/session. Anonymous requests get 401.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	name, ok := ctxutil.UserNameFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "no session")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Name: name})
}
