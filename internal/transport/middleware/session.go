package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/auth"
	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

type sessionValidator interface {
	Validate(token string) (auth.Session, error)
}

// Session puts the display name of a valid session token into the request
// context. Requests without a token pass through anonymously; an invalid
// token is rejected with 401. Browsers cannot set headers on WebSocket or
// EventSource requests, so a token query parameter is accepted too.
func Session(validator sessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			s, err := validator.Validate(token)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "invalid session token")
				return
			}
			ctx := ctxutil.WithUserName(r.Context(), s.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return r.URL.Query().Get("token")
}
