package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/retroboard-backend/pkg/ctxutil"
)

// probePaths are logged at debug so orchestrator polling stays out of the
// info stream.
var probePaths = map[string]bool{"/live": true, "/ready": true, "/health": true, "/metrics": true}

// Logger logs one http.request record per request after it completes.
// Streams (SSE, WebSocket) are logged when they end, with their full
// duration. route is the matched mux pattern, empty on 404.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", r.Pattern),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if name, ok := ctxutil.UserNameFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("user", name))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case probePaths[r.URL.Path] && sw.status < 400:
				level = slog.LevelDebug
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}
