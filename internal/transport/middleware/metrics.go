package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	RequestStarted()
	RecordRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics records request counts and latency by route pattern. No
// middleware between it and the ServeMux may replace the request, or the
// pattern the mux sets on it is not visible here.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			rec.RequestStarted()

			next.ServeHTTP(sw, r)

			rec.RecordRequest(r.Method, r.Pattern, sw.status, time.Since(start))
		})
	}
}
