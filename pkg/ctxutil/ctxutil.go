package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	userNameKey  ctxKey = "user_name"
	requestIDKey ctxKey = "request_id"
)

// WithUserName stores the session display name in the context.
func WithUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, userNameKey, name)
}

// UserNameFromCtx extracts the session display name from the context.
// Returns "" and false if the value is missing, blank, or wrong type.
func UserNameFromCtx(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", false
	}
	return name, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// UserNameOr returns explicit (trimmed) when non-blank, otherwise the session
// display name from ctx, otherwise "".
func UserNameOr(ctx context.Context, explicit string) string {
	if s := strings.TrimSpace(explicit); s != "" {
		return s
	}
	name, _ := UserNameFromCtx(ctx)
	return strings.TrimSpace(name)
}
