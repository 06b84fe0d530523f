package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyIsHTMX  ctxKey = "is_htmx"
	ctxKeySession ctxKey = "session"
)

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithSession stores session data in context
func WithSession(ctx context.Context, s *SessionData) context.Context {
	return context.WithValue(ctx, ctxKeySession, s)
}

// SessionFromContext returns the session attached by Session, if any.
func SessionFromContext(ctx context.Context) *SessionData {
	if v := ctx.Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return nil
}

// CSRFToken returns the token forms must echo back, or "" outside a session.
func CSRFToken(ctx context.Context) string {
	if s := SessionFromContext(ctx); s != nil {
		return s.CSRFToken
	}
	return ""
}
