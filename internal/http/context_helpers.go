package httpx

import (
	"context"

	domainauth "github.com/offertrack/track-ui-api/internal/domain/auth"
)

// SetSessionInContext returns a child context that carries the given session.
// Sessions live on the shared auth context key so service-layer code (per-user
// chart memoization in particular) sees the same identity the handlers do.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return domainauth.WithSession(ctx, session)
}

// GetUserSessionFromContext returns the session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	return domainauth.SessionFromContext(ctx)
}

// GetSessionFromContext retrieves the session from the request context.
// Maintained for convenience; prefer GetUserSessionFromContext when you need presence info.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := domainauth.SessionFromContext(ctx); ok {
		return s
	}
	return nil
}
