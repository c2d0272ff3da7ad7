package auth

import "context"

type contextKey struct{}

// WithSession returns a context carrying the authenticated session.
// The HTTP auth middleware sets this; downstream layers read it to act
// on behalf of the user.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// SessionFromContext returns the session stored in the context, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}

// UserIDFromContext returns the acting user's id, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	if s, ok := SessionFromContext(ctx); ok {
		return s.UserID
	}
	return ""
}
