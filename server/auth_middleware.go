package server

import (
	"context"
	"net/http"

	"github.com/axis-learning/axis-server/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeyIdentity stores the resolved session identity
	ContextKeyIdentity ContextKey = "identity"
)

// RequireSession is middleware for HTML routes that resolves the session
// token from the request cookie. Any resolution failure - missing, malformed,
// expired, forged - is treated identically to "never signed in" and redirects
// to the login page without surfacing an error.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			identity := s.sessions.Resolve(sessionTokenFromRequest(r))
			if identity == nil {
				s.metrics.RecordSessionResolve("no_session")
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}
			s.metrics.RecordSessionResolve("session")

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			next(w, r.WithContext(ctx))
		}
	}
}

// IdentityFromContext returns the session identity injected by
// RequireSession, nil when the request is unauthenticated.
func IdentityFromContext(ctx context.Context) *session.Identity {
	identity, _ := ctx.Value(ContextKeyIdentity).(*session.Identity)
	return identity
}
