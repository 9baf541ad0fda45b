package server

import "net/http"

// LogoutHandler terminates the session: the token cookie is discarded and
// the user agent navigates to the callback target (default home). Logging
// out without a session is a no-op, not an error.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.ClearSessionCookie(w, r)
		http.Redirect(w, r, localTarget(r.URL.Query().Get("callbackUrl")), http.StatusSeeOther)
	}
}
