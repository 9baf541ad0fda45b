package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// OAuthCallbackHandler completes the Google sign-in flow. Provider and
// persistence failures are logged here and converted to a denied sign-in:
// the user is bounced back to the login screen with a generic error, and no
// failure detail crosses into the UI.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse form to support both GET (query params) and POST (form_post response mode)
		state := r.FormValue("state")
		code := r.FormValue("code")
		errorParam := r.FormValue("error")

		// The user cancelled or the provider returned an error
		if errorParam != "" {
			log.Warn().Str("error", errorParam).Msg("identity provider denied sign-in")
			s.denySignIn(w, r, "Sign-in was cancelled")
			return
		}

		if code == "" || state == "" {
			s.denySignIn(w, r, "Sign-in failed")
			return
		}

		stateCookie, err := r.Cookie(authStateCookieName)
		if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
			log.Warn().Msg("OAuth state mismatch")
			s.denySignIn(w, r, "Sign-in failed")
			return
		}

		nonceCookie, err := r.Cookie(authNonceCookieName)
		if err != nil || nonceCookie.Value == "" {
			s.denySignIn(w, r, "Sign-in failed")
			return
		}

		// Clean up flow state after use
		s.clearAuthFlowCookies(w, r)

		profile, err := s.provider.Authenticate(r.Context(), code, nonceCookie.Value)
		if err != nil {
			log.Err(err).Msg("OAuth sign in error")
			s.denySignIn(w, r, "Sign-in failed")
			return
		}

		user, err := s.sessions.SignIn(r.Context(), *profile)
		if err != nil {
			log.Err(err).Str("email", profile.Email).Msg("OAuth sign in error")
			s.denySignIn(w, r, "Sign-in failed")
			return
		}

		token, err := s.sessions.IssueToken(user)
		if err != nil {
			log.Err(err).Str("email", user.Email).Msg("failed to issue session token")
			s.denySignIn(w, r, "Sign-in failed")
			return
		}

		s.metrics.RecordSignIn("allowed")
		maxAge := int(s.config.GetSessionLifetime().Seconds())
		s.SetSessionCookie(w, r, token, maxAge)
		http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
	}
}

// denySignIn returns the user to the login screen with a generic message
func (s *Server) denySignIn(w http.ResponseWriter, r *http.Request, message string) {
	s.metrics.RecordSignIn("denied")
	http.Redirect(w, r, RouteLogin+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}
