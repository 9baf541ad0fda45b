package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   string
}

// LoginPageHandler displays the login page (GET /auth/login). A visitor whose
// session already resolves is sent straight to the dashboard.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl, err := ParseTemplate("login.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse login template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if identity := s.sessions.Resolve(sessionTokenFromRequest(r)); identity != nil {
			http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
			return
		}

		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := loginTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render login template")
			http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		}
	}
}

// InitiateSignInHandler starts the Google sign-in flow: it stores the state
// and nonce in short-lived cookies and hands the user agent to the provider.
func (s *Server) InitiateSignInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := generateRandomString(32)
		nonce := generateRandomString(32)

		s.setAuthFlowCookie(w, r, authStateCookieName, state)
		s.setAuthFlowCookie(w, r, authNonceCookieName, nonce)

		http.Redirect(w, r, s.provider.AuthCodeURL(state, nonce), http.StatusSeeOther)
	}
}
