package server

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"
)

const (
	// sessionCookieName holds the signed session token issued at sign-in
	sessionCookieName = "axis_session"
	// authStateCookieName tracks the OAuth state parameter across the provider round-trip
	authStateCookieName = "auth_state"
	// authNonceCookieName tracks the OIDC nonce across the provider round-trip
	authNonceCookieName = "auth_nonce"
)

// generateRandomString creates a random base64url string
func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func (s *Server) SetSessionCookie(w http.ResponseWriter, r *http.Request, token string, maxAge int) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// ClearSessionCookie discards the session token. Clearing an absent cookie
// is harmless, so logout is idempotent.
func (s *Server) ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (s *Server) setAuthFlowCookie(w http.ResponseWriter, r *http.Request, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   getScheme(r) == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.config.GetAuthStateLifetime().Seconds()),
	})
}

func (s *Server) clearAuthFlowCookies(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{authStateCookieName, authNonceCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
	}
}

// sessionTokenFromRequest extracts the raw session token, empty when absent
func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// localTarget restricts a redirect target to a local path, defaulting to the
// home page. Prevents open-redirects via the logout callback parameter.
func localTarget(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return RouteHome
	}
	return target
}
