package server

import "net/http"

const contentTypeHTML = "text/html; charset=utf-8"

// IndexHandler renders the marketing landing page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]interface{}{
			"AppName":  s.config.GetAppName(),
			"SignedIn": s.sessions.Resolve(sessionTokenFromRequest(r)) != nil,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}
