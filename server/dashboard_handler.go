package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/axis-learning/axis-server/content"
	"github.com/axis-learning/axis-server/dashboard"
)

// DashboardPageData is the template model for the dashboard shell.
type DashboardPageData struct {
	AppName  string
	UserName string
	Email    string
	Image    string
	IsAdmin  bool

	Tabs       []dashboard.Tab
	DefaultTab dashboard.Tab

	Stats    content.OverviewStats
	Activity []content.Activity

	Categories []content.Category
	Paths      []content.LearningPath

	Quizzes []content.Quiz

	LogoutURL string
}

// DashboardHandler renders the dashboard shell. Session gating happens in
// RequireSession; by the time this runs an identity is always present. The
// active tab lives in the URL fragment and is managed client-side with the
// same normalization rules as dashboard.ParseTab.
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("dashboard.html")
	if err != nil {
		panic("Failed to parse dashboard template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFromContext(r.Context())
		if identity == nil {
			// RequireSession should make this unreachable
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}

		data := DashboardPageData{
			AppName:    s.config.GetAppName(),
			UserName:   identity.Name,
			Email:      identity.Email,
			Image:      identity.ProfileImage,
			IsAdmin:    identity.IsAdmin(),
			Tabs:       dashboard.Tabs(),
			DefaultTab: dashboard.DefaultTab,
			Stats:      content.SampleStats(),
			Activity:   content.SampleActivity(),
			Categories: content.Categories(),
			Paths:      content.SampleLearningPaths(),
			Quizzes:    content.SampleQuizzes(),
			LogoutURL:  RouteLogout + "?callbackUrl=/",
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render dashboard template")
		}
	}
}
