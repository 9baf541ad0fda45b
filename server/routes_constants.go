package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Landing page
	RouteHome = "/"

	// Auth Routes - Login & Logout
	RouteLogin       = "/auth/login"
	RouteLoginGoogle = "/auth/login/google"
	RouteCallback    = "/auth/callback"
	RouteLogout      = "/auth/logout"

	// Dashboard (tab is carried in the URL fragment, e.g. /dashboard#quizzes)
	RouteDashboard = "/dashboard"

	// Operational Routes
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
