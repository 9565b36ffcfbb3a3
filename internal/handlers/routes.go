package handlers

import (
	"net/http"

	"quizmaker/internal/models"
	"quizmaker/internal/security"
)

// StartupPath serves startup progress
const StartupPath = "/api/startup"

// Routes bundles the handlers mounted on the API mux
type Routes struct {
	Middleware   *Middleware
	LoginLimiter *security.RateLimiter
	Auth         *AuthHandler
	Sessions     *SessionHandler
	Dashboards   *DashboardHandler
	Startup      *StartupStatus
}

// Register mounts every API route on mux
func (rt *Routes) Register(mux *http.ServeMux) {
	student := func(h http.HandlerFunc) http.HandlerFunc {
		return rt.Middleware.RequireRole(models.RoleStudent, h)
	}
	teacher := func(h http.HandlerFunc) http.HandlerFunc {
		return rt.Middleware.RequireRole(models.RoleTeacher, h)
	}

	mux.Handle("GET "+StartupPath, rt.Startup)

	// Auth
	mux.HandleFunc("POST /api/login", RateLimit(rt.LoginLimiter, rt.Auth.Login))
	mux.HandleFunc("POST /api/logout", rt.Auth.Logout)
	mux.HandleFunc("GET /api/me", rt.Middleware.RequireAuth(rt.Auth.Me))

	// Dashboards
	mux.HandleFunc("GET /api/student/dashboard", student(rt.Dashboards.StudentDashboard))
	mux.HandleFunc("GET /api/teacher/dashboard", teacher(rt.Dashboards.TeacherDashboard))

	// Test taking
	mux.HandleFunc("POST /api/tests/{testId}/sessions", student(rt.Sessions.StartSession))
	mux.HandleFunc("GET /api/sessions/{id}", student(rt.Sessions.GetSession))
	mux.HandleFunc("POST /api/sessions/{id}/answer", student(rt.Sessions.SelectAnswer))
	mux.HandleFunc("POST /api/sessions/{id}/navigate", student(rt.Sessions.Navigate))
	mux.HandleFunc("POST /api/sessions/{id}/next", student(rt.Sessions.Next))
	mux.HandleFunc("POST /api/sessions/{id}/previous", student(rt.Sessions.Previous))
	mux.HandleFunc("POST /api/sessions/{id}/submit", student(rt.Sessions.RequestSubmit))
	mux.HandleFunc("POST /api/sessions/{id}/"+ActionCancel, student(rt.Sessions.CancelSubmit))
	mux.HandleFunc("POST /api/sessions/{id}/"+ActionConfirm, student(rt.Sessions.ConfirmSubmit))
	mux.HandleFunc("POST /api/sessions/{id}/"+ActionAcknowledge, student(rt.Sessions.AcknowledgeTimeUp))
	mux.HandleFunc("POST /api/sessions/{id}/"+ActionClose, student(rt.Sessions.CloseResults))
}
