package handlers

import (
	"net/http"

	"quizmaker/internal/service"
)

// DashboardHandler serves the role landing pages
type DashboardHandler struct {
	dashboards *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboards *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// StudentDashboard shows upcoming and completed tests and recent performance
func (h *DashboardHandler) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.dashboards.StudentDashboard(r.Context()))
}

// TeacherDashboard shows test statistics and student performance
func (h *DashboardHandler) TeacherDashboard(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.dashboards.TeacherDashboard(r.Context()))
}
