package service

import (
	"context"
	"log"

	"quizmaker/internal/fixtures"
	"quizmaker/internal/models"
)

// TestLister lists the tests a student can take
type TestLister interface {
	ListTests(ctx context.Context) ([]models.TestDefinition, error)
}

// DashboardService builds the landing pages. Apart from the live catalog
// the figures are sample data.
type DashboardService struct {
	catalog TestLister
}

// NewDashboardService creates a dashboard service. catalog may be nil.
func NewDashboardService(catalog TestLister) *DashboardService {
	return &DashboardService{catalog: catalog}
}

// StudentDashboard returns the student landing page, with the catalog's
// tests listed first among the upcoming ones
func (s *DashboardService) StudentDashboard(ctx context.Context) models.StudentDashboard {
	dash := fixtures.StudentDashboard()
	if s.catalog == nil {
		return dash
	}

	tests, err := s.catalog.ListTests(ctx)
	if err != nil {
		log.Printf("Error listing tests for dashboard: %v", err)
		return dash
	}

	upcoming := make([]models.UpcomingTest, 0, len(tests)+len(dash.Upcoming))
	for _, t := range tests {
		upcoming = append(upcoming, models.UpcomingTest{
			ID:              t.ID,
			Name:            t.Name,
			DurationMinutes: t.DurationSeconds / 60,
			TotalQuestions:  len(t.Questions),
		})
	}
	dash.Upcoming = append(upcoming, dash.Upcoming...)
	dash.Stats.UpcomingTests = len(dash.Upcoming)
	return dash
}

// TeacherDashboard returns the teacher landing page
func (s *DashboardService) TeacherDashboard(ctx context.Context) models.TeacherDashboard {
	return fixtures.TeacherDashboard()
}
