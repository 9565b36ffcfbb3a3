package handlers

import (
	"net/http"
	"strings"
	"sync"
)

// Startup steps, in the order the server runs them
const (
	StepDatabase   = "Database connection"
	StepMigrations = "Running migrations"
	StepSeed       = "Seeding default tests"
	StepServices   = "Initializing services"
)

// StartupStatus tracks the initialization progress
type StartupStatus struct {
	mu       sync.RWMutex
	Ready    bool
	Current  string
	Progress int
	Steps    []StartupStep
}

type StartupStep struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// NewStartupStatus creates a tracker for the named steps
func NewStartupStatus(steps ...string) *StartupStatus {
	s := &StartupStatus{Current: "Initializing..."}
	for _, name := range steps {
		s.Steps = append(s.Steps, StartupStep{Name: name})
	}
	return s
}

// SetCurrentStep updates the current initialization step
func (s *StartupStatus) SetCurrentStep(step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Current = step
}

// CompleteStep marks a step as completed and updates progress
func (s *StartupStatus) CompleteStep(stepName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed := 0
	for i := range s.Steps {
		if s.Steps[i].Name == stepName {
			s.Steps[i].Completed = true
		}
		if s.Steps[i].Completed {
			completed++
		}
	}
	if len(s.Steps) > 0 {
		s.Progress = completed * 100 / len(s.Steps)
	}
}

// MarkReady marks the server as fully initialized
func (s *StartupStatus) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ready = true
	s.Current = "Server ready"
	s.Progress = 100
}

// IsReady returns whether the server is fully initialized
func (s *StartupStatus) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Ready
}

// ServeHTTP reports startup progress as JSON
func (s *StartupStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	body := struct {
		Ready    bool          `json:"ready"`
		Current  string        `json:"current"`
		Progress int           `json:"progress"`
		Steps    []StartupStep `json:"steps"`
	}{s.Ready, s.Current, s.Progress, append([]StartupStep(nil), s.Steps...)}
	s.mu.RUnlock()

	status := http.StatusOK
	if !body.Ready {
		status = http.StatusServiceUnavailable
	}
	respondWithJSON(w, status, body)
}

// RequireReady answers API requests with 503 until startup has finished.
// The startup status endpoint itself is always served.
func (s *StartupStatus) RequireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.IsReady() && strings.HasPrefix(r.URL.Path, "/api/") && r.URL.Path != StartupPath {
			w.Header().Set("Retry-After", "2")
			respondWithError(w, http.StatusServiceUnavailable, ErrNotReady, "", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
