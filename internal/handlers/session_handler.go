package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizmaker/internal/models"
	"quizmaker/internal/quiz"
	"quizmaker/internal/service"
)

// SessionHandler exposes the test-taking state machine over HTTP
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// answerRequest fields are pointers so that a missing or null option is
// rejected rather than read as option 0
type answerRequest struct {
	Question *int `json:"question"`
	Option   *int `json:"option"`
}

type navigateRequest struct {
	Index int `json:"index"`
}

// StartSession starts or resumes the student's attempt at a test
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	testID := r.PathValue("testId")

	session, err := h.sessions.Start(r.Context(), *user, testID)
	if errors.Is(err, service.ErrTestNotFound) {
		respondWithJSON(w, http.StatusNotFound, LoadingView())
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to start test "+testID, err)
		return
	}

	h.respondWithSession(w, session)
}

// GetSession returns the current view of a session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	h.respondWithSession(w, session)
}

// SelectAnswer records the chosen option for a question
func (h *SessionHandler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	if req.Question == nil || req.Option == nil {
		respondWithError(w, http.StatusBadRequest, ErrAnswerRequired, "", nil)
		return
	}
	h.act(w, r, func(s *quiz.Session) error {
		return s.SelectAnswer(*req.Question, *req.Option)
	})
}

// Navigate jumps to a question; out-of-range targets are clamped
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}
	h.act(w, r, func(s *quiz.Session) error {
		_, err := s.Navigate(req.Index)
		return err
	})
}

// Next moves to the following question
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *quiz.Session) error {
		_, err := s.Next()
		return err
	})
}

// Previous moves to the preceding question
func (h *SessionHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *quiz.Session) error {
		_, err := s.Previous()
		return err
	})
}

// RequestSubmit opens the submit confirmation
func (h *SessionHandler) RequestSubmit(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, (*quiz.Session).RequestSubmit)
}

// CancelSubmit closes the submit confirmation
func (h *SessionHandler) CancelSubmit(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, (*quiz.Session).CancelSubmit)
}

// ConfirmSubmit submits the test and shows the results
func (h *SessionHandler) ConfirmSubmit(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *quiz.Session) error {
		_, err := s.ConfirmSubmit()
		return err
	})
}

// AcknowledgeTimeUp dismisses the time-up dialog and shows the results
func (h *SessionHandler) AcknowledgeTimeUp(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, func(s *quiz.Session) error {
		_, err := s.Acknowledge()
		return err
	})
}

// CloseResults drops a finished session and sends the student back to
// their dashboard
func (h *SessionHandler) CloseResults(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !session.Finished() {
		respondWithError(w, http.StatusConflict, ErrInvalidAction, "", nil)
		return
	}
	if err := h.sessions.Close(*user, session.ID()); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to close session", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"redirect": models.RoleStudent.DashboardPath()})
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*quiz.Session, bool) {
	user := GetUserFromContext(r.Context())
	session, err := h.sessions.Get(*user, r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, ErrSessionNotFound, "", nil)
		return nil, false
	}
	return session, true
}

// act applies one state-machine action and responds with the new view
func (h *SessionHandler) act(w http.ResponseWriter, r *http.Request, action func(*quiz.Session) error) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := action(session); err != nil {
		switch {
		case errors.Is(err, quiz.ErrInvalidTransition):
			respondWithError(w, http.StatusConflict, ErrInvalidAction, "", nil)
		case errors.Is(err, quiz.ErrQuestionOutOfRange), errors.Is(err, quiz.ErrOptionOutOfRange):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Session action failed", err)
		}
		return
	}

	h.respondWithSession(w, session)
}

func (h *SessionHandler) respondWithSession(w http.ResponseWriter, session *quiz.Session) {
	snap := session.Snapshot()
	respondWithJSON(w, http.StatusOK, BuildTestView(&snap))
}
