package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizmaker/internal/models"
	"quizmaker/internal/security"
	"quizmaker/internal/service"
	"quizmaker/internal/validation"
)

// AuthHandler handles the mock login
type AuthHandler struct {
	authService *service.AuthService
	csrf        *security.CSRFGenerator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, csrf *security.CSRFGenerator) *AuthHandler {
	return &AuthHandler{authService: authService, csrf: csrf}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse tells the client who logged in and where to go next
type LoginResponse struct {
	User      models.User `json:"user"`
	Redirect  string      `json:"redirect"`
	CSRFToken string      `json:"csrf_token"`
}

// Login accepts any non-empty credentials and sets the login cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "", nil)
		return
	}

	token, session, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		var ve validation.ValidationError
		if errors.As(err, &ve) {
			respondWithError(w, http.StatusBadRequest, ve.Message, "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Login failed", err)
		return
	}

	csrfToken, err := h.csrf.GenerateToken(session.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to generate CSRF token", err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, token, session.ExpiresAt))
	respondWithJSON(w, http.StatusOK, LoginResponse{
		User:      session.User,
		Redirect:  session.User.Role.DashboardPath(),
		CSRFToken: csrfToken,
	})
}

// Logout clears the login cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r))
	respondWithJSON(w, http.StatusOK, map[string]string{"redirect": LoginPath})
}

// Me returns the logged-in user with a fresh CSRF token, for page reloads
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		respondWithError(w, http.StatusUnauthorized, ErrUnauthorized, "", nil)
		return
	}

	csrfToken, err := h.csrf.GenerateToken(session.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to generate CSRF token", err)
		return
	}
	respondWithJSON(w, http.StatusOK, LoginResponse{
		User:      session.User,
		Redirect:  session.User.Role.DashboardPath(),
		CSRFToken: csrfToken,
	})
}
