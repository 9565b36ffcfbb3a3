package service

import (
	"fmt"
	"hash/fnv"
	"strings"

	"quizmaker/internal/models"
	"quizmaker/internal/security"
	"quizmaker/internal/validation"
)

// mockDisplayName is shown for every logged-in user until real accounts exist
const mockDisplayName = "John Doe"

// AuthService handles the mock login. Any non-empty credentials are
// accepted and the role is inferred from the email address.
type AuthService struct {
	tokens *security.TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(tokens *security.TokenIssuer) *AuthService {
	return &AuthService{tokens: tokens}
}

// Login issues a signed token for the given credentials
func (s *AuthService) Login(email, password string) (string, *models.Session, error) {
	if err := validation.ValidateLogin(email, password); err != nil {
		return "", nil, err
	}

	email = strings.TrimSpace(email)
	user := models.User{
		ID:    UserIDForEmail(email),
		Name:  mockDisplayName,
		Email: email,
		Role:  models.RoleForEmail(email),
	}

	token, session, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}
	return token, session, nil
}

// ValidateSession returns the session a token represents
func (s *AuthService) ValidateSession(token string) (*models.Session, error) {
	return s.tokens.Parse(token)
}

// UserIDForEmail gives every email address a stable numeric id so that the
// same person resumes the same attempts across logins
func UserIDForEmail(email string) int64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
	return int64(h.Sum64() & 0x7fffffffffffffff)
}
