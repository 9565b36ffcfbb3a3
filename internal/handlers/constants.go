package handlers

const (
	ErrInvalidRequestBody  = "Invalid request body"
	ErrUnauthorized        = "Unauthorized"
	ErrForbidden           = "Forbidden"
	ErrInvalidCSRFToken    = "Invalid CSRF token"
	ErrTooManyRequests     = "Too many requests, please try again later"
	ErrSessionNotFound     = "Test session not found"
	ErrAnswerRequired      = "Both question and option are required"
	ErrInvalidAction       = "That action is not available right now"
	ErrInternalServerError = "Internal server error"
	ErrNotReady            = "Server is starting up"

	LoginPath = "/login"
)
