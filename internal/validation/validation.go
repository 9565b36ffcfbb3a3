package validation

import (
	"fmt"
	"strings"

	"quizmaker/internal/models"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired checks that a field is present
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return ValidationError{Field: field, Message: field + " is required"}
	}
	return nil
}

// ValidateLogin checks the login form. Any non-empty credentials are accepted.
func ValidateLogin(email, password string) error {
	if err := ValidateRequired("email", email); err != nil {
		return err
	}
	return ValidateRequired("password", password)
}

// ValidateTestDefinition checks that a test is well formed: a name, at least
// one question, exactly four non-empty options per question, a correct
// option in range and a passing threshold between 1 and the question count.
func ValidateTestDefinition(t *models.TestDefinition) error {
	if t == nil {
		return ValidationError{Field: "test", Message: "test is required"}
	}
	if err := ValidateRequired("name", t.Name); err != nil {
		return err
	}
	if t.DurationSeconds < 0 {
		return ValidationError{Field: "duration_seconds", Message: "duration cannot be negative"}
	}
	if len(t.Questions) == 0 {
		return ValidationError{Field: "questions", Message: "at least one question is required"}
	}
	if t.PassingThreshold < 1 || t.PassingThreshold > len(t.Questions) {
		return ValidationError{
			Field:   "passing_threshold",
			Message: fmt.Sprintf("passing threshold must be between 1 and %d", len(t.Questions)),
		}
	}

	for i, q := range t.Questions {
		field := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.Text) == "" {
			return ValidationError{Field: field, Message: "question text is required"}
		}
		if len(q.Options) != models.OptionsPerQuestion {
			return ValidationError{Field: field, Message: fmt.Sprintf("exactly %d options are required", models.OptionsPerQuestion)}
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return ValidationError{Field: fmt.Sprintf("%s.options[%d]", field, j), Message: "option text is required"}
			}
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return ValidationError{Field: field, Message: "correct option is out of range"}
		}
	}
	return nil
}
