package validation

import (
	"errors"
	"testing"

	"quizmaker/internal/models"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{
			name:     "any credentials",
			email:    "student@example.com",
			password: "x",
			wantErr:  false,
		},
		{
			name:     "email need not be well formed",
			email:    "teacher",
			password: "secret",
			wantErr:  false,
		},
		{
			name:     "missing email",
			email:    "",
			password: "secret",
			wantErr:  true,
		},
		{
			name:     "blank password",
			email:    "student@example.com",
			password: "   ",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLogin(%q, %q) error = %v, wantErr %v", tt.email, tt.password, err, tt.wantErr)
			}
		})
	}
}

func validTest() *models.TestDefinition {
	return &models.TestDefinition{
		ID:               "t1",
		Name:             "Quiz",
		DurationSeconds:  60,
		PassingThreshold: 1,
		Questions: []models.Question{
			{Text: "Q1", Options: []string{"A", "B", "C", "D"}, CorrectOptionIndex: 3},
		},
	}
}

func TestValidateTestDefinition(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TestDefinition)
		field  string
	}{
		{
			name:   "valid test",
			mutate: func(*models.TestDefinition) {},
		},
		{
			name:   "missing name",
			mutate: func(t *models.TestDefinition) { t.Name = "" },
			field:  "name",
		},
		{
			name:   "negative duration",
			mutate: func(t *models.TestDefinition) { t.DurationSeconds = -1 },
			field:  "duration_seconds",
		},
		{
			name:   "no questions",
			mutate: func(t *models.TestDefinition) { t.Questions = nil },
			field:  "questions",
		},
		{
			name:   "threshold above question count",
			mutate: func(t *models.TestDefinition) { t.PassingThreshold = 2 },
			field:  "passing_threshold",
		},
		{
			name:   "zero threshold",
			mutate: func(t *models.TestDefinition) { t.PassingThreshold = 0 },
			field:  "passing_threshold",
		},
		{
			name:   "three options",
			mutate: func(t *models.TestDefinition) { t.Questions[0].Options = []string{"A", "B", "C"} },
			field:  "questions[0]",
		},
		{
			name:   "blank option",
			mutate: func(t *models.TestDefinition) { t.Questions[0].Options[2] = " " },
			field:  "questions[0].options[2]",
		},
		{
			name:   "correct option out of range",
			mutate: func(t *models.TestDefinition) { t.Questions[0].CorrectOptionIndex = 4 },
			field:  "questions[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validTest()
			tt.mutate(def)
			err := ValidateTestDefinition(def)

			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestValidateTestDefinitionNil(t *testing.T) {
	if err := ValidateTestDefinition(nil); err == nil {
		t.Error("expected error for nil test")
	}
}
