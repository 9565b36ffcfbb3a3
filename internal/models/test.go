package models

import "errors"

// OptionsPerQuestion is the fixed number of answer options on every question
const OptionsPerQuestion = 4

// TestDefinition is an immutable multiple-choice test
type TestDefinition struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	DurationSeconds  int        `json:"duration_seconds"`
	PassingThreshold int        `json:"passing_threshold"`
	Questions        []Question `json:"questions"`
}

// Question is a single multiple-choice question. Its position in
// TestDefinition.Questions is its display order and answer slot.
type Question struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

// QuestionCount returns the number of questions in the test
func (t *TestDefinition) QuestionCount() int {
	return len(t.Questions)
}

// Clone returns a deep copy of the test
func (t TestDefinition) Clone() TestDefinition {
	out := t
	out.Questions = make([]Question, len(t.Questions))
	for i, q := range t.Questions {
		q.Options = append([]string(nil), q.Options...)
		out.Questions[i] = q
	}
	return out
}

// OptionText returns the text of an option, or "" when out of range
func (q Question) OptionText(option int) string {
	if option < 0 || option >= len(q.Options) {
		return ""
	}
	return q.Options[option]
}

// CorrectAnswerText returns the text of the correct option
func (q Question) CorrectAnswerText() string {
	return q.OptionText(q.CorrectOptionIndex)
}

// ErrTestNotFound is returned by test providers when no definition exists
// for the requested id
var ErrTestNotFound = errors.New("test not found")
