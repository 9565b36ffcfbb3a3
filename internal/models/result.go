package models

// NotAnsweredText is shown as the user's answer for an empty slot
const NotAnsweredText = "Not answered"

// ResultSummary is the outcome of a completed test session
type ResultSummary struct {
	CorrectCount     int            `json:"correct_count"`
	TotalQuestions   int            `json:"total_questions"`
	UnansweredCount  int            `json:"unanswered_count"`
	PassingThreshold int            `json:"passing_threshold"`
	Passed           bool           `json:"passed"`
	Percentage       int            `json:"percentage"`
	Detail           []AnswerDetail `json:"detail"`
}

// AnswerDetail describes how one question was answered
type AnswerDetail struct {
	QuestionText      string `json:"question_text"`
	UserAnswerText    string `json:"user_answer_text"`
	CorrectAnswerText string `json:"correct_answer_text"`
	IsCorrect         bool   `json:"is_correct"`
}

// Clone returns an independent copy
func (r ResultSummary) Clone() ResultSummary {
	out := r
	out.Detail = append([]AnswerDetail(nil), r.Detail...)
	return out
}

const (
	PassedMessage = "Congratulations! You passed the test!"
	FailedMessage = "Unfortunately, you did not pass the test."
)

// Outcome returns the pass or fail banner text
func (r ResultSummary) Outcome() string {
	if r.Passed {
		return PassedMessage
	}
	return FailedMessage
}
