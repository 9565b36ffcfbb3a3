package handlers

import (
	"fmt"

	"quizmaker/internal/models"
	"quizmaker/internal/quiz"
)

// LowTimeWarningSeconds is the point below which a running clock is shown as a warning
const LowTimeWarningSeconds = 300

// ViewKind names what the test page should show
type ViewKind string

const (
	ViewLoading  ViewKind = "loading"
	ViewQuestion ViewKind = "question"
	ViewConfirm  ViewKind = "confirm_submit"
	ViewTimeUp   ViewKind = "time_up"
	ViewResults  ViewKind = "results"
)

// Actions a dialog button triggers; each is a POST to /api/sessions/{id}/{action}
const (
	ActionCancel      = "cancel"
	ActionConfirm     = "confirm"
	ActionAcknowledge = "acknowledge"
	ActionClose       = "close"
)

// TestView is everything the test page renders for one state
type TestView struct {
	SessionID string          `json:"session_id,omitempty"`
	Kind      ViewKind        `json:"view"`
	TestID    string          `json:"test_id,omitempty"`
	TestName  string          `json:"test_name,omitempty"`
	Message   string          `json:"message,omitempty"`
	Clock     *ClockView      `json:"clock,omitempty"`
	Navigator []NavigatorItem `json:"navigator,omitempty"`
	Question  *QuestionView   `json:"question,omitempty"`
	Dialog    *DialogView     `json:"dialog,omitempty"`
}

// ClockView is the countdown display
type ClockView struct {
	RemainingSeconds int    `json:"remaining_seconds"`
	Display          string `json:"display"`
	Warning          bool   `json:"warning"`
	Running          bool   `json:"running"`
}

// NavigatorItem is one numbered button in the question navigator
type NavigatorItem struct {
	Index    int  `json:"index"`
	Number   int  `json:"number"`
	Answered bool `json:"answered"`
	Current  bool `json:"current"`
}

// QuestionView is the current question. It never carries the correct answer.
type QuestionView struct {
	Index       int      `json:"index"`
	Heading     string   `json:"heading"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Selected    *int     `json:"selected"`
	HasPrevious bool     `json:"has_previous"`
	HasNext     bool     `json:"has_next"`
}

// DialogView is a modal dialog over the question page
type DialogView struct {
	Title   string         `json:"title"`
	Message string         `json:"message,omitempty"`
	Actions []DialogAction `json:"actions"`
	Results *ResultsView   `json:"results,omitempty"`
}

// DialogAction is a dialog button
type DialogAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// ResultsView is the body of the results dialog
type ResultsView struct {
	Passed          bool         `json:"passed"`
	Banner          string       `json:"banner"`
	Percentage      int          `json:"percentage"`
	Score           string       `json:"score"`
	CorrectSummary  string       `json:"correct_summary"`
	PassingCriteria string       `json:"passing_criteria"`
	Unanswered      string       `json:"unanswered"`
	Details         []DetailView `json:"details"`
}

// DetailView is one row of the detailed results
type DetailView struct {
	Heading       string `json:"heading"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	IsCorrect     bool   `json:"is_correct"`
}

// FormatClock renders seconds as HH:MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

// LoadingView is shown while no test definition is available
func LoadingView() TestView {
	return TestView{Kind: ViewLoading, Message: "Loading..."}
}

// BuildTestView renders a session snapshot. The question page stays
// populated under every dialog, as it does on screen.
func BuildTestView(snap *quiz.Snapshot) TestView {
	if snap == nil || len(snap.Test.Questions) == 0 {
		return LoadingView()
	}

	view := TestView{
		SessionID: snap.ID,
		Kind:      ViewQuestion,
		TestID:    snap.TestID,
		TestName:  snap.Test.Name,
		Clock:     buildClock(snap.Timer),
		Navigator: buildNavigator(snap),
		Question:  buildQuestion(snap),
	}

	switch snap.State {
	case quiz.StateConfirmingSubmit:
		view.Kind = ViewConfirm
		view.Dialog = confirmDialog(snap.UnansweredCount)
	case quiz.StateTimeExpired:
		view.Kind = ViewTimeUp
		view.Dialog = timeUpDialog()
	case quiz.StateShowingResults:
		if snap.Result != nil {
			view.Kind = ViewResults
			view.Dialog = resultsDialog(*snap.Result)
		}
	}
	return view
}

func buildClock(t models.TimerState) *ClockView {
	return &ClockView{
		RemainingSeconds: t.RemainingSeconds,
		Display:          FormatClock(t.RemainingSeconds),
		Warning:          t.Running && t.RemainingSeconds < LowTimeWarningSeconds,
		Running:          t.Running,
	}
}

func buildNavigator(snap *quiz.Snapshot) []NavigatorItem {
	items := make([]NavigatorItem, len(snap.Test.Questions))
	for i := range items {
		items[i] = NavigatorItem{
			Index:    i,
			Number:   i + 1,
			Answered: i < len(snap.Answers) && snap.Answers[i].IsAnswered(),
			Current:  i == snap.CurrentIndex,
		}
	}
	return items
}

func buildQuestion(snap *quiz.Snapshot) *QuestionView {
	total := len(snap.Test.Questions)
	i := snap.CurrentIndex
	q := snap.Test.Questions[i]

	view := &QuestionView{
		Index:       i,
		Heading:     fmt.Sprintf("Question %d of %d", i+1, total),
		Text:        q.Text,
		Options:     append([]string(nil), q.Options...),
		HasPrevious: i > 0,
		HasNext:     i < total-1,
	}
	if i < len(snap.Answers) {
		if selected, ok := snap.Answers[i].Option(); ok {
			view.Selected = &selected
		}
	}
	return view
}

func confirmDialog(unanswered int) *DialogView {
	return &DialogView{
		Title:   "Confirm Submission",
		Message: fmt.Sprintf("%d questions are unanswered. Are you sure you want to submit?", unanswered),
		Actions: []DialogAction{
			{Label: "Cancel", Action: ActionCancel},
			{Label: "Submit", Action: ActionConfirm},
		},
	}
}

func timeUpDialog() *DialogView {
	return &DialogView{
		Title:   "Time's Up!",
		Message: "Your time is up! The test will be automatically submitted.",
		Actions: []DialogAction{{Label: "Ok", Action: ActionAcknowledge}},
	}
}

func resultsDialog(r models.ResultSummary) *DialogView {
	details := make([]DetailView, len(r.Detail))
	for i, d := range r.Detail {
		details[i] = DetailView{
			Heading:    fmt.Sprintf("Question %d: %s", i+1, d.QuestionText),
			YourAnswer: d.UserAnswerText,
			IsCorrect:  d.IsCorrect,
		}
		if !d.IsCorrect {
			details[i].CorrectAnswer = d.CorrectAnswerText
		}
	}

	return &DialogView{
		Title:   "Test Results",
		Actions: []DialogAction{{Label: "Close", Action: ActionClose}},
		Results: &ResultsView{
			Passed:          r.Passed,
			Banner:          r.Outcome(),
			Percentage:      r.Percentage,
			Score:           fmt.Sprintf("Score: %d%%", r.Percentage),
			CorrectSummary:  fmt.Sprintf("%d out of %d questions correct", r.CorrectCount, r.TotalQuestions),
			PassingCriteria: fmt.Sprintf("Passing Criteria: %d correct answers", r.PassingThreshold),
			Unanswered:      fmt.Sprintf("Unanswered Questions: %d", r.UnansweredCount),
			Details:         details,
		},
	}
}
