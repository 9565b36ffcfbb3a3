package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"quizmaker/internal/models"
	"quizmaker/internal/quiz"
)

func twoQuestionQuiz() models.TestDefinition {
	return models.TestDefinition{
		ID:               "quiz",
		Name:             "Two Questions",
		DurationSeconds:  2,
		PassingThreshold: 1,
		Questions: []models.Question{
			{Text: "Q1", Options: []string{"A", "B", "C", "D"}, CorrectOptionIndex: 1},
			{Text: "Q2", Options: []string{"E", "F", "G", "H"}, CorrectOptionIndex: 0},
		},
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1800, "00:30:00"},
		{3661, "01:01:01"},
		{299, "00:04:59"},
		{0, "00:00:00"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatClock(tt.seconds); got != tt.want {
				t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestBuildTestViewLoading(t *testing.T) {
	if v := BuildTestView(nil); v.Kind != ViewLoading || v.Message != "Loading..." {
		t.Errorf("BuildTestView(nil) = %+v", v)
	}
	if v := BuildTestView(&quiz.Snapshot{}); v.Kind != ViewLoading {
		t.Errorf("empty snapshot view = %v, want loading", v.Kind)
	}
}

func TestBuildTestViewQuestion(t *testing.T) {
	s := quiz.NewSession("quiz", twoQuestionQuiz())
	s.SelectAnswer(0, 0)
	snap := s.Snapshot()

	v := BuildTestView(&snap)
	if v.Kind != ViewQuestion || v.Dialog != nil {
		t.Fatalf("view = %v dialog = %+v", v.Kind, v.Dialog)
	}
	if v.Clock.Display != "00:00:02" || !v.Clock.Warning || !v.Clock.Running {
		t.Errorf("clock = %+v", v.Clock)
	}
	if !v.Navigator[0].Answered || !v.Navigator[0].Current || v.Navigator[1].Answered {
		t.Errorf("navigator = %+v", v.Navigator)
	}
	q := v.Question
	if q.Heading != "Question 1 of 2" || q.Selected == nil || *q.Selected != 0 {
		t.Errorf("question = %+v", q)
	}
	if q.HasPrevious || !q.HasNext {
		t.Errorf("first question buttons: previous=%v next=%v", q.HasPrevious, q.HasNext)
	}

	data, _ := json.Marshal(v)
	if strings.Contains(string(data), "correct") {
		t.Errorf("question view leaks the answer key: %s", data)
	}
}

func TestBuildTestViewNoWarningWithTimeLeft(t *testing.T) {
	test := twoQuestionQuiz()
	test.DurationSeconds = 1800
	snap := quiz.NewSession("quiz", test).Snapshot()

	if v := BuildTestView(&snap); v.Clock.Warning {
		t.Error("clock should not warn with 30 minutes left")
	}
}

func TestBuildTestViewConfirmDialog(t *testing.T) {
	s := quiz.NewSession("quiz", twoQuestionQuiz())
	s.SelectAnswer(1, 2)
	s.RequestSubmit()
	snap := s.Snapshot()

	v := BuildTestView(&snap)
	if v.Kind != ViewConfirm {
		t.Fatalf("Kind = %v", v.Kind)
	}
	if v.Dialog.Message != "1 questions are unanswered. Are you sure you want to submit?" {
		t.Errorf("Message = %q", v.Dialog.Message)
	}
	if len(v.Dialog.Actions) != 2 || v.Dialog.Actions[0].Action != ActionCancel || v.Dialog.Actions[1].Action != ActionConfirm {
		t.Errorf("Actions = %+v", v.Dialog.Actions)
	}
}

func TestBuildTestViewTimeUpAndResults(t *testing.T) {
	s := quiz.NewSession("quiz", twoQuestionQuiz())
	s.SelectAnswer(0, 1)
	s.Tick()
	s.Tick()
	snap := s.Snapshot()

	v := BuildTestView(&snap)
	if v.Kind != ViewTimeUp || v.Dialog.Title != "Time's Up!" {
		t.Fatalf("view = %v %+v", v.Kind, v.Dialog)
	}
	if v.Dialog.Message != "Your time is up! The test will be automatically submitted." {
		t.Errorf("Message = %q", v.Dialog.Message)
	}

	s.Acknowledge()
	snap = s.Snapshot()
	v = BuildTestView(&snap)
	if v.Kind != ViewResults {
		t.Fatalf("Kind = %v", v.Kind)
	}

	r := v.Dialog.Results
	if !r.Passed || r.Banner != "Congratulations! You passed the test!" {
		t.Errorf("banner = %v %q", r.Passed, r.Banner)
	}
	if r.Score != "Score: 50%" || r.CorrectSummary != "1 out of 2 questions correct" {
		t.Errorf("summary = %q / %q", r.Score, r.CorrectSummary)
	}
	if r.PassingCriteria != "Passing Criteria: 1 correct answers" || r.Unanswered != "Unanswered Questions: 1" {
		t.Errorf("criteria = %q / %q", r.PassingCriteria, r.Unanswered)
	}

	if d := r.Details[0]; !d.IsCorrect || d.CorrectAnswer != "" || d.YourAnswer != "B" {
		t.Errorf("correct row = %+v", d)
	}
	if d := r.Details[1]; d.IsCorrect || d.YourAnswer != "Not answered" || d.CorrectAnswer != "E" || d.Heading != "Question 2: Q2" {
		t.Errorf("wrong row = %+v", d)
	}
	if v.Dialog.Actions[0].Action != ActionClose {
		t.Errorf("Actions = %+v", v.Dialog.Actions)
	}
}

func TestBuildTestViewFailedBanner(t *testing.T) {
	s := quiz.NewSession("quiz", twoQuestionQuiz())
	s.RequestSubmit()
	s.ConfirmSubmit()
	snap := s.Snapshot()

	r := BuildTestView(&snap).Dialog.Results
	if r.Passed || r.Banner != "Unfortunately, you did not pass the test." || r.Score != "Score: 0%" {
		t.Errorf("results = %+v", r)
	}
}
