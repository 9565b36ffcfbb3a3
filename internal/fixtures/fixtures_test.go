package fixtures

import (
	"testing"

	"quizmaker/internal/validation"
)

func TestSampleTestIsValid(t *testing.T) {
	test := SampleTest()
	if err := validation.ValidateTestDefinition(&test); err != nil {
		t.Fatalf("sample test invalid: %v", err)
	}
	if test.DurationSeconds != 1800 {
		t.Errorf("DurationSeconds = %d, want 1800", test.DurationSeconds)
	}
	if test.PassingThreshold != 3 || len(test.Questions) != 5 {
		t.Errorf("threshold=%d questions=%d", test.PassingThreshold, len(test.Questions))
	}
}

func TestSampleTestReturnsCopies(t *testing.T) {
	a := SampleTest()
	a.Questions[0].Options[0] = "changed"

	if SampleTest().Questions[0].Options[0] != "array" {
		t.Error("SampleTest() shares state between calls")
	}
}

func TestDashboardStatsMatchRows(t *testing.T) {
	student := StudentDashboard()
	if student.Stats.TestsCompleted != len(student.Completed) {
		t.Errorf("TestsCompleted = %d, rows = %d", student.Stats.TestsCompleted, len(student.Completed))
	}
	if len(student.Performance) != 5 {
		t.Errorf("performance points = %d, want 5", len(student.Performance))
	}

	teacher := TeacherDashboard()
	if len(teacher.RecentTests) != 3 || len(teacher.Students) != 3 {
		t.Errorf("teacher rows = %d tests, %d students", len(teacher.RecentTests), len(teacher.Students))
	}
}
