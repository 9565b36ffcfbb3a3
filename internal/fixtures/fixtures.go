// Package fixtures holds the built-in sample test and the sample data
// shown on the dashboards.
package fixtures

import "quizmaker/internal/models"

// SampleTestID is the catalog id of the built-in quiz
const SampleTestID = "javascript-fundamentals"

// SampleTest returns a fresh copy of the built-in quiz
func SampleTest() models.TestDefinition {
	return models.TestDefinition{
		ID:               SampleTestID,
		Name:             "JavaScript Fundamentals Quiz",
		DurationSeconds:  30 * 60,
		PassingThreshold: 3,
		Questions: []models.Question{
			{
				Text:               "What is the output of console.log(typeof [])?",
				Options:            []string{"array", "object", "undefined", "Array"},
				CorrectOptionIndex: 1,
			},
			{
				Text:               "Which method is used to add elements to the end of an array?",
				Options:            []string{"push()", "append()", "add()", "insert()"},
				CorrectOptionIndex: 0,
			},
			{
				Text: "What does the '===' operator do in JavaScript?",
				Options: []string{
					"Assigns a value to a variable",
					"Compares values only",
					"Compares both value and type",
					"Concatenates strings",
				},
				CorrectOptionIndex: 2,
			},
			{
				Text:               "Which of these is a valid way to declare a variable in JavaScript?",
				Options:            []string{"variable x = 5;", "var x = 5;", "x := 5;", "x => 5;"},
				CorrectOptionIndex: 1,
			},
			{
				Text:               "What is the result of 5 + '5' in JavaScript?",
				Options:            []string{"10", "55", "Error", "undefined"},
				CorrectOptionIndex: 1,
			},
		},
	}
}

// DefaultTests is the catalog seeded on first start
func DefaultTests() []models.TestDefinition {
	return []models.TestDefinition{SampleTest()}
}

// StudentDashboard returns the sample student landing page
func StudentDashboard() models.StudentDashboard {
	upcoming := []models.UpcomingTest{
		{ID: "1", Name: "Mathematics Final", DurationMinutes: 60, Deadline: "2024-12-25", TotalQuestions: 30},
		{ID: "2", Name: "Physics Quiz", DurationMinutes: 45, Deadline: "2024-12-28", TotalQuestions: 20},
		{ID: "3", Name: "Chemistry Test", DurationMinutes: 30, Deadline: "2024-12-30", TotalQuestions: 25},
	}
	completed := []models.CompletedTest{
		{ID: "4", Name: "Biology Mid-term", Score: 85, TotalQuestions: 40, CorrectAnswers: 34, Date: "2024-12-15"},
		{ID: "5", Name: "English Quiz", Score: 92, TotalQuestions: 25, CorrectAnswers: 23, Date: "2024-12-10"},
		{ID: "6", Name: "History Test", Score: 78, TotalQuestions: 30, CorrectAnswers: 23, Date: "2024-12-05"},
	}

	return models.StudentDashboard{
		Upcoming:  upcoming,
		Completed: completed,
		Performance: []models.PerformancePoint{
			{Label: "Week 1", Score: 75},
			{Label: "Week 2", Score: 82},
			{Label: "Week 3", Score: 88},
			{Label: "Week 4", Score: 85},
			{Label: "Week 5", Score: 92},
		},
		Stats: models.StudentStats{
			AverageScore:   85,
			TestsCompleted: len(completed),
			UpcomingTests:  len(upcoming),
			BestSubject:    "English",
		},
	}
}

// TeacherDashboard returns the sample teacher landing page
func TeacherDashboard() models.TeacherDashboard {
	return models.TeacherDashboard{
		Stats: models.TeacherStats{
			TotalTests:     15,
			ActiveTests:    8,
			CompletedTests: 7,
			TotalStudents:  120,
			TotalAttempts:  450,
			AverageScore:   76,
			PassRate:       82,
		},
		RecentTests: []models.RecentTest{
			{ID: "1", Name: "Mathematics Final Exam", TotalStudents: 40, Attempted: 35, Passed: 30, AverageScore: 78, Deadline: "2024-12-25"},
			{ID: "2", Name: "Physics Quiz", TotalStudents: 38, Attempted: 38, Passed: 32, AverageScore: 82, Deadline: "2024-12-28"},
			{ID: "3", Name: "Chemistry Test", TotalStudents: 42, Attempted: 40, Passed: 35, AverageScore: 75, Deadline: "2024-12-30"},
		},
		Students: []models.StudentPerformance{
			{ID: 1, Name: "John Doe", Email: "john@example.com", TestsAttempted: 5, AverageScore: 85, TestsPassed: 4},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", TestsAttempted: 5, AverageScore: 92, TestsPassed: 5},
			{ID: 3, Name: "Mike Johnson", Email: "mike@example.com", TestsAttempted: 4, AverageScore: 68, TestsPassed: 3},
		},
	}
}
