package models

// UpcomingTest is a test a student has yet to take
type UpcomingTest struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Deadline        string `json:"deadline"`
	TotalQuestions  int    `json:"total_questions"`
}

// CompletedTest is a finished test with its score
type CompletedTest struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
	Date           string `json:"date"`
}

// PerformancePoint is one point on a score-over-time chart
type PerformancePoint struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// StudentStats summarises a student's activity
type StudentStats struct {
	AverageScore   int    `json:"average_score"`
	TestsCompleted int    `json:"tests_completed"`
	UpcomingTests  int    `json:"upcoming_tests"`
	BestSubject    string `json:"best_subject"`
}

// StudentDashboard is everything shown on the student landing page
type StudentDashboard struct {
	Upcoming    []UpcomingTest     `json:"upcoming"`
	Completed   []CompletedTest    `json:"completed"`
	Performance []PerformancePoint `json:"performance"`
	Stats       StudentStats       `json:"stats"`
}

// TeacherStats summarises all of a teacher's tests
type TeacherStats struct {
	TotalTests     int `json:"total_tests"`
	ActiveTests    int `json:"active_tests"`
	CompletedTests int `json:"completed_tests"`
	TotalStudents  int `json:"total_students"`
	TotalAttempts  int `json:"total_attempts"`
	AverageScore   int `json:"average_score"`
	PassRate       int `json:"pass_rate"`
}

// RecentTest is one row of the teacher's recent tests table
type RecentTest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalStudents int    `json:"total_students"`
	Attempted     int    `json:"attempted"`
	Passed        int    `json:"passed"`
	AverageScore  int    `json:"average_score"`
	Deadline      string `json:"deadline"`
}

// StudentPerformance is one row of the teacher's student table
type StudentPerformance struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TestsAttempted int    `json:"tests_attempted"`
	AverageScore   int    `json:"average_score"`
	TestsPassed    int    `json:"tests_passed"`
}

// TeacherDashboard is everything shown on the teacher landing page
type TeacherDashboard struct {
	Stats       TeacherStats         `json:"stats"`
	RecentTests []RecentTest         `json:"recent_tests"`
	Students    []StudentPerformance `json:"students"`
}
