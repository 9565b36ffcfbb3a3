package quiz

import "quizmaker/internal/models"

// Evaluate scores a set of answers against a test. It is pure: the same
// inputs always produce the same summary.
//
// A question counts as correct only when its slot holds exactly the correct
// option. Empty slots never match, including against option 0. Slots
// missing from a short answer state are treated as unanswered.
func Evaluate(test models.TestDefinition, answers models.AnswerState) models.ResultSummary {
	total := len(test.Questions)
	summary := models.ResultSummary{
		TotalQuestions:   total,
		PassingThreshold: test.PassingThreshold,
		Detail:           make([]models.AnswerDetail, total),
	}

	for i, q := range test.Questions {
		var sel models.Selection
		if i < len(answers) {
			sel = answers[i]
		}

		userAnswer := models.NotAnsweredText
		if option, ok := sel.Option(); ok {
			userAnswer = q.OptionText(option)
		} else {
			summary.UnansweredCount++
		}

		correct := sel.Matches(q.CorrectOptionIndex)
		if correct {
			summary.CorrectCount++
		}

		summary.Detail[i] = models.AnswerDetail{
			QuestionText:      q.Text,
			UserAnswerText:    userAnswer,
			CorrectAnswerText: q.CorrectAnswerText(),
			IsCorrect:         correct,
		}
	}

	summary.Passed = summary.CorrectCount >= test.PassingThreshold
	summary.Percentage = Percentage(summary.CorrectCount, total)
	return summary
}

// Percentage returns 100*correct/total rounded half up, or 0 when there
// are no questions.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	// floor(100c/t + 1/2) in integer arithmetic
	return (200*correct + total) / (2 * total)
}
