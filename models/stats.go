package models

// QuizStats is the durable per-device aggregate. Every field except
// BestStreak is monotonically non-decreasing; BestStreak is a running
// maximum over session streaks.
type QuizStats struct {
	TotalQuizzes        int            `json:"total_quizzes"`
	TotalCorrect        int            `json:"total_correct"`
	TotalQuestions      int            `json:"total_questions"`
	PerfectQuizzes      int            `json:"perfect_quizzes"`
	BestStreak          int            `json:"best_streak"`
	CategoriesCompleted map[string]int `json:"categories_completed"`
}

// NewQuizStats returns the documented defaults used when nothing is persisted.
func NewQuizStats() QuizStats {
	return QuizStats{
		CategoriesCompleted: make(map[string]int),
	}
}

// Accuracy is the overall fraction of correct answers, 0 when nothing
// has been answered yet.
func (s QuizStats) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(s.TotalQuestions)
}
