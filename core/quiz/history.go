package quiz

import (
	"sort"
	"time"

	"github.com/trezcool/classboard/core"
)

type HistoryEntry struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     int       `json:"percentage"`
	IsPassed       bool      `json:"is_passed"`
	CompletedAt    time.Time `json:"completed_at"`
}

// History is the quiz record of one user, most recent attempt first.
type History struct {
	UserID        string         `json:"user_id"`
	Attempts      []HistoryEntry `json:"attempts"`
	TotalQuizzes  int            `json:"total_quizzes"`
	AverageScore  int            `json:"average_score"` // mean percentage
	PassedQuizzes int            `json:"passed_quizzes"`
	SuccessRate   int            `json:"success_rate"`
}

// BuildHistory derives the history of userID from their attempts. attempts is not modified.
func BuildHistory(userID string, attempts []Attempt) History {
	sorted := make([]Attempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	h := History{
		UserID:       userID,
		Attempts:     make([]HistoryEntry, 0, len(sorted)),
		TotalQuizzes: len(sorted),
	}
	var pctSum int
	for _, at := range sorted {
		title := at.QuizTitle
		if title == "" {
			title = UnknownQuiz
		}
		pct := RoundedPercentage(at.Score, at.TotalQuestions)
		passed := IsPassed(pct)
		if passed {
			h.PassedQuizzes++
		}
		pctSum += pct

		h.Attempts = append(h.Attempts, HistoryEntry{
			ID:             at.ID,
			QuizID:         at.QuizID,
			QuizTitle:      title,
			Score:          at.Score,
			TotalQuestions: at.TotalQuestions,
			Percentage:     pct,
			IsPassed:       passed,
			CompletedAt:    at.CompletedAt,
		})
	}
	if h.TotalQuizzes > 0 {
		n := float64(h.TotalQuizzes)
		h.AverageScore = int(core.RoundHalfUp(float64(pctSum) / n))
		h.SuccessRate = int(core.RoundHalfUp(float64(h.PassedQuizzes) / n * 100))
	}
	return h
}
