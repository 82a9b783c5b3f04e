package quiz

import (
	"time"

	"github.com/trezcool/classboard/core"
)

type StudentResult struct {
	ID          string    `json:"id"` // attempt ID
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	Percentage  int       `json:"percentage"`
	CompletedAt time.Time `json:"completed_at"`
}

// Analytics summarizes the attempts of one quiz.
//
// AverageScore is the mean raw score (1 decimal place) while CompletionRate is the mean percentage
// (integer). They are computed independently and diverge when attempts of the same quiz have
// different question counts.
type Analytics struct {
	QuizID         string          `json:"quiz_id"`
	QuizTitle      string          `json:"quiz_title"`
	TotalAttempts  int             `json:"total_attempts"`
	AverageScore   float64         `json:"average_score"`
	CompletionRate int             `json:"completion_rate"`
	Students       []StudentResult `json:"students"`
}

// Analyze reduces the attempts of a quiz.
func Analyze(qa QuizAttempts) Analytics {
	an := Analytics{
		QuizID:        qa.Quiz.ID,
		QuizTitle:     qa.Quiz.Title,
		TotalAttempts: len(qa.Attempts),
		Students:      make([]StudentResult, 0, len(qa.Attempts)),
	}
	if an.TotalAttempts == 0 {
		return an
	}

	var scoreSum, pctSum float64
	for _, at := range qa.Attempts {
		scoreSum += float64(at.Score)
		pctSum += Percentage(at.Score, at.TotalQuestions)

		name := at.StudentName
		if name == "" {
			name = UnknownStudent
		}
		an.Students = append(an.Students, StudentResult{
			ID:          at.ID,
			UserID:      at.UserID,
			Name:        name,
			Score:       at.Score,
			Percentage:  RoundedPercentage(at.Score, at.TotalQuestions),
			CompletedAt: at.CompletedAt,
		})
	}
	n := float64(an.TotalAttempts)
	an.AverageScore = core.RoundHalfUpTo(scoreSum/n, 1)
	an.CompletionRate = int(core.RoundHalfUp(pctSum / n))
	return an
}

// AnalyzeAll analyzes every quiz, keeping the input order.
func AnalyzeAll(quizzes []QuizAttempts) []Analytics {
	res := make([]Analytics, 0, len(quizzes))
	for _, qa := range quizzes {
		res = append(res, Analyze(qa))
	}
	return res
}
