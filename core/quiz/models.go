package quiz

import (
	"time"

	"github.com/trezcool/classboard/core"
)

const (
	// PassThreshold is the minimum percentage of a passed attempt.
	PassThreshold = 70

	UnknownStudent = "Unknown"
	UnknownQuiz    = "Unknown Quiz"
)

type Quiz struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Attempt is one completed submission of a quiz.
// StudentName and QuizTitle come from joins and are empty when the related row is missing.
type Attempt struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	QuizID         string    `json:"quiz_id"`
	StudentName    string    `json:"student_name,omitempty"`
	QuizTitle      string    `json:"quiz_title,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

// QuizAttempts is a quiz with all of its attempts.
type QuizAttempts struct {
	Quiz     Quiz
	Attempts []Attempt
}

// Percentage is score/total as a percentage; 0 when the quiz has no questions.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// RoundedPercentage is Percentage rounded half-up to an integer.
func RoundedPercentage(score, total int) int {
	return int(core.RoundHalfUp(Percentage(score, total)))
}

// IsPassed reports whether a percentage reaches PassThreshold.
func IsPassed(percentage int) bool {
	return percentage >= PassThreshold
}
