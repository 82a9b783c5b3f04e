package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/classboard/core/quiz"
)

const (
	quizzesQuery = `
SELECT id, title, subject, created_at
FROM quizzes
ORDER BY created_at DESC`

	quizAttemptsQuery = `
SELECT a.id, a.user_id, a.quiz_id, p.full_name AS student_name, a.score, a.total_questions, a.completed_at
FROM quiz_attempts a
LEFT JOIN profiles p ON p.id = a.user_id
WHERE a.quiz_id = ANY($1)
ORDER BY a.completed_at DESC`

	userAttemptsQuery = `
SELECT a.id, a.user_id, a.quiz_id, q.title AS quiz_title, a.score, a.total_questions, a.completed_at
FROM quiz_attempts a
LEFT JOIN quizzes q ON q.id = a.quiz_id
WHERE a.user_id = $1
ORDER BY a.completed_at DESC`
)

type quizRow struct {
	ID        string      `db:"id"`
	Title     string      `db:"title"`
	Subject   null.String `db:"subject"`
	CreatedAt time.Time   `db:"created_at"`
}

type attemptRow struct {
	ID             string      `db:"id"`
	UserID         null.String `db:"user_id"`
	QuizID         string      `db:"quiz_id"`
	StudentName    null.String `db:"student_name"`
	QuizTitle      null.String `db:"quiz_title"`
	Score          int         `db:"score"`
	TotalQuestions int         `db:"total_questions"`
	CompletedAt    time.Time   `db:"completed_at"`
}

func (row attemptRow) attempt() quiz.Attempt {
	return quiz.Attempt{
		ID:             row.ID,
		UserID:         row.UserID.String,
		QuizID:         row.QuizID,
		StudentName:    row.StudentName.String,
		QuizTitle:      row.QuizTitle.String,
		Score:          row.Score,
		TotalQuestions: row.TotalQuestions,
		CompletedAt:    row.CompletedAt,
	}
}

type quizRepository struct {
	exec sqlx.ExtContext
}

var _ quiz.Repository = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository(exec sqlx.ExtContext) *quizRepository {
	return &quizRepository{exec: exec}
}

func (repo quizRepository) QueryQuizzesWithAttempts(ctx context.Context) ([]quiz.QuizAttempts, error) {
	var quizRows []quizRow
	if err := sqlx.SelectContext(ctx, repo.exec, &quizRows, quizzesQuery); err != nil {
		return nil, errors.Wrap(err, "querying quizzes")
	}
	if len(quizRows) == 0 {
		return []quiz.QuizAttempts{}, nil
	}

	ids := make([]string, 0, len(quizRows))
	for _, row := range quizRows {
		ids = append(ids, row.ID)
	}
	var attemptRows []attemptRow
	if err := sqlx.SelectContext(ctx, repo.exec, &attemptRows, quizAttemptsQuery, pq.Array(ids)); err != nil {
		return nil, errors.Wrap(err, "querying quiz attempts")
	}

	byQuiz := make(map[string][]quiz.Attempt, len(quizRows))
	for _, row := range attemptRows {
		byQuiz[row.QuizID] = append(byQuiz[row.QuizID], row.attempt())
	}

	res := make([]quiz.QuizAttempts, 0, len(quizRows))
	for _, row := range quizRows {
		res = append(res, quiz.QuizAttempts{
			Quiz: quiz.Quiz{
				ID:        row.ID,
				Title:     row.Title,
				Subject:   row.Subject.String,
				CreatedAt: row.CreatedAt,
			},
			Attempts: byQuiz[row.ID],
		})
	}
	return res, nil
}

func (repo quizRepository) QueryUserAttempts(ctx context.Context, userID string) ([]quiz.Attempt, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return []quiz.Attempt{}, nil
	}

	var rows []attemptRow
	if err := sqlx.SelectContext(ctx, repo.exec, &rows, userAttemptsQuery, userID); err != nil {
		return nil, errors.Wrap(err, "querying user attempts")
	}
	attempts := make([]quiz.Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, row.attempt())
	}
	return attempts, nil
}
