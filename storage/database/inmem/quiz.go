package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/classboard/core/content"
	"github.com/trezcool/classboard/core/quiz"
)

type quizRepository struct {
	db *DB
}

var _ quiz.Repository = (*quizRepository)(nil) // interface compliance check

func NewQuizRepository(db *DB) *quizRepository {
	return &quizRepository{db: db}
}

// join fills the student name and quiz title of at, leaving them empty when the row is gone.
func (repo *quizRepository) join(at quiz.Attempt) quiz.Attempt {
	if usr, ok := repo.db.profiles[at.UserID]; ok {
		at.StudentName = usr.Name
	}
	for _, it := range repo.db.contents[content.Quiz] {
		if it.ID == at.QuizID {
			at.QuizTitle = it.Title
			break
		}
	}
	return at
}

func sortAttempts(attempts []quiz.Attempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].CompletedAt.After(attempts[j].CompletedAt)
	})
}

func (repo *quizRepository) QueryQuizzesWithAttempts(_ context.Context) ([]quiz.QuizAttempts, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	for _, table := range []string{"quizzes", "quiz_attempts"} {
		if err := repo.db.failure(table); err != nil {
			return nil, err
		}
	}

	quizzes := make([]content.Item, len(repo.db.contents[content.Quiz]))
	copy(quizzes, repo.db.contents[content.Quiz])
	content.SortByCreatedAt(quizzes)

	res := make([]quiz.QuizAttempts, 0, len(quizzes))
	for _, it := range quizzes {
		qa := quiz.QuizAttempts{Quiz: quiz.Quiz{ID: it.ID, Title: it.Title, Subject: it.Subject, CreatedAt: it.CreatedAt}}
		for _, at := range repo.db.attempts {
			if at.QuizID == it.ID {
				qa.Attempts = append(qa.Attempts, repo.join(at))
			}
		}
		sortAttempts(qa.Attempts)
		res = append(res, qa)
	}
	return res, nil
}

func (repo *quizRepository) QueryUserAttempts(_ context.Context, userID string) ([]quiz.Attempt, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	if err := repo.db.failure("quiz_attempts"); err != nil {
		return nil, err
	}

	attempts := make([]quiz.Attempt, 0)
	for _, at := range repo.db.attempts {
		if at.UserID == userID {
			at = repo.join(at)
			at.StudentName = ""
			attempts = append(attempts, at)
		}
	}
	sortAttempts(attempts)
	return attempts, nil
}
