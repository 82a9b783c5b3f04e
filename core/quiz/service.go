package quiz

import (
	"context"

	"github.com/pkg/errors"
)

type (
	Repository interface {
		// QueryQuizzesWithAttempts returns every quiz, most recent first, with its attempts joined to
		// the students' profiles.
		QueryQuizzesWithAttempts(ctx context.Context) ([]QuizAttempts, error)
		// QueryUserAttempts returns the attempts of one user joined to their quizzes.
		QueryUserAttempts(ctx context.Context, userID string) ([]Attempt, error)
	}

	ServiceInterface interface {
		Analytics(ctx context.Context) ([]Analytics, error)
		History(ctx context.Context, userID string) (History, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Analytics(ctx context.Context) ([]Analytics, error) {
	quizzes, err := svc.repo.QueryQuizzesWithAttempts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying quizzes with attempts")
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	return AnalyzeAll(quizzes), nil
}

// History builds the quiz history of userID, who must be provided by the caller (usually the
// authenticated user).
func (svc *Service) History(ctx context.Context, userID string) (History, error) {
	attempts, err := svc.repo.QueryUserAttempts(ctx, userID)
	if err != nil {
		return History{}, errors.Wrap(err, "querying user attempts")
	}
	if err = ctx.Err(); err != nil {
		return History{}, err
	}
	return BuildHistory(userID, attempts), nil
}
