package inmemdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/content"
	"github.com/trezcool/classboard/core/quiz"
	"github.com/trezcool/classboard/core/user"
)

var base = time.Date(2026, time.October, 1, 10, 0, 0, 0, time.UTC)

func TestUserRepository(t *testing.T) {
	db := Open()
	repo := NewUserRepository(db)
	ctx := context.Background()

	amina := db.CreateUser(user.User{Name: "Amina", Role: user.RoleStudent, CreatedAt: base})
	brian := db.CreateUser(user.User{Name: "Brian", Role: user.RoleAdmin, CreatedAt: base.Add(time.Hour)})
	db.CreateUser(user.User{Name: "Chloé", Role: "teacher", CreatedAt: base.Add(-time.Hour)})

	users, err := repo.QueryUsers(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, brian.ID, users[0].ID)
	assert.Equal(t, amina.ID, users[1].ID)

	users, err = repo.QueryUsers(ctx, &user.QueryFilter{Search: "AMI"}, nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, amina.ID, users[0].ID)

	users, err = repo.QueryUsers(ctx, nil, []core.DBOrdering{{Field: "name", Ascending: true}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Amina", "Brian", "Chloé"}, []string{users[0].Name, users[1].Name, users[2].Name})

	usr, err := repo.GetUser(ctx, brian.ID)
	require.NoError(t, err)
	assert.Equal(t, brian, usr)
	_, err = repo.GetUser(ctx, "nope")
	assert.Equal(t, user.ErrNotFound, err)

	errDown := errors.New("down")
	db.Fail("profiles", errDown)
	_, err = repo.QueryUsers(ctx, nil, nil)
	assert.Equal(t, errDown, err)
	db.Fail("profiles", nil)
	_, err = repo.QueryUsers(ctx, nil, nil)
	assert.NoError(t, err)
}

func TestContentRepository(t *testing.T) {
	db := Open()
	repo := NewContentRepository(db)
	ctx := context.Background()

	old := db.CreateContent(content.Item{Kind: content.Book, Title: "Old", CreatedAt: base})
	recent := db.CreateContent(content.Item{Kind: content.Book, Title: "Recent", CreatedAt: base.Add(time.Hour)})
	video := db.CreateContent(content.Item{Kind: content.Video, Title: "Clip", CreatedAt: base})

	items, err := repo.QueryContent(ctx, content.Book)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, recent.ID, items[0].ID)

	require.NoError(t, repo.UpdateContent(ctx, content.Book, old.ID, content.UpdateContent{Title: "Older", Subject: "History"}))
	assert.Equal(t, content.ErrNotFound, repo.UpdateContent(ctx, content.Video, old.ID, content.UpdateContent{Title: "x"}))

	require.NoError(t, repo.DeleteContent(ctx, content.Book, recent.ID))
	assert.Equal(t, content.ErrNotFound, repo.DeleteContent(ctx, content.Book, recent.ID))

	items, err = repo.QueryContent(ctx, content.Book)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Older", items[0].Title)
	assert.Equal(t, "History", items[0].Subject)

	items, err = repo.QueryContent(ctx, content.Video)
	require.NoError(t, err)
	assert.Equal(t, []content.Item{video}, items)
}

func TestQuizRepository(t *testing.T) {
	db := Open()
	repo := NewQuizRepository(db)
	ctx := context.Background()

	amina := db.CreateUser(user.User{Name: "Amina", Role: user.RoleStudent})
	fractions := db.CreateContent(content.Item{Kind: content.Quiz, Title: "Fractions", CreatedAt: base})
	verbs := db.CreateContent(content.Item{Kind: content.Quiz, Title: "Verbs", CreatedAt: base.Add(time.Hour)})

	db.CreateAttempt(quiz.Attempt{ID: "a1", UserID: amina.ID, QuizID: fractions.ID, Score: 8, TotalQuestions: 10, CompletedAt: base.Add(time.Hour)})
	db.CreateAttempt(quiz.Attempt{ID: "a2", UserID: "deleted-user", QuizID: fractions.ID, Score: 6, TotalQuestions: 10, CompletedAt: base.Add(2 * time.Hour)})
	db.CreateAttempt(quiz.Attempt{ID: "a3", UserID: amina.ID, QuizID: "deleted-quiz", Score: 1, TotalQuestions: 2, CompletedAt: base.Add(3 * time.Hour)})

	quizzes, err := repo.QueryQuizzesWithAttempts(ctx)
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, verbs.ID, quizzes[0].Quiz.ID)
	assert.Empty(t, quizzes[0].Attempts)
	require.Len(t, quizzes[1].Attempts, 2)
	assert.Equal(t, "a2", quizzes[1].Attempts[0].ID)
	assert.Equal(t, "", quizzes[1].Attempts[0].StudentName)
	assert.Equal(t, "Amina", quizzes[1].Attempts[1].StudentName)

	attempts, err := repo.QueryUserAttempts(ctx, amina.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "a3", attempts[0].ID)
	assert.Equal(t, "", attempts[0].QuizTitle)
	assert.Equal(t, "Fractions", attempts[1].QuizTitle)

	h := quiz.BuildHistory(amina.ID, attempts)
	assert.Equal(t, quiz.UnknownQuiz, h.Attempts[0].QuizTitle)
	assert.Equal(t, 1, h.PassedQuizzes)
}
