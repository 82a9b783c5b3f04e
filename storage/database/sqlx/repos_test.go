package sqlxrepos

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/content"
	"github.com/trezcool/classboard/core/quiz"
	"github.com/trezcool/classboard/core/user"
)

const (
	id1 = "7f9c2a34-3b1e-4e43-9d5e-3c1b2a7e9f01"
	id2 = "0b8d6a55-21f4-4c7a-a0b2-6f3e2d1c4b02"
	id3 = "c3e1f2d4-5a6b-4c7d-8e9f-0a1b2c3d4e03"
)

var created = time.Date(2026, time.October, 5, 8, 30, 0, 0, time.UTC)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserRepository_QueryUsers(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "role", "created_at"}).
		AddRow(id1, "Amina Diallo", "student", created).
		AddRow(id2, nil, "admin", created.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, full_name, role, created_at FROM profiles WHERE full_name ILIKE $1 AND role = $2 ORDER BY full_name ASC",
	)).WithArgs("%ami%", "student").WillReturnRows(rows)

	users, err := repo.QueryUsers(
		context.Background(),
		&user.QueryFilter{Search: "ami", Role: user.RoleStudent},
		[]core.DBOrdering{{Field: "name", Ascending: true}, {Field: "password"}},
	)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, user.User{ID: id1, Name: "Amina Diallo", Role: user.RoleStudent, CreatedAt: created}, users[0])
	assert.Equal(t, "", users[1].Name)
	assert.True(t, users[1].IsAdmin())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_QueryUsers_defaultOrdering(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, role, created_at FROM profiles ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role", "created_at"}))

	users, err := repo.QueryUsers(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_QueryUsers_error(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	errDB := errors.New("connection refused")
	mock.ExpectQuery("SELECT (.+) FROM profiles").WillReturnError(errDB)

	_, err := repo.QueryUsers(context.Background(), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errDB))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE id = $1")).WithArgs(id1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role", "created_at"}).AddRow(id1, "Amina", "admin", created))
	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE id = $1")).WithArgs(id2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "role", "created_at"}))

	usr, err := repo.GetUser(context.Background(), id1)
	require.NoError(t, err)
	assert.Equal(t, "Amina", usr.Name)

	_, err = repo.GetUser(context.Background(), id2)
	assert.Equal(t, user.ErrNotFound, err)

	_, err = repo.GetUser(context.Background(), "not-a-uuid")
	assert.Equal(t, user.ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_QueryContent(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "subject", "created_at", "created_by"}).
		AddRow(id1, "Photosynthesis", "How plants eat", "Biology", created, id3).
		AddRow(id2, "Cells", nil, nil, created.Add(-time.Hour), nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM videos ORDER BY created_at DESC")).WillReturnRows(rows)

	items, err := repo.QueryContent(context.Background(), content.Video)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, content.Item{
		ID:          id1,
		Kind:        content.Video,
		Title:       "Photosynthesis",
		Description: "How plants eat",
		Subject:     "Biology",
		CreatedAt:   created,
		CreatedBy:   id3,
	}, items[0])
	assert.Equal(t, content.Item{ID: id2, Kind: content.Video, Title: "Cells", CreatedAt: created.Add(-time.Hour)}, items[1])

	_, err = repo.QueryContent(context.Background(), content.Kind(9))
	assert.Equal(t, content.ErrUnknownKind, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_UpdateContent(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	q := regexp.QuoteMeta("UPDATE courses SET title = $1, description = $2, subject = $3 WHERE id = $4")
	mock.ExpectExec(q).WithArgs("Algebra", nil, "Math", id1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("Algebra", "Basics", nil, id2).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateContent(context.Background(), content.Course, id1, content.UpdateContent{Title: "Algebra", Subject: "Math"})
	require.NoError(t, err)

	err = repo.UpdateContent(context.Background(), content.Course, id2, content.UpdateContent{Title: "Algebra", Description: "Basics"})
	assert.Equal(t, content.ErrNotFound, err)

	err = repo.UpdateContent(context.Background(), content.Course, "42", content.UpdateContent{Title: "Algebra"})
	assert.Equal(t, content.ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_DeleteContent(t *testing.T) {
	db, mock := newMock(t)
	repo := NewContentRepository(db)

	errRLS := errors.New("permission denied for table books")
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quizzes WHERE id = $1")).WithArgs(id1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM books WHERE id = $1")).WithArgs(id2).WillReturnError(errRLS)

	require.NoError(t, repo.DeleteContent(context.Background(), content.Quiz, id1))

	err := repo.DeleteContent(context.Background(), content.Book, id2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errRLS))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_QueryQuizzesWithAttempts(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuizRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM quizzes").WillReturnRows(
		sqlmock.NewRows([]string{"id", "title", "subject", "created_at"}).
			AddRow(id1, "Fractions", "Math", created).
			AddRow(id2, "Verbs", nil, created.Add(-time.Hour)),
	)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.quiz_id = ANY($1)")).WithArgs(sqlmock.AnyArg()).WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "quiz_id", "student_name", "score", "total_questions", "completed_at"}).
			AddRow("a1", id3, id1, "Amina", 8, 10, created.Add(2*time.Hour)).
			AddRow("a2", nil, id1, nil, 6, 10, created.Add(time.Hour)),
	)

	quizzes, err := repo.QueryQuizzesWithAttempts(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 2)
	assert.Equal(t, quiz.Quiz{ID: id1, Title: "Fractions", Subject: "Math", CreatedAt: created}, quizzes[0].Quiz)
	require.Len(t, quizzes[0].Attempts, 2)
	assert.Equal(t, "Amina", quizzes[0].Attempts[0].StudentName)
	assert.Equal(t, "", quizzes[0].Attempts[1].StudentName)
	assert.Equal(t, "", quizzes[0].Attempts[1].UserID)
	assert.Empty(t, quizzes[1].Attempts)

	an := quiz.AnalyzeAll(quizzes)
	assert.Equal(t, 7.0, an[0].AverageScore)
	assert.Equal(t, quiz.UnknownStudent, an[0].Students[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_QueryQuizzesWithAttempts_noQuizzes(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuizRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM quizzes").WillReturnRows(sqlmock.NewRows([]string{"id", "title", "subject", "created_at"}))

	quizzes, err := repo.QueryQuizzesWithAttempts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, quizzes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizRepository_QueryUserAttempts(t *testing.T) {
	db, mock := newMock(t)
	repo := NewQuizRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.user_id = $1")).WithArgs(id3).WillReturnRows(
		sqlmock.NewRows([]string{"id", "user_id", "quiz_id", "quiz_title", "score", "total_questions", "completed_at"}).
			AddRow("a1", id3, id1, "Fractions", 7, 10, created).
			AddRow("a2", id3, id2, nil, 3, 10, created.Add(-time.Hour)),
	)

	attempts, err := repo.QueryUserAttempts(context.Background(), id3)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, quiz.Attempt{
		ID:             "a1",
		UserID:         id3,
		QuizID:         id1,
		QuizTitle:      "Fractions",
		Score:          7,
		TotalQuestions: 10,
		CompletedAt:    created,
	}, attempts[0])
	assert.Equal(t, "", attempts[1].QuizTitle)

	attempts, err = repo.QueryUserAttempts(context.Background(), "anonymous")
	require.NoError(t, err)
	assert.Empty(t, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
