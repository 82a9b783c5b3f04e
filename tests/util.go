package testutil

import (
	"fmt"
	"net/mail"
	"sync"
	"testing"
	"time"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/content"
	"github.com/trezcool/classboard/core/quiz"
	"github.com/trezcool/classboard/core/user"
	inmemdb "github.com/trezcool/classboard/storage/database/inmem"
)

// NewConfig returns the configuration used by tests: no external service, UTC timezone, production
// error messages.
func NewConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		Build:            "test",
		Debug:            false,
		TestMode:         true,
		AppName:          "Classboard",
		SecretKey:        "test-secret",
		Timezone:         time.UTC,
		FrontendBaseURL:  "http://localhost:3000",
		DefaultFromEmail: mail.Address{Name: "Classboard", Address: "noreply@classboard.test"},
		Server: core.ServerConfig{
			Host:               "localhost",
			Addr:               ":0",
			ShutdownTimeout:    time.Second,
			JWTExpirationDelta: time.Hour,
		},
	}
}

type LogEntry struct {
	Level string
	Msg   string
	Args  []interface{}
}

// Logger records log entries in memory.
type Logger struct {
	mu      sync.Mutex
	Entries []LogEntry
}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Msg: msg, Args: args})
}

// Messages returns the logged messages of the given level.
func (l *Logger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var msgs []string
	for _, e := range l.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.log("fatal", msg, args)
	panic(fmt.Sprintf("fatal: %s", msg))
}

func CreateUser(t *testing.T, db *inmemdb.DB, name string, role user.Role, createdAt ...time.Time) user.User {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	return db.CreateUser(user.User{Name: name, Role: role, CreatedAt: tstamp})
}

func CreateContent(t *testing.T, db *inmemdb.DB, kind content.Kind, title string, createdAt time.Time) content.Item {
	t.Helper()
	return db.CreateContent(content.Item{Kind: kind, Title: title, CreatedAt: createdAt.UTC()})
}

func CreateAttempt(t *testing.T, db *inmemdb.DB, usr user.User, qz content.Item, score, total int, completedAt time.Time) quiz.Attempt {
	t.Helper()
	if qz.Kind != content.Quiz {
		t.Fatalf("CreateAttempt() failed: %s is not a quiz", qz.Kind)
	}
	return db.CreateAttempt(quiz.Attempt{
		UserID:         usr.ID,
		QuizID:         qz.ID,
		Score:          score,
		TotalQuestions: total,
		CompletedAt:    completedAt.UTC(),
	})
}
