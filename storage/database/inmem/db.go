package inmemdb

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/classboard/core/content"
	"github.com/trezcool/classboard/core/quiz"
	"github.com/trezcool/classboard/core/user"
)

type (
	// DB is an in-memory copy of the dashboard tables, safe for concurrent use.
	DB struct {
		sync.RWMutex
		profiles map[string]user.User
		contents [len(content.Kinds)][]content.Item
		attempts []quiz.Attempt
		failures map[string]error // table name -> error returned by every access
	}
)

func Open() *DB {
	return &DB{
		profiles: make(map[string]user.User),
		failures: make(map[string]error),
	}
}

// Fail makes every access to table return err. A nil err clears the failure.
func (db *DB) Fail(table string, err error) {
	db.Lock()
	defer db.Unlock()
	if err == nil {
		delete(db.failures, table)
		return
	}
	db.failures[table] = err
}

func (db *DB) failure(table string) error {
	return db.failures[table]
}

// CreateUser inserts a profile, generating its ID and creation time when unset.
func (db *DB) CreateUser(usr user.User) user.User {
	db.Lock()
	defer db.Unlock()
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	if usr.CreatedAt.IsZero() {
		usr.CreatedAt = time.Now().UTC()
	}
	db.profiles[usr.ID] = usr
	return usr
}

// CreateContent inserts an item in its kind's table.
func (db *DB) CreateContent(it content.Item) content.Item {
	db.Lock()
	defer db.Unlock()
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = time.Now().UTC()
	}
	db.contents[it.Kind] = append(db.contents[it.Kind], it)
	return it
}

// CreateAttempt records a quiz attempt. Joined fields (student name, quiz title) are ignored.
func (db *DB) CreateAttempt(at quiz.Attempt) quiz.Attempt {
	db.Lock()
	defer db.Unlock()
	if at.ID == "" {
		at.ID = uuid.New().String()
	}
	if at.CompletedAt.IsZero() {
		at.CompletedAt = time.Now().UTC()
	}
	at.StudentName, at.QuizTitle = "", ""
	db.attempts = append(db.attempts, at)
	return at
}
