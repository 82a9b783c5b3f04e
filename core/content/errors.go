package content

import (
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("content not found")

// Write actions
const (
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// WriteError reports a rejected update or delete. Its message names the action and the kind only;
// the store's error is kept in Err.
type WriteError struct {
	Action string
	Kind   Kind
	Err    error
}

func (err *WriteError) Error() string {
	return "could not " + err.Action + " " + err.Kind.String()
}

func (err *WriteError) Unwrap() error {
	return err.Err
}
