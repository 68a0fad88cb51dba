package menu

import (
	"errors"
	"fmt"
)

// IOError is returned when reading from or writing to the terminal fails
// during a session. The session is abandoned; the terminal restore has
// already been attempted when it is returned.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("menu: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ErrAborted is returned by Run after Ctrl+C only when the configured exit
// function returns instead of ending the process.
var ErrAborted = errors.New("menu: aborted")

func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}
