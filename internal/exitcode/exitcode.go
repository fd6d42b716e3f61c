// Package exitcode maps run outcomes to process exit status.
package exitcode

import "errors"

const (
	OK = 0
	// Failure covers permission problems, inaccessible repositories and fatal errors.
	Failure = 1
)

// Tracker keeps the most severe exit code raised during a run.
type Tracker struct {
	code int
}

func (t *Tracker) Raise(code int) {
	if code > t.code {
		t.code = code
	}
}

func (t *Tracker) Code() int {
	return t.code
}

// Err returns nil for OK, or an *Error carrying the code.
func (t *Tracker) Err() error {
	if t.code == OK {
		return nil
	}
	return &Error{Code: t.code}
}

// Error ends a command with a specific exit code once its report has been printed.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "completed with errors"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FromError returns the exit code for the error a command returned.
func FromError(err error) int {
	if err == nil {
		return OK
	}
	var exitErr *Error
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return Failure
}
