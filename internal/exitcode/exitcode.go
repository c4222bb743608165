// Errors returned from the command tree carry the status the process exits
// with, and whether their text has already been shown to the user.
package exitcode

import (
	"errors"
	"os"
)

type Status int

const (
	Success Status = iota

	// The input had syntax errors, or could not be read
	Failure

	// The command line itself was invalid (an unknown flag, a bad value)
	Usage
)

type statusError struct {
	err      error
	status   Status
	reported bool
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

// Attaches an exit status to err. Returns nil if err is nil.
func WithStatus(err error, status Status) error {
	if err == nil {
		return nil
	}
	return &statusError{err: err, status: status}
}

// Marks err as already printed, which happens for syntax errors since the log
// writes them out as they are found
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &statusError{err: err, status: Failure, reported: true}
}

func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	var s *statusError
	if errors.As(err, &s) {
		return s.status
	}
	return Failure
}

func WasReported(err error) bool {
	var s *statusError
	return errors.As(err, &s) && s.reported
}

// Prints err with the given function unless it was already reported, then
// exits the process with its status
func Exit(err error, print func(error)) {
	if err != nil && !WasReported(err) {
		print(err)
	}
	os.Exit(int(StatusOf(err)))
}
