package cli

import "fmt"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// ExitError carries a process exit code out of a cobra RunE handler.
// Errors that reach Run without one are command-line usage errors.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func failure(err error) error {
	return &ExitError{Code: exitFailure, Err: err}
}
