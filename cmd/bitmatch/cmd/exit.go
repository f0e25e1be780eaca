package cmd

import (
	"errors"
	"fmt"
)

const (
	exitFound       = 0
	exitNotFound    = 1
	exitUsage       = 3
	exitInvalidArgs = 4
	exitNoMem       = 5
	exitIO          = 6
)

var (
	errNotFound   = errors.New("pattern not found")
	errInputLimit = errors.New("input size limit exceeded")
)

// exitError carries the process exit code an error maps to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func invalidArgs(err error) error {
	return &exitError{code: exitInvalidArgs, err: err}
}

func ioError(err error) error {
	return &exitError{code: exitIO, err: err}
}

func noMemError(err error) error {
	return &exitError{code: exitNoMem, err: err}
}

// exitCode maps the outcome of the root command to a process exit code.
// Errors that were not classified come from cobra's own argument handling.
func exitCode(err error) int {
	if err == nil {
		return exitFound
	}
	if errors.Is(err, errNotFound) {
		return exitNotFound
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

func describeExit(code int) string {
	switch code {
	case exitFound:
		return "found"
	case exitNotFound:
		return "not found"
	case exitUsage:
		return "usage error"
	case exitInvalidArgs:
		return "invalid arguments"
	case exitNoMem:
		return "input too large"
	case exitIO:
		return "I/O error"
	}
	return fmt.Sprintf("exit %d", code)
}
