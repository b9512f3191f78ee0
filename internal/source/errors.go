package source

import (
	"errors"
	"fmt"
)

var (
	// ErrToolUnavailable matches failures to start the linter executable.
	ErrToolUnavailable = errors.New("linter unavailable")
	// ErrIO matches failures to read the document.
	ErrIO = errors.New("i/o failure")
	// ErrInvalidUTF8 is wrapped by an ErrIO failure when piped input is not UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// ErrorKind enumerates fatal acquisition failures.
type ErrorKind uint8

const (
	// KindToolUnavailable means the linter process could not be started.
	KindToolUnavailable ErrorKind = iota + 1
	// KindIO means reading stdin or the linter's pipes failed.
	KindIO
)

// Error is a fatal acquisition failure.
type Error struct {
	Kind    ErrorKind
	Op      string // "read stdin", "start", "read stdout", ...
	Command string // linter command line, empty for stdin
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindToolUnavailable:
		return fmt.Sprintf("failed to execute %s: %v. Is it installed and in your PATH?", e.Command, e.Err)
	case KindIO:
		if e.Command != "" {
			return fmt.Sprintf("%s (%s): %v", e.Op, e.Command, e.Err)
		}
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("source error kind=%d: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindToolUnavailable:
		return target == ErrToolUnavailable
	case KindIO:
		return target == ErrIO
	}
	return false
}
