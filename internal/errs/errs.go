package errs

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error enforces errors that include a stacktrace
type Error interface {
	Unwrap() error
	Stack() pkgerrors.StackTrace
}

// WrappedErr is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrappedErr struct {
	msg     string
	wrapped error
	stack   pkgerrors.StackTrace
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error returns the error message
func (e *WrappedErr) Error() string {
	return e.msg
}

// Unwrap returns the parent error, if one exists
func (e *WrappedErr) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrappedErr) Stack() pkgerrors.StackTrace {
	return e.stack
}

// Format prints the stack along with the message when formatted with %+v
func (e *WrappedErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s%+v", e.msg, e.stack)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.msg)
	case 'q':
		fmt.Fprintf(s, "%q", e.msg)
	}
}

func newError(err string, wrapTarget error) error {
	// Drop the frames belonging to newError and its exported caller in this package
	stack := pkgerrors.New("").(stackTracer).StackTrace()
	if len(stack) > 2 {
		stack = stack[2:]
	}
	return &WrappedErr{
		err,
		wrapTarget,
		stack,
	}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), wrapTarget)
}

// JoinMessage returns the messages of err and everything it wraps, joined by sep
func JoinMessage(err error, sep string) string {
	var message []string
	for err != nil {
		message = append(message, err.Error())
		err = errors.Unwrap(err)
	}
	return strings.Join(message, sep)
}
