package errs

import (
	"errors"
)

// UserFacingError is an error whose message is meant to be printed to the person running the generator as is.
type UserFacingError interface {
	error
	UserError() string
}

type ErrOpt func(err *userFacingError)

type userFacingError struct {
	wrapped error
	message string
	input   bool
	tips    []string
}

func (e *userFacingError) Error() string {
	return e.message
}

func (e *userFacingError) UserError() string {
	return e.message
}

func (e *userFacingError) ErrorTips() []string {
	return e.tips
}

// InputError reports whether the error was caused by bad input data rather than the environment
func (e *userFacingError) InputError() bool {
	return e.input
}

func (e *userFacingError) Unwrap() error {
	return e.wrapped
}

func NewUserFacing(message string, opts ...ErrOpt) *userFacingError {
	return WrapUserFacing(nil, message, opts...)
}

func WrapUserFacing(wrapTarget error, message string, opts ...ErrOpt) *userFacingError {
	err := &userFacingError{
		wrapTarget,
		message,
		false,
		nil,
	}

	for _, opt := range opts {
		opt(err)
	}

	return err
}

// IsInputError reports whether any error in the chain was marked with SetInput
func IsInputError(err error) bool {
	var inputErr interface{ InputError() bool }
	return errors.As(err, &inputErr) && inputErr.InputError()
}

// Tips collects the tips of the outermost user facing error in the chain
func Tips(err error) []string {
	var tipped interface{ ErrorTips() []string }
	if errors.As(err, &tipped) {
		return tipped.ErrorTips()
	}
	return nil
}

// SetIf is a helper for setting options if some conditional evaluated to true.
func SetIf(evaluated bool, opt ErrOpt) ErrOpt {
	if evaluated {
		return opt
	}
	return func(err *userFacingError) {}
}

func SetTips(tips ...string) ErrOpt {
	return func(err *userFacingError) {
		err.tips = append(err.tips, tips...)
	}
}

func SetInput() ErrOpt {
	return func(err *userFacingError) {
		err.input = true
	}
}
