package datewheel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every rejected input: out-of-range
	// day/month/year, bad bounds, a nil listener or an unsupported locale.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is matched by duplicate listener registration and by
	// removing a listener that was never added.
	ErrInvalidState = errors.New("invalid state")
)

type argError struct {
	name   string
	value  any
	reason string
	cause  error
}

func (e *argError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid %s %v: %v", e.name, e.value, e.cause)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.name, e.value, e.reason)
}

func (e *argError) Is(target error) bool { return target == ErrInvalidArgument }
func (e *argError) Unwrap() error        { return e.cause }

func errArg(name string, value any, reason string) error {
	return &argError{name: name, value: value, reason: reason}
}

type stateError struct{ msg string }

func (e *stateError) Error() string         { return e.msg }
func (e *stateError) Is(target error) bool { return target == ErrInvalidState }
