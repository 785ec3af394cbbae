package rive

import (
	"errors"

	"github.com/go-drift/rive/pkg/abi"
)

// Error is returned by every wrapper call whose boundary call reported a
// non-OK status.
type Error struct {
	// Op names the wrapper operation, e.g. "File.ArtboardByName".
	Op string
	// Status is the boundary status.
	Status abi.Status
}

func (e *Error) Error() string {
	if e.Op == "" {
		return "rive: " + e.Status.String()
	}
	return "rive: " + e.Op + ": " + e.Status.String()
}

// Is matches any *Error carrying the same status, so the sentinels below
// work with errors.Is regardless of the operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Status == e.Status && (t.Op == "" || t.Op == e.Op)
}

// Sentinels for errors.Is.
var (
	ErrNull            = &Error{Status: abi.StatusNull}
	ErrInvalidArgument = &Error{Status: abi.StatusInvalidArgument}
	ErrNotFound        = &Error{Status: abi.StatusNotFound}
	ErrOutOfRange      = &Error{Status: abi.StatusOutOfRange}
	ErrUnsupported     = &Error{Status: abi.StatusUnsupported}
	ErrDecode          = &Error{Status: abi.StatusDecodeError}
	ErrRuntime         = &Error{Status: abi.StatusRuntimeError}
)

// StatusOf returns the status carried by err: OK for nil, the boundary status
// for an *Error anywhere in the chain, and RUNTIME_ERROR otherwise.
func StatusOf(err error) abi.Status {
	if err == nil {
		return abi.StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return abi.StatusRuntimeError
}

func check(op string, st abi.Status) error {
	if st == abi.StatusOK {
		return nil
	}
	return &Error{Op: op, Status: st}
}

func nullError(op string) error {
	return &Error{Op: op, Status: abi.StatusNull}
}
