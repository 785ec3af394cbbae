// Package errors provides out-of-band error reporting for the rive runtime.
//
// Failures that can be returned to a caller are returned. Everything else
// (contract violations by a provider, panics inside asset-loader callbacks,
// handles that were never released) is reported through the global
// [ErrorHandler] so an application can surface it without the runtime
// having to choose a logging policy.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a provider broke the boundary contract,
	// for example by reporting success without producing a handle.
	KindContract
	// KindCallback indicates a user callback failed during a native call.
	KindCallback
	// KindLeak indicates a handle was still live when it should not be.
	KindLeak
	// KindLoad indicates the native library could not be loaded or bound.
	KindLoad
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindCallback:
		return "callback"
	case KindLeak:
		return "leak"
	case KindLoad:
		return "load"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RuntimeError represents a structured error raised outside a call's
// return path.
type RuntimeError struct {
	// Op is the operation that failed (e.g., "rive.File.Artboard").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Handle names the handle kind involved, if any.
	Handle string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RuntimeError) Error() string {
	if e.Handle != "" {
		return fmt.Sprintf("%s [%s] handle=%s: %v", e.Op, e.Kind, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "rive.LoadFile.assetLoader").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RuntimeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
