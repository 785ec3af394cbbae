package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

type handlerSlot struct{ h ErrorHandler }

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: &LogHandler{}})
}

// SetHandler installs h as the process-wide handler. nil restores a
// non-verbose LogHandler on stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerSlot{h: h})
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report sends err to the handler, stamping it with the current time when
// Timestamp is zero.
func Report(err *RuntimeError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportContract reports a provider that broke the boundary contract on
// a handle of kind handle. The stack of the Go caller is attached.
func ReportContract(op, handle string, format string, args ...any) {
	Report(&RuntimeError{
		Op:         op,
		Kind:       KindContract,
		Handle:     handle,
		Err:        fmt.Errorf(format, args...),
		StackTrace: CaptureStack(),
	})
}

// ReportLeak reports a handle that became unreachable while still owned.
// Leaks are found by the garbage collector, so no stack is attached.
func ReportLeak(op, handle string, raw uintptr) {
	Report(&RuntimeError{
		Op:     op,
		Kind:   KindLeak,
		Handle: handle,
		Err:    fmt.Errorf("handle %#x was never released", raw),
	})
}

// ReportPanic sends a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in the deferring function and stops it:
//
//	defer errors.Recover("rive.Player.frame")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by callback(r). The native
// boundary uses it to turn a panicking asset loader into a "not handled"
// result instead of unwinding through foreign frames.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteByte('\n')
		if !more {
			break
		}
	}
	return sb.String()
}
