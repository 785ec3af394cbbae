package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes errors to Out, or stderr when
// Out is nil.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a RuntimeError.
func (h *LogHandler) HandleError(err *RuntimeError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[rive error] %s [%s]", err.Op, err.Kind)
		if err.Handle != "" {
			fmt.Fprintf(w, " handle=%s", err.Handle)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[rive error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[rive panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[rive panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
