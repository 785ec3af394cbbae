package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestRuntimeErrorString(t *testing.T) {
	err := &RuntimeError{
		Op:   "rive.File.Artboard",
		Kind: KindContract,
		Err:  stderrors.New("ok status with null handle"),
	}
	want := "rive.File.Artboard [contract]: ok status with null handle"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestRuntimeErrorWithHandle(t *testing.T) {
	err := &RuntimeError{
		Op:     "rive.Runtime.Close",
		Kind:   KindLeak,
		Handle: "artboard",
		Err:    stderrors.New("2 live"),
	}
	got := err.Error()
	if !strings.Contains(got, "handle=artboard") {
		t.Errorf("error string %q should contain handle", got)
	}
}

func TestRuntimeErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &RuntimeError{Op: "op", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("RuntimeError should unwrap to its cause")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindContract, "contract"},
		{KindCallback, "callback"},
		{KindLeak, "leak"},
		{KindLoad, "load"},
		{KindPanic, "panic"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "rive.LoadFile.assetLoader"
	if got, want := err.Error(), "panic in rive.LoadFile.assetLoader: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *RuntimeError
	handler := &testHandler{
		onError: func(err *RuntimeError) {
			capturedErr = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&RuntimeError{
		Op:   "test.op",
		Kind: KindLoad,
		Err:  stderrors.New("missing symbol"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	Report(nil)
}

func TestReportHelpers(t *testing.T) {
	var got []*RuntimeError
	oldHandler := Handler()
	SetHandler(&testHandler{onError: func(err *RuntimeError) { got = append(got, err) }})
	defer SetHandler(oldHandler)

	ReportContract("rive.Factory.LoadFile", "file", "ok status with null handle")
	ReportLeak("rive.track", "artboard", 0x2a)

	if len(got) != 2 {
		t.Fatalf("reported %d errors, want 2", len(got))
	}
	c, l := got[0], got[1]
	if c.Kind != KindContract || c.Handle != "file" || c.StackTrace == "" {
		t.Errorf("contract report = %+v", c)
	}
	if c.Err.Error() != "ok status with null handle" {
		t.Errorf("contract err = %v", c.Err)
	}
	if l.Kind != KindLeak || l.Handle != "artboard" || l.StackTrace != "" {
		t.Errorf("leak report = %+v", l)
	}
	if !strings.Contains(l.Err.Error(), "0x2a") {
		t.Errorf("leak err = %v", l.Err)
	}
	if l.Timestamp.IsZero() || c.Timestamp.IsZero() {
		t.Error("reports were not timestamped")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := Handler()
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := Handler()
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	handled := true
	func() {
		defer RecoverWithCallback("test.callback", func(r any) {
			handled = false
		})
		panic("loader exploded")
	}()
	if handled {
		t.Error("callback should run after a recovered panic")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if Handler() == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&RuntimeError{Op: "rive.File.Release", Kind: KindContract, Err: stderrors.New("boom")})
	if got, want := buf.String(), "[rive error] rive.File.Release: boom\n"; got != want {
		t.Errorf("HandleError wrote %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&RuntimeError{Op: "op", Kind: KindLeak, Handle: "file", Err: stderrors.New("x"), StackTrace: "frame"})
	out := buf.String()
	if !strings.Contains(out, "[leak] handle=file") || !strings.Contains(out, "Stack trace:\nframe") {
		t.Errorf("verbose output missing details: %q", out)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "cb", Value: 3})
	if !strings.HasPrefix(buf.String(), "[rive panic] cb: 3\n") {
		t.Errorf("HandlePanic wrote %q", buf.String())
	}
}

type testHandler struct {
	onError func(*RuntimeError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *RuntimeError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
