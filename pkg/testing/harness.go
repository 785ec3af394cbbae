package testing

import (
	"os"
	"time"

	"github.com/go-drift/rive/pkg/rive"
	"github.com/go-drift/rive/pkg/simengine"
)

// TestingT is the subset of *testing.T used by the harness and snapshots,
// allowing test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
	Cleanup(func())
}

// Harness owns a reference engine with one loaded document. Everything
// it hands out is released when the test ends, after which the harness
// checks that nothing leaked on either side of the boundary.
type Harness struct {
	t       TestingT
	Engine  *simengine.Engine
	Runtime *rive.Runtime
	Factory *rive.Factory
	File    *rive.File
}

// NewHarness loads doc, a reference engine document, into a fresh engine.
func NewHarness(t TestingT, doc []byte) *Harness {
	t.Helper()
	e := simengine.New()
	rt, err := rive.NewRuntime(e.Functions())
	if err != nil {
		t.Fatalf("NewRuntime: %v", err)
		return nil
	}
	factory, err := rt.NewFactory()
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
		return nil
	}
	file, err := factory.LoadFile(doc)
	if err != nil {
		factory.Release()
		t.Fatalf("LoadFile: %v", err)
		return nil
	}
	h := &Harness{t: t, Engine: e, Runtime: rt, Factory: factory, File: file}
	t.Cleanup(h.close)
	return h
}

// LoadHarness reads the document at path and calls NewHarness.
func LoadHarness(t TestingT, path string) *Harness {
	t.Helper()
	doc, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
		return nil
	}
	return NewHarness(t, doc)
}

// Artboard instantiates the artboard called name.
func (h *Harness) Artboard(name string) *rive.Artboard {
	h.t.Helper()
	a, err := h.File.Artboard(name)
	if err != nil {
		h.t.Fatalf("Artboard(%q): %v", name, err)
	}
	h.t.Cleanup(a.Release)
	return a
}

// Session creates an instance of the state machine called name on a.
func (h *Harness) Session(a *rive.Artboard, name string) *rive.StateMachineInstance {
	h.t.Helper()
	sm, err := a.StateMachine(name)
	if err != nil {
		h.t.Fatalf("StateMachine(%q): %v", name, err)
	}
	inst, err := sm.NewInstance(a)
	if err != nil {
		h.t.Fatalf("NewInstance(%q): %v", name, err)
	}
	h.t.Cleanup(inst.Destroy)
	return inst
}

// Trace advances inst frames times by dt and records every frame. before,
// if not nil, runs ahead of each advance with the frame index, which is
// where tests fire inputs or send pointer events.
func (h *Harness) Trace(inst *rive.StateMachineInstance, frames int, dt time.Duration, before func(frame int)) *Snapshot {
	h.t.Helper()
	rec := NewRecorder()
	for i := range frames {
		if before != nil {
			before(i)
		}
		if _, err := inst.AdvanceAndApply(float32(dt.Seconds())); err != nil {
			h.t.Fatalf("frame %d: %v", i, err)
		}
		changes, err := inst.DrainStateChanges()
		if err != nil {
			h.t.Fatalf("frame %d: %v", i, err)
		}
		events, err := inst.DrainReportedEvents()
		if err != nil {
			h.t.Fatalf("frame %d: %v", i, err)
		}
		for _, c := range changes {
			rec.StateChange(c)
		}
		for _, ev := range events {
			rec.Event(ev)
		}
		rec.EndFrame()
	}
	return rec.Snapshot()
}

func (h *Harness) close() {
	h.File.Release()
	h.Factory.Release()
	if live := h.Runtime.LiveHandles(); len(live) != 0 {
		h.t.Errorf("live wrappers at end of test: %v", live)
	}
	st := h.Engine.Stats()
	if st.LiveTotal() != 0 {
		h.t.Errorf("live native objects at end of test: %v", st.Live)
	}
	for _, v := range st.Violations {
		h.t.Errorf("ownership violation: %v", v)
	}
}
