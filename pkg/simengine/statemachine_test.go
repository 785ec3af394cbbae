package simengine

import (
	"slices"
	"testing"

	"github.com/go-drift/rive/pkg/abi"
)

type machine struct {
	fx *fixture
	h  abi.StateMachineInstance
}

func (fx *fixture) machine(a abi.Artboard) *machine {
	fx.t.Helper()
	var sm abi.StateMachine
	fx.ok("ArtboardStateMachineByName", fx.fns.ArtboardStateMachineByName(a, abi.Str("ui"), &sm))
	if goString(fx.fns.StateMachineName(sm)) != "ui" {
		fx.t.Fatalf("state machine name = %q", goString(fx.fns.StateMachineName(sm)))
	}
	m := &machine{fx: fx}
	fx.ok("StateMachineInstanceNew", fx.fns.StateMachineInstanceNew(sm, a, &m.h))
	return m
}

func (m *machine) advance() bool {
	m.fx.t.Helper()
	var more bool
	m.fx.ok("StateMachineInstanceAdvance", m.fx.fns.StateMachineInstanceAdvance(m.h, 0, &more))
	return more
}

func (m *machine) input(i uintptr) abi.SmiInput {
	m.fx.t.Helper()
	var in abi.SmiInput
	m.fx.ok("StateMachineInputAt", m.fx.fns.StateMachineInputAt(m.h, i, &in))
	return in
}

func (m *machine) changes() []string {
	fns := m.fx.fns
	var out []string
	for i := uintptr(0); i < fns.StateMachineStateChangedCount(m.h); i++ {
		var s abi.StrView
		m.fx.ok("StateMachineStateChangedNameAt", fns.StateMachineStateChangedNameAt(m.h, i, &s))
		out = append(out, goString(s))
	}
	return out
}

func (m *machine) events() []string {
	fns := m.fx.fns
	var out []string
	for i := uintptr(0); i < fns.StateMachineReportedEventCount(m.h); i++ {
		var ev abi.EventInfo
		var delay float32
		m.fx.ok("StateMachineReportedEventAt", fns.StateMachineReportedEventAt(m.h, i, &ev, &delay))
		out = append(out, goString(ev.Name))
	}
	return out
}

func TestStateMachineTransitions(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")
	m := fx.machine(a)

	if n := fns.StateMachineInputCount(m.h); n != 3 {
		t.Fatalf("inputs = %d", n)
	}
	if !m.advance() {
		t.Error("first advance reported settled")
	}
	if got := m.changes(); !slices.Equal(got, []string{"fade"}) {
		t.Errorf("entry changes = %v", got)
	}

	var trig abi.SmiTrigger
	fx.ok("SmiInputAsTrigger", fns.SmiInputAsTrigger(m.input(2), &trig))
	fns.SmiTriggerFire(trig)
	m.advance()
	if got := m.changes(); !slices.Equal(got, []string{"slide"}) {
		t.Errorf("changes after trigger = %v", got)
	}
	if got := m.events(); !slices.Equal(got, []string{"clicked"}) {
		t.Errorf("events after trigger = %v", got)
	}
	var p abi.EventPropertyInfo
	fx.ok("StateMachineReportedEventPropertyAt", fns.StateMachineReportedEventPropertyAt(m.h, 0, 2, &p))
	if goString(p.StringValue) != "go" {
		t.Errorf("reported property = %+v", p)
	}

	m.advance()
	if len(m.changes()) != 0 || len(m.events()) != 0 {
		t.Errorf("quiet advance kept changes %v events %v", m.changes(), m.events())
	}

	var level abi.SmiNumber
	fx.ok("SmiInputAsNumber", fns.SmiInputAsNumber(m.input(1), &level))
	if fns.SmiNumberGet(level) != 1 {
		t.Errorf("level = %v", fns.SmiNumberGet(level))
	}
	fns.SmiNumberSet(level, 0)
	m.advance()
	if got := m.changes(); !slices.Equal(got, []string{"fade"}) {
		t.Errorf("changes after level drop = %v", got)
	}

	var ev abi.EventInfo
	var delay float32
	if st := fns.StateMachineReportedEventAt(m.h, 0, &ev, nil); st != abi.StatusNull {
		t.Errorf("ReportedEventAt without delay = %v", st)
	}
	if st := fns.StateMachineReportedEventAt(m.h, 0, &ev, &delay); st != abi.StatusOutOfRange {
		t.Errorf("ReportedEventAt past the end = %v", st)
	}
	fns.StateMachineInstanceDelete(m.h)
	fx.noViolations()
}

func TestStateMachineInputs(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	m := fx.machine(fx.artboard("main"))

	tests := []struct {
		index uintptr
		name  string
		typ   abi.SmiInputType
	}{
		{0, "hover", abi.SmiInputBool},
		{1, "level", abi.SmiInputNumber},
		{2, "press", abi.SmiInputTrigger},
	}
	for _, tt := range tests {
		in := m.input(tt.index)
		if got := goString(fns.SmiInputName(in)); got != tt.name {
			t.Errorf("input %d name = %q", tt.index, got)
		}
		if got := fns.SmiInputTypeOf(in); got != tt.typ {
			t.Errorf("input %d type = %v", tt.index, got)
		}
		if in != m.input(tt.index) {
			t.Errorf("input %d handle is not stable", tt.index)
		}
	}

	var b abi.SmiBool
	fx.ok("SmiInputAsBool", fns.SmiInputAsBool(m.input(0), &b))
	fns.SmiBoolSet(b, true)
	if !fns.SmiBoolGet(b) {
		t.Error("bool input did not take the value")
	}
	var trig abi.SmiTrigger
	if st := fns.SmiInputAsTrigger(m.input(0), &trig); st != abi.StatusInvalidArgument {
		t.Errorf("bool as trigger = %v", st)
	}
	var in abi.SmiInput
	if st := fns.StateMachineInputAt(m.h, 3, &in); st != abi.StatusOutOfRange {
		t.Errorf("StateMachineInputAt(3) = %v", st)
	}

	fns.StateMachineInstanceDelete(m.h)
	if fns.SmiBoolGet(b) {
		t.Error("input outlived its state machine")
	}
	if len(fx.e.Stats().Violations) != 1 {
		t.Errorf("violations = %v", fx.e.Stats().Violations)
	}
}

func TestPointerListeners(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	m := fx.machine(fx.artboard("main"))

	if !fns.StateMachineInstanceHasListeners(m.h) || !fns.StateMachineInstanceHasAnyListener(m.h) {
		t.Error("listeners not reported")
	}

	fx.ok("PointerDown outside", fns.StateMachineInstancePointerDown(m.h, abi.Vec2{X: 10, Y: 10}, 0))
	m.advance()
	if len(m.events()) != 0 {
		t.Errorf("miss reported %v", m.events())
	}

	fx.ok("PointerDown", fns.StateMachineInstancePointerDown(m.h, abi.Vec2{X: 110, Y: 60}, 0))
	m.advance()
	if got := m.changes(); !slices.Equal(got, []string{"slide"}) {
		t.Errorf("changes after click = %v", got)
	}
	if got := m.events(); !slices.Equal(got, []string{"clicked", "clicked"}) {
		t.Errorf("events after click = %v, want listener and state events", got)
	}

	var hover abi.SmiBool
	fx.ok("SmiInputAsBool", fns.SmiInputAsBool(m.input(0), &hover))
	fx.ok("PointerMove inside", fns.StateMachineInstancePointerMove(m.h, abi.Vec2{X: 120, Y: 60}, 0))
	if !fns.SmiBoolGet(hover) {
		t.Error("move inside did not set hover")
	}
	fx.ok("PointerMove outside", fns.StateMachineInstancePointerMove(m.h, abi.Vec2{X: 300, Y: 200}, 0))
	if fns.SmiBoolGet(hover) {
		t.Error("leaving the target did not clear hover")
	}

	if st := fns.StateMachineInstancePointerUp(0, abi.Vec2{}, 0); st != abi.StatusNull {
		t.Errorf("PointerUp on null = %v", st)
	}
}

func TestFirstAdvanceChainsTransitions(t *testing.T) {
	fx := newFixture(t)
	m := fx.machine(fx.artboard("main"))

	var trig abi.SmiTrigger
	fx.ok("SmiInputAsTrigger", fx.fns.SmiInputAsTrigger(m.input(2), &trig))
	fx.fns.SmiTriggerFire(trig)
	m.advance()
	if got := m.changes(); !slices.Equal(got, []string{"fade", "slide"}) {
		t.Errorf("changes = %v", got)
	}
}

func TestTransitionLimitPerAdvance(t *testing.T) {
	doc := `format: rive-sim/1
artboards:
  - name: a
    state_machines:
      - name: loop
        states: [{name: x}, {name: "y"}]
        transitions:
          - {from: entry, to: x}
          - {from: x, to: "y"}
          - {from: "y", to: x}
`
	e := New()
	fns := e.Functions()
	var f abi.File
	if st := fns.LoadFile(fns.FactoryDefault(), abi.Bytes([]byte(doc)), &f); st != abi.StatusOK {
		t.Fatalf("LoadFile = %v", st)
	}
	var a abi.Artboard
	var sm abi.StateMachine
	var h abi.StateMachineInstance
	fns.FileArtboardDefault(f, &a)
	fns.ArtboardStateMachineByIndex(a, 0, &sm)
	if st := fns.StateMachineInstanceNew(sm, a, &h); st != abi.StatusOK {
		t.Fatalf("StateMachineInstanceNew = %v", st)
	}
	var more bool
	fns.StateMachineInstanceAdvance(h, 0, &more)
	if n := fns.StateMachineStateChangedCount(h); n != maxTransitions {
		t.Errorf("changes = %d, want %d", n, maxTransitions)
	}
	var s abi.StrView
	fns.StateMachineStateChangedNameAt(h, 0, &s)
	if goString(s) != "unknown" {
		t.Errorf("state without animation reported as %q", goString(s))
	}
}

func TestBindingDrivesInputs(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")
	m := fx.machine(a)

	var vm abi.ViewModel
	fx.ok("FileViewModelByName", fns.FileViewModelByName(fx.file, abi.Str("Hud"), &vm))
	var vmi abi.ViewModelInstance
	fx.ok("ViewModelDefaultInstance", fns.ViewModelDefaultInstance(vm, &vmi))
	fx.ok("StateMachineInstanceBindViewModelInstance", fns.StateMachineInstanceBindViewModelInstance(m.h, vmi))

	var level abi.SmiNumber
	fx.ok("SmiInputAsNumber", fns.SmiInputAsNumber(m.input(1), &level))
	m.advance()
	if fns.SmiNumberGet(level) != 3 {
		t.Errorf("bound level = %v, want 3", fns.SmiNumberGet(level))
	}

	var trig abi.SmiTrigger
	fx.ok("SmiInputAsTrigger", fns.SmiInputAsTrigger(m.input(2), &trig))
	fns.SmiTriggerFire(trig)
	m.advance()

	fx.ok("ViewModelInstanceSetNumber", fns.ViewModelInstanceSetNumber(vmi, abi.Str("score"), 0))
	m.advance()
	if got := m.changes(); !slices.Equal(got, []string{"fade"}) {
		t.Errorf("changes after score drop = %v", got)
	}

	fx.ok("unbind", fns.StateMachineInstanceBindViewModelInstance(m.h, 0))
	fns.SmiNumberSet(level, 7)
	m.advance()
	if fns.SmiNumberGet(level) != 7 {
		t.Error("unbound instance still drives the input")
	}
	fns.ViewModelInstanceUnref(vmi)
	fns.ViewModelUnref(vm)
	fx.noViolations()
}

func TestAdvanceAndApplyWritesArtboard(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")
	m := fx.machine(a)

	var trig abi.SmiTrigger
	fx.ok("SmiInputAsTrigger", fns.SmiInputAsTrigger(m.input(2), &trig))
	fns.SmiTriggerFire(trig)
	var more bool
	fx.ok("StateMachineInstanceAdvanceAndApply", fns.StateMachineInstanceAdvanceAndApply(m.h, 0.5, &more))
	if !more {
		t.Error("looping state reported settled")
	}
	var node abi.Node
	fx.ok("ArtboardNodeByName", fns.ArtboardNodeByName(a, abi.Str("root"), &node))
	if !near(fns.NodeX(node), 150) {
		t.Errorf("root x = %v, want 150", fns.NodeX(node))
	}
}
