package rive

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/simengine"
)

func (s *scene) session(a *Artboard) *StateMachineInstance {
	s.t.Helper()
	sm, err := a.StateMachine("ui")
	if err != nil {
		s.t.Fatalf("StateMachine: %v", err)
	}
	if sm.Name() != "ui" {
		s.t.Fatalf("state machine name = %q", sm.Name())
	}
	inst, err := sm.NewInstance(a)
	if err != nil {
		s.t.Fatalf("NewInstance: %v", err)
	}
	return inst
}

func advance(t *testing.T, inst *StateMachineInstance) ([]string, []ReportedEvent) {
	t.Helper()
	if _, err := inst.Advance(0.016); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	changes, err := inst.DrainStateChanges()
	if err != nil {
		t.Fatalf("DrainStateChanges: %v", err)
	}
	events, err := inst.DrainReportedEvents()
	if err != nil {
		t.Fatalf("DrainReportedEvents: %v", err)
	}
	return changes, events
}

func eventNames(events []ReportedEvent) []string {
	var out []string
	for _, e := range events {
		out = append(out, e.Name)
	}
	return out
}

func TestStateMachineSession(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")
	inst := s.session(a)

	inputs, err := inst.Inputs()
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		name string
		typ  abi.SmiInputType
	}{
		{"hover", abi.SmiInputBool},
		{"level", abi.SmiInputNumber},
		{"press", abi.SmiInputTrigger},
	}
	if len(inputs) != len(want) {
		t.Fatalf("inputs = %d", len(inputs))
	}
	for i, w := range want {
		if inputs[i].Name() != w.name || inputs[i].Type() != w.typ {
			t.Errorf("input %d = %q %v, want %q %v", i, inputs[i].Name(), inputs[i].Type(), w.name, w.typ)
		}
	}

	if changes, _ := advance(t, inst); !slices.Equal(changes, []string{"fade"}) {
		t.Errorf("first advance changes = %v", changes)
	}

	press, err := inst.InputByName("press")
	if err != nil {
		t.Fatal(err)
	}
	trigger, err := press.AsTrigger()
	if err != nil {
		t.Fatal(err)
	}
	if err := trigger.Fire(); err != nil {
		t.Fatal(err)
	}
	changes, events := advance(t, inst)
	if !slices.Equal(changes, []string{"slide"}) {
		t.Errorf("changes after press = %v", changes)
	}
	if len(events) != 1 || events[0].Name != "clicked" {
		t.Fatalf("events after press = %v", eventNames(events))
	}
	props := []struct {
		name string
		want EventValue
	}{
		{"count", EventNumber(1)},
		{"primary", EventBool(true)},
		{"label", EventString("go")},
	}
	for _, p := range props {
		if got, ok := events[0].Property(p.name); !ok || got != p.want {
			t.Errorf("property %s = %v, want %v", p.name, got, p.want)
		}
	}
	if _, ok := events[0].Property("missing"); ok {
		t.Error("unknown property found")
	}

	if changes, events := advance(t, inst); changes != nil || events != nil {
		t.Errorf("quiet advance = %v %v", changes, eventNames(events))
	}

	level, err := inputs[1].AsNumber()
	if err != nil {
		t.Fatal(err)
	}
	if level.Value() != 1 {
		t.Errorf("level = %v", level.Value())
	}
	level.Set(0)
	if changes, _ := advance(t, inst); !slices.Equal(changes, []string{"fade"}) {
		t.Errorf("changes after level drop = %v", changes)
	}

	if _, err := inputs[0].AsTrigger(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bool as trigger = %v", err)
	}
	if _, err := inst.Input(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Input(3) = %v", err)
	}
	if _, err := inst.InputByName("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("InputByName(nope) = %v", err)
	}
	if _, err := inst.StateChangedName(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("StateChangedName(-1) = %v", err)
	}

	inst.Destroy()
	inst.Destroy()
	if err := trigger.Fire(); !errors.Is(err, ErrNull) {
		t.Errorf("Fire after Destroy = %v", err)
	}
	if level.Value() != 0 || inst.InputCount() != 0 {
		t.Error("destroyed session still answers")
	}
	if _, err := inst.Advance(0.1); !errors.Is(err, ErrNull) {
		t.Errorf("Advance after Destroy = %v", err)
	}
	a.Release()
	s.close()
}

func TestPointerEvents(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")
	inst := s.session(a)
	advance(t, inst)

	if !inst.HasListeners() || !inst.HasAnyListener() {
		t.Error("listeners not reported")
	}
	if err := inst.PointerDown(Vec2{X: 10, Y: 10}, 0); err != nil {
		t.Fatal(err)
	}
	if _, events := advance(t, inst); events != nil {
		t.Errorf("miss reported %v", eventNames(events))
	}

	if err := inst.PointerDown(Vec2{X: 110, Y: 60}, 0); err != nil {
		t.Fatal(err)
	}
	changes, events := advance(t, inst)
	if !slices.Equal(changes, []string{"slide"}) {
		t.Errorf("changes after click = %v", changes)
	}
	if got := eventNames(events); !slices.Equal(got, []string{"clicked", "clicked"}) {
		t.Errorf("events after click = %v", got)
	}

	hoverIn, err := inst.InputByName("hover")
	if err != nil {
		t.Fatal(err)
	}
	hover, err := hoverIn.AsBool()
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.PointerMove(Vec2{X: 120, Y: 60}, 0); err != nil {
		t.Fatal(err)
	}
	if !hover.Value() {
		t.Error("move inside did not set hover")
	}
	if err := inst.PointerMove(Vec2{X: 300, Y: 200}, 0); err != nil {
		t.Fatal(err)
	}
	if hover.Value() {
		t.Error("leaving the target did not clear hover")
	}
	if err := inst.PointerUp(Vec2{X: 120, Y: 60}, 0); err != nil {
		t.Errorf("PointerUp: %v", err)
	}

	inst.Destroy()
	if err := inst.PointerExit(Vec2{}, 0); !errors.Is(err, ErrNull) {
		t.Errorf("PointerExit after Destroy = %v", err)
	}
	a.Release()
	s.close()
}

func TestSessionBinding(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")
	inst := s.session(a)
	vmi := s.hud()

	if err := inst.BindViewModelInstance(vmi); err != nil {
		t.Fatal(err)
	}
	advance(t, inst)
	in, err := inst.InputByName("level")
	if err != nil {
		t.Fatal(err)
	}
	level, _ := in.AsNumber()
	if level.Value() != 3 {
		t.Errorf("bound level = %v, want the score 3", level.Value())
	}

	if err := inst.BindViewModelInstance(nil); err != nil {
		t.Errorf("unbind: %v", err)
	}
	if err := a.BindViewModelInstance(vmi); err != nil {
		t.Errorf("artboard bind: %v", err)
	}

	vmi.Release()
	inst.Destroy()
	a.Release()
	s.close()
}

func TestAdvanceAndApply(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")
	inst := s.session(a)

	press, _ := inst.Input(2)
	trigger, _ := press.AsTrigger()
	if err := trigger.Fire(); err != nil {
		t.Fatal(err)
	}
	more, err := inst.AdvanceAndApply(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !more {
		t.Error("AdvanceAndApply reported the session settled")
	}
	root, err := a.Node("root")
	if err != nil {
		t.Fatal(err)
	}
	if x := root.X(); x < 149.99 || x > 150.01 {
		t.Errorf("root x = %v, want 150", x)
	}

	inst.Destroy()
	a.Release()
	s.close()
}

// eventPropertyLimit lowers the property count reported for every event and
// records the highest property index read afterwards.
type eventPropertyLimit struct {
	count   uintptr
	highest int
}

func (l *eventPropertyLimit) record(index uintptr) {
	if int(index) > l.highest {
		l.highest = int(index)
	}
}

func (l *eventPropertyLimit) wrap(fns abi.Functions) *abi.Functions {
	eventAt := fns.ArtboardEventAt
	fns.ArtboardEventAt = func(a abi.Artboard, index uintptr, out *abi.EventInfo) abi.Status {
		st := eventAt(a, index, out)
		if out.PropertyCount > l.count {
			out.PropertyCount = l.count
		}
		return st
	}
	eventProp := fns.ArtboardEventPropertyAt
	fns.ArtboardEventPropertyAt = func(a abi.Artboard, ev, p uintptr, out *abi.EventPropertyInfo) abi.Status {
		l.record(p)
		return eventProp(a, ev, p, out)
	}
	reportedAt := fns.StateMachineReportedEventAt
	fns.StateMachineReportedEventAt = func(i abi.StateMachineInstance, index uintptr, out *abi.EventInfo, delay *float32) abi.Status {
		st := reportedAt(i, index, out, delay)
		if out.PropertyCount > l.count {
			out.PropertyCount = l.count
		}
		return st
	}
	reportedProp := fns.StateMachineReportedEventPropertyAt
	fns.StateMachineReportedEventPropertyAt = func(i abi.StateMachineInstance, ev, p uintptr, out *abi.EventPropertyInfo) abi.Status {
		l.record(p)
		return reportedProp(i, ev, p, out)
	}
	return &fns
}

func TestEventPropertiesBoundedByCount(t *testing.T) {
	tests := []struct {
		name  string
		count uintptr
		read  func(s *scene, a *Artboard) (Event, error)
	}{
		{
			name:  "artboard",
			count: 1,
			read: func(s *scene, a *Artboard) (Event, error) {
				return a.Event(0)
			},
		},
		{
			name:  "reported",
			count: 2,
			read: func(s *scene, a *Artboard) (Event, error) {
				inst := s.session(a)
				defer inst.Destroy()
				advance(s.t, inst)
				press, err := inst.InputByName("press")
				if err != nil {
					return Event{}, err
				}
				trigger, err := press.AsTrigger()
				if err != nil {
					return Event{}, err
				}
				if err := trigger.Fire(); err != nil {
					return Event{}, err
				}
				_, events := advance(s.t, inst)
				if len(events) == 0 {
					return Event{}, errors.New("no reported events")
				}
				return events[0].Event, nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit := &eventPropertyLimit{count: tt.count, highest: -1}
			e := simengine.New()
			rt, err := NewRuntime(limit.wrap(*e.Functions()))
			if err != nil {
				t.Fatalf("NewRuntime: %v", err)
			}
			factory, err := rt.NewFactory()
			if err != nil {
				t.Fatalf("NewFactory: %v", err)
			}
			file, err := factory.LoadFile(sceneData(t))
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			s := &scene{t: t, e: e, rt: rt, factory: factory, file: file}
			a := s.artboard("main")

			ev, err := tt.read(s, a)
			if err != nil {
				t.Fatal(err)
			}
			if ev.Name != "clicked" {
				t.Fatalf("event = %q", ev.Name)
			}
			if uintptr(len(ev.Properties)) != tt.count {
				t.Errorf("properties = %d, want %d", len(ev.Properties), tt.count)
			}
			if limit.highest < 0 || uintptr(limit.highest) >= tt.count {
				t.Errorf("highest property index read = %d, advertised %d", limit.highest, tt.count)
			}
			a.Release()
			s.close()
		})
	}
}
