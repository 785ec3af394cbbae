package rive

import "github.com/go-drift/rive/pkg/abi"

// StateMachine is a state machine template of an artboard. It does not own
// anything.
type StateMachine struct {
	borrowed[abi.StateMachine]
}

// Name returns the state machine name.
func (s StateMachine) Name() string {
	if !s.valid() {
		return ""
	}
	return copyString(s.rt.fns.StateMachineName(s.raw))
}

// NewInstance starts a session of the state machine on artboard. The
// instance must be destroyed before the artboard's last reference is
// released.
func (s StateMachine) NewInstance(artboard *Artboard) (*StateMachineInstance, error) {
	const op = "StateMachine.NewInstance"
	h, err := s.handle(op)
	if err != nil {
		return nil, err
	}
	ah, err := artboard.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.StateMachineInstance
	raw, err := adopt(op, s.rt.fns.StateMachineInstanceNew(h, ah, &out), out)
	if err != nil {
		return nil, err
	}
	return newStateMachineInstance(s.rt, raw), nil
}

// StateMachineInstance is a running state machine session. Each advance
// replaces the reported events and state changes of the previous one, so
// drain them before advancing again. Destroy frees the session.
type StateMachineInstance struct {
	h owned[abi.StateMachineInstance]
}

func newStateMachineInstance(rt *Runtime, raw abi.StateMachineInstance) *StateMachineInstance {
	i := &StateMachineInstance{h: newOwned(rt, kindStateMachineInstance, raw, rt.fns.StateMachineInstanceDelete)}
	return track(i, &i.h)
}

func (i *StateMachineInstance) handle(op string) (abi.StateMachineInstance, error) {
	if i == nil {
		return 0, nullError(op)
	}
	return i.h.handle(op)
}

func (i *StateMachineInstance) alive() bool { return i != nil && i.h.alive() }

// Destroy frees the session. Inputs obtained from it stop working.
// Further calls are no-ops.
func (i *StateMachineInstance) Destroy() {
	if i != nil {
		i.h.release()
	}
}

// Advance evaluates the state machine for seconds and reports whether it
// is still settling.
func (i *StateMachineInstance) Advance(seconds float32) (bool, error) {
	return i.advance("StateMachineInstance.Advance", seconds, false)
}

// AdvanceAndApply advances and writes the result into the bound artboard.
func (i *StateMachineInstance) AdvanceAndApply(seconds float32) (bool, error) {
	return i.advance("StateMachineInstance.AdvanceAndApply", seconds, true)
}

func (i *StateMachineInstance) advance(op string, seconds float32, apply bool) (bool, error) {
	h, err := i.handle(op)
	if err != nil {
		return false, err
	}
	fn := i.h.rt.fns.StateMachineInstanceAdvance
	if apply {
		fn = i.h.rt.fns.StateMachineInstanceAdvanceAndApply
	}
	var changed bool
	if err := check(op, fn(h, seconds, &changed)); err != nil {
		return false, err
	}
	return changed, nil
}

// InputCount returns the number of inputs.
func (i *StateMachineInstance) InputCount() int {
	h, err := i.handle("")
	if err != nil {
		return 0
	}
	return int(i.h.rt.fns.StateMachineInputCount(h))
}

// Input returns input n.
func (i *StateMachineInstance) Input(n int) (SmiInput, error) {
	const op = "StateMachineInstance.Input"
	h, err := i.handle(op)
	if err != nil {
		return SmiInput{}, err
	}
	if n < 0 {
		return SmiInput{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out abi.SmiInput
	raw, err := adopt(op, i.h.rt.fns.StateMachineInputAt(h, uintptr(n), &out), out)
	if err != nil {
		return SmiInput{}, err
	}
	return SmiInput{borrow(i.h.rt, raw, i)}, nil
}

// Inputs returns every input.
func (i *StateMachineInstance) Inputs() ([]SmiInput, error) {
	n := i.InputCount()
	out := make([]SmiInput, 0, n)
	for k := 0; k < n; k++ {
		in, err := i.Input(k)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

// InputByName returns the input called name.
func (i *StateMachineInstance) InputByName(name string) (SmiInput, error) {
	ins, err := i.Inputs()
	if err != nil {
		return SmiInput{}, err
	}
	for _, in := range ins {
		if in.Name() == name {
			return in, nil
		}
	}
	return SmiInput{}, &Error{Op: "StateMachineInstance.InputByName", Status: abi.StatusNotFound}
}

// PointerDown forwards a press at p, in artboard space. id tells touches
// apart.
func (i *StateMachineInstance) PointerDown(p Vec2, id int32) error {
	return i.pointer("StateMachineInstance.PointerDown", i.fns().StateMachineInstancePointerDown, p, id)
}

func (i *StateMachineInstance) PointerMove(p Vec2, id int32) error {
	return i.pointer("StateMachineInstance.PointerMove", i.fns().StateMachineInstancePointerMove, p, id)
}

func (i *StateMachineInstance) PointerUp(p Vec2, id int32) error {
	return i.pointer("StateMachineInstance.PointerUp", i.fns().StateMachineInstancePointerUp, p, id)
}

func (i *StateMachineInstance) PointerExit(p Vec2, id int32) error {
	return i.pointer("StateMachineInstance.PointerExit", i.fns().StateMachineInstancePointerExit, p, id)
}

func (i *StateMachineInstance) pointer(op string, fn func(abi.StateMachineInstance, abi.Vec2, int32) abi.Status, p Vec2, id int32) error {
	h, err := i.handle(op)
	if err != nil {
		return err
	}
	return check(op, fn(h, p, id))
}

func (i *StateMachineInstance) fns() *abi.Functions {
	if i == nil || i.h.rt == nil {
		return &noFunctions
	}
	return i.h.rt.fns
}

// HasListeners reports whether the state machine reacts to pointer events.
func (i *StateMachineInstance) HasListeners() bool {
	h, err := i.handle("")
	return err == nil && i.h.rt.fns.StateMachineInstanceHasListeners(h)
}

// HasAnyListener reports whether any listener, including nested ones,
// exists.
func (i *StateMachineInstance) HasAnyListener() bool {
	h, err := i.handle("")
	return err == nil && i.h.rt.fns.StateMachineInstanceHasAnyListener(h)
}

// ReportedEventCount returns the number of events fired by the last
// advance.
func (i *StateMachineInstance) ReportedEventCount() int {
	h, err := i.handle("")
	if err != nil {
		return 0
	}
	return int(i.h.rt.fns.StateMachineReportedEventCount(h))
}

// ReportedEvent returns event n fired by the last advance.
func (i *StateMachineInstance) ReportedEvent(n int) (ReportedEvent, error) {
	const op = "StateMachineInstance.ReportedEvent"
	h, err := i.handle(op)
	if err != nil {
		return ReportedEvent{}, err
	}
	if n < 0 {
		return ReportedEvent{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	fns := i.h.rt.fns
	var (
		info  abi.EventInfo
		delay float32
	)
	if err := check(op, fns.StateMachineReportedEventAt(h, uintptr(n), &info, &delay)); err != nil {
		return ReportedEvent{}, err
	}
	ev, err := decodeEvent(op, &info, func(p uintptr, out *abi.EventPropertyInfo) abi.Status {
		return fns.StateMachineReportedEventPropertyAt(h, uintptr(n), p, out)
	})
	if err != nil {
		return ReportedEvent{}, err
	}
	return ReportedEvent{Event: ev, Delay: delay}, nil
}

// DrainReportedEvents copies every event fired by the last advance.
func (i *StateMachineInstance) DrainReportedEvents() ([]ReportedEvent, error) {
	n := i.ReportedEventCount()
	if n == 0 {
		return nil, nil
	}
	out := make([]ReportedEvent, 0, n)
	for k := 0; k < n; k++ {
		ev, err := i.ReportedEvent(k)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// StateChangedCount returns the number of states entered during the last
// advance.
func (i *StateMachineInstance) StateChangedCount() int {
	h, err := i.handle("")
	if err != nil {
		return 0
	}
	return int(i.h.rt.fns.StateMachineStateChangedCount(h))
}

// StateChangedName returns the name of state change n.
func (i *StateMachineInstance) StateChangedName(n int) (string, error) {
	const op = "StateMachineInstance.StateChangedName"
	h, err := i.handle(op)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var v abi.StrView
	if err := check(op, i.h.rt.fns.StateMachineStateChangedNameAt(h, uintptr(n), &v)); err != nil {
		return "", err
	}
	return copyString(v), nil
}

// DrainStateChanges copies the names of every state entered during the
// last advance.
func (i *StateMachineInstance) DrainStateChanges() ([]string, error) {
	n := i.StateChangedCount()
	if n == 0 {
		return nil, nil
	}
	out := make([]string, 0, n)
	for k := 0; k < n; k++ {
		name, err := i.StateChangedName(k)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

// BindViewModelInstance binds vmi as the session's data context. A nil
// vmi unbinds.
func (i *StateMachineInstance) BindViewModelInstance(vmi *ViewModelInstance) error {
	const op = "StateMachineInstance.BindViewModelInstance"
	h, err := i.handle(op)
	if err != nil {
		return err
	}
	var vh abi.ViewModelInstance
	if vmi != nil {
		if vh, err = vmi.handle(op); err != nil {
			return err
		}
	}
	return check(op, i.h.rt.fns.StateMachineInstanceBindViewModelInstance(h, vh))
}
