package simengine

import "github.com/go-drift/rive/pkg/abi"

// maxTransitions bounds the transitions taken in one advance so cyclic
// graphs with always-true conditions terminate.
const maxTransitions = 4

type smInput struct {
	name  string
	typ   abi.SmiInputType
	b     bool
	n     float32
	fired bool
}

type reportedEvent struct {
	ev    *eventDef
	delay float32
}

type smInstance struct {
	def        *machineDef
	ab         *artboardObj
	inputs     []*smInput
	inputIndex map[string]*smInput

	state    string
	anim     *animInstance
	pending  []reportedEvent
	reported []reportedEvent
	changed  []string

	vmi      *vmInstance
	triggers map[string]int
	hover    []bool
}

func newSMInstance(d *machineDef, ab *artboardObj) *smInstance {
	s := &smInstance{
		def:        d,
		ab:         ab,
		inputIndex: make(map[string]*smInput, len(d.doc.Inputs)),
		state:      "entry",
		triggers:   make(map[string]int),
		hover:      make([]bool, len(d.doc.Listeners)),
	}
	for _, in := range d.doc.Inputs {
		i := &smInput{name: in.Name}
		switch in.Type {
		case "bool":
			i.typ = abi.SmiInputBool
			i.b = in.Value != 0
		case "number":
			i.typ = abi.SmiInputNumber
			i.n = in.Value
		case "trigger":
			i.typ = abi.SmiInputTrigger
		}
		s.inputs = append(s.inputs, i)
		s.inputIndex[i.name] = i
	}
	return s
}

// advance runs one step: pending pointer events become reported, bound
// view-model values feed the inputs, transitions fire, and the current
// state's animation moves. It reports whether the machine needs another
// advance.
func (s *smInstance) advance(seconds float32, apply bool) bool {
	s.reported, s.pending = s.pending, nil
	s.changed = nil
	s.pullBindings()

	moved := false
	for i := 0; i < maxTransitions; i++ {
		t := s.nextTransition()
		if t == nil {
			break
		}
		s.take(t)
		moved = true
	}
	keepGoing := moved || len(s.reported) > 0
	if s.anim != nil {
		if s.anim.advance(seconds) {
			keepGoing = true
		}
		if apply {
			s.anim.apply(1)
		}
	}
	for _, in := range s.inputs {
		in.fired = false
	}
	return keepGoing
}

func (s *smInstance) nextTransition() *TransitionDoc {
	for i := range s.def.doc.Transitions {
		t := &s.def.doc.Transitions[i]
		switch {
		case t.From == s.state:
		case t.From == "any" && s.state != "entry" && t.To != s.state:
		default:
			continue
		}
		if s.holds(t.Conditions) {
			return t
		}
	}
	return nil
}

func (s *smInstance) holds(conds []ConditionDoc) bool {
	for _, c := range conds {
		in := s.inputIndex[c.Input]
		var v float32
		switch in.typ {
		case abi.SmiInputTrigger:
			if !in.fired {
				return false
			}
			continue
		case abi.SmiInputBool:
			if in.b {
				v = 1
			}
		default:
			v = in.n
		}
		if !compare(v, c.Op, c.Value) {
			return false
		}
	}
	return true
}

func compare(v float32, op string, want float32) bool {
	switch op {
	case "!=":
		return v != want
	case "<":
		return v < want
	case "<=":
		return v <= want
	case ">":
		return v > want
	case ">=":
		return v >= want
	default:
		return v == want
	}
}

func (s *smInstance) take(t *TransitionDoc) {
	s.report(t.Events)
	s.state = t.To
	s.anim = nil
	st, ok := s.def.states[t.To]
	switch {
	case t.To == "exit":
		s.changed = append(s.changed, "exit")
	case ok && st.Animation != "":
		s.changed = append(s.changed, st.Animation)
		s.anim = newAnimInstance(s.def.owner.animIndex[st.Animation], s.ab)
	default:
		s.changed = append(s.changed, "unknown")
	}
	if ok {
		s.report(st.Events)
	}
}

func (s *smInstance) report(names []string) {
	for _, n := range names {
		if ev, ok := s.def.owner.eventIndex[n]; ok {
			s.reported = append(s.reported, reportedEvent{ev: ev})
		}
	}
}

// pullBindings copies bound view-model properties into their inputs. A
// trigger property fires its input when its fire count moved.
func (s *smInstance) pullBindings() {
	vmi := s.vmi
	if vmi == nil {
		vmi = s.ab.vmi
	}
	if vmi == nil {
		return
	}
	for _, b := range s.def.doc.Bindings {
		in := s.inputIndex[b.Input]
		v, err := vmi.resolve(b.Path)
		if err != abi.StatusOK {
			continue
		}
		switch v.def.typ {
		case abi.DataTypeNumber:
			in.n = v.num
		case abi.DataTypeBoolean:
			in.b = v.b
		case abi.DataTypeTrigger:
			if v.fires != s.triggers[b.Path] {
				s.triggers[b.Path] = v.fires
				in.fired = true
			}
		}
	}
}

func (s *smInstance) pathBounds(name string) (abi.AABB, bool) {
	for _, p := range s.ab.paths {
		if p.doc.Name == name {
			return p.worldBounds(), true
		}
	}
	return abi.AABB{}, false
}

func (s *smInstance) pointer(kind string, p abi.Vec2) {
	for i := range s.def.doc.Listeners {
		l := &s.def.doc.Listeners[i]
		inside := true
		if l.Target != "" {
			b, ok := s.pathBounds(l.Target)
			inside = ok && b.Contains(p)
		}
		was := s.hover[i]
		s.hover[i] = inside && kind != "exit"

		var fire bool
		if l.On == "exit" {
			fire = was && !s.hover[i]
		} else {
			fire = l.On == kind && inside
		}
		if fire {
			s.act(l)
		}
	}
}

func (s *smInstance) act(l *ListenerDoc) {
	if in, ok := s.inputIndex[l.Input]; ok {
		switch in.typ {
		case abi.SmiInputTrigger:
			in.fired = true
		case abi.SmiInputBool:
			if l.Action == "toggle" {
				in.b = !in.b
			} else {
				in.b = l.Value != 0
			}
		case abi.SmiInputNumber:
			in.n = l.Value
		}
	}
	if ev, ok := s.def.owner.eventIndex[l.Event]; ok {
		s.pending = append(s.pending, reportedEvent{ev: ev})
	}
}

func (e *Engine) stateMachine(op string, h abi.StateMachine) (*machineDef, bool) {
	return object[*machineDef](e, op, uintptr(h), KindStateMachine)
}

func (e *Engine) smi(op string, h abi.StateMachineInstance) (*smInstance, bool) {
	return object[*smInstance](e, op, uintptr(h), KindStateMachineInstance)
}

func (e *Engine) stateMachineInstanceNew(h abi.StateMachine, a abi.Artboard, out *abi.StateMachineInstance) abi.Status {
	const op = "state_machine_instance_new"
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	d, ok := e.stateMachine(op, h)
	if !ok {
		return abi.StatusNull
	}
	ab, ok := e.artboard(op, a)
	if !ok {
		return abi.StatusNull
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.StateMachineInstance(e.tab.add(KindStateMachineInstance, newSMInstance(d, ab)))
	return abi.StatusOK
}

func (e *Engine) stateMachineName(h abi.StateMachine) abi.StrView {
	d, ok := e.stateMachine("state_machine_name", h)
	if !ok {
		return abi.StrView{}
	}
	return str(d.name)
}

func (e *Engine) stateMachineInstanceDelete(h abi.StateMachineInstance) {
	e.tab.del("state_machine_instance_delete", uintptr(h), KindStateMachineInstance)
}

func (e *Engine) stateMachineInstanceAdvance(h abi.StateMachineInstance, seconds float32, changed *bool) abi.Status {
	if changed == nil {
		return abi.StatusNull
	}
	s, ok := e.smi("state_machine_instance_advance", h)
	if !ok {
		return abi.StatusNull
	}
	*changed = s.advance(seconds, false)
	return abi.StatusOK
}

func (e *Engine) stateMachineInstanceAdvanceAndApply(h abi.StateMachineInstance, seconds float32, changed *bool) abi.Status {
	if changed == nil {
		return abi.StatusNull
	}
	s, ok := e.smi("state_machine_instance_advance_and_apply", h)
	if !ok {
		return abi.StatusNull
	}
	keepGoing := s.advance(seconds, true)
	if s.ab.advance(seconds) {
		keepGoing = true
	}
	*changed = keepGoing
	return abi.StatusOK
}

func (e *Engine) stateMachineInputCount(h abi.StateMachineInstance) uintptr {
	s, ok := e.smi("state_machine_input_count", h)
	if !ok {
		return 0
	}
	return uintptr(len(s.inputs))
}

func (e *Engine) stateMachineInputAt(h abi.StateMachineInstance, index uintptr, out *abi.SmiInput) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	s, ok := e.smi("state_machine_input_at", h)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(s.inputs)) {
		return abi.StatusOutOfRange
	}
	if e.suppress() {
		return abi.StatusOK
	}
	in := s.inputs[index]
	*out = abi.SmiInput(e.tab.child(uintptr(h), in, KindInput, in))
	return abi.StatusOK
}

func (e *Engine) input(op string, h uintptr) (*smInput, bool) {
	return object[*smInput](e, op, h, KindInput)
}

func (e *Engine) smiInputTypeOf(h abi.SmiInput) abi.SmiInputType {
	in, ok := e.input("smi_input_type_of", uintptr(h))
	if !ok {
		return 0
	}
	return in.typ
}

func (e *Engine) smiInputName(h abi.SmiInput) abi.StrView {
	in, ok := e.input("smi_input_name", uintptr(h))
	if !ok {
		return abi.StrView{}
	}
	return str(in.name)
}

// cast narrows an input handle. The typed handle is the same value.
func (e *Engine) cast(op string, h abi.SmiInput, want abi.SmiInputType, out *uintptr) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	in, ok := e.input(op, uintptr(h))
	if !ok {
		return abi.StatusNull
	}
	if in.typ != want {
		return abi.StatusInvalidArgument
	}
	*out = uintptr(h)
	return abi.StatusOK
}

func (e *Engine) smiInputAsBool(h abi.SmiInput, out *abi.SmiBool) abi.Status {
	return e.cast("smi_input_as_bool", h, abi.SmiInputBool, (*uintptr)(out))
}

func (e *Engine) smiInputAsNumber(h abi.SmiInput, out *abi.SmiNumber) abi.Status {
	return e.cast("smi_input_as_number", h, abi.SmiInputNumber, (*uintptr)(out))
}

func (e *Engine) smiInputAsTrigger(h abi.SmiInput, out *abi.SmiTrigger) abi.Status {
	return e.cast("smi_input_as_trigger", h, abi.SmiInputTrigger, (*uintptr)(out))
}

func (e *Engine) typed(op string, h uintptr, want abi.SmiInputType) (*smInput, bool) {
	in, ok := e.input(op, h)
	if !ok || in.typ != want {
		return nil, false
	}
	return in, true
}

func (e *Engine) smiBoolGet(h abi.SmiBool) bool {
	in, ok := e.typed("smi_bool_get", uintptr(h), abi.SmiInputBool)
	return ok && in.b
}

func (e *Engine) smiBoolSet(h abi.SmiBool, v bool) {
	if in, ok := e.typed("smi_bool_set", uintptr(h), abi.SmiInputBool); ok {
		in.b = v
	}
}

func (e *Engine) smiNumberGet(h abi.SmiNumber) float32 {
	in, ok := e.typed("smi_number_get", uintptr(h), abi.SmiInputNumber)
	if !ok {
		return 0
	}
	return in.n
}

func (e *Engine) smiNumberSet(h abi.SmiNumber, v float32) {
	if in, ok := e.typed("smi_number_set", uintptr(h), abi.SmiInputNumber); ok {
		in.n = v
	}
}

func (e *Engine) smiTriggerFire(h abi.SmiTrigger) {
	if in, ok := e.typed("smi_trigger_fire", uintptr(h), abi.SmiInputTrigger); ok {
		in.fired = true
	}
}

func (e *Engine) pointer(op, kind string, h abi.StateMachineInstance, p abi.Vec2) abi.Status {
	s, ok := e.smi(op, h)
	if !ok {
		return abi.StatusNull
	}
	s.pointer(kind, p)
	return abi.StatusOK
}

func (e *Engine) stateMachineInstancePointerDown(h abi.StateMachineInstance, p abi.Vec2, _ int32) abi.Status {
	return e.pointer("state_machine_instance_pointer_down", "down", h, p)
}

func (e *Engine) stateMachineInstancePointerMove(h abi.StateMachineInstance, p abi.Vec2, _ int32) abi.Status {
	return e.pointer("state_machine_instance_pointer_move", "move", h, p)
}

func (e *Engine) stateMachineInstancePointerUp(h abi.StateMachineInstance, p abi.Vec2, _ int32) abi.Status {
	return e.pointer("state_machine_instance_pointer_up", "up", h, p)
}

func (e *Engine) stateMachineInstancePointerExit(h abi.StateMachineInstance, p abi.Vec2, _ int32) abi.Status {
	return e.pointer("state_machine_instance_pointer_exit", "exit", h, p)
}

func (e *Engine) stateMachineInstanceHasListeners(h abi.StateMachineInstance) bool {
	s, ok := e.smi("state_machine_instance_has_listeners", h)
	return ok && len(s.def.doc.Listeners) > 0
}

// hasAnyListener also looks into the machines of nested artboards.
func (e *Engine) stateMachineInstanceHasAnyListener(h abi.StateMachineInstance) bool {
	s, ok := e.smi("state_machine_instance_has_any_listener", h)
	if !ok {
		return false
	}
	if len(s.def.doc.Listeners) > 0 {
		return true
	}
	for _, n := range s.ab.nested {
		if n.sm != nil && len(n.sm.def.doc.Listeners) > 0 {
			return true
		}
	}
	return false
}

func (e *Engine) stateMachineReportedEventCount(h abi.StateMachineInstance) uintptr {
	s, ok := e.smi("state_machine_reported_event_count", h)
	if !ok {
		return 0
	}
	return uintptr(len(s.reported))
}

func (e *Engine) stateMachineReportedEventAt(h abi.StateMachineInstance, index uintptr, out *abi.EventInfo, delay *float32) abi.Status {
	if out == nil || delay == nil {
		return abi.StatusNull
	}
	s, ok := e.smi("state_machine_reported_event_at", h)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(s.reported)) {
		return abi.StatusOutOfRange
	}
	r := s.reported[index]
	*out = eventInfo(r.ev)
	*delay = r.delay
	return abi.StatusOK
}

func (e *Engine) stateMachineReportedEventPropertyAt(h abi.StateMachineInstance, event, property uintptr, out *abi.EventPropertyInfo) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	s, ok := e.smi("state_machine_reported_event_property_at", h)
	if !ok {
		return abi.StatusNull
	}
	if event >= uintptr(len(s.reported)) {
		return abi.StatusOutOfRange
	}
	return eventProperty(s.reported[event].ev, property, out)
}

func (e *Engine) stateMachineStateChangedCount(h abi.StateMachineInstance) uintptr {
	s, ok := e.smi("state_machine_state_changed_count", h)
	if !ok {
		return 0
	}
	return uintptr(len(s.changed))
}

func (e *Engine) stateMachineStateChangedNameAt(h abi.StateMachineInstance, index uintptr, out *abi.StrView) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = abi.StrView{}
	s, ok := e.smi("state_machine_state_changed_name_at", h)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(s.changed)) {
		return abi.StatusOutOfRange
	}
	*out = str(s.changed[index])
	return abi.StatusOK
}

func (e *Engine) stateMachineInstanceBindViewModelInstance(h abi.StateMachineInstance, instance abi.ViewModelInstance) abi.Status {
	const op = "state_machine_instance_bind_view_model_instance"
	s, ok := e.smi(op, h)
	if !ok {
		return abi.StatusNull
	}
	if instance == 0 {
		s.vmi = nil
		return abi.StatusOK
	}
	v, ok := object[*vmInstance](e, op, uintptr(instance), KindViewModelInstance)
	if !ok {
		return abi.StatusNull
	}
	s.vmi = v
	return abi.StatusOK
}
