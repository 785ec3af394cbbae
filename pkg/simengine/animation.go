package simengine

import (
	"math"

	"github.com/go-drift/rive/pkg/abi"
)

const (
	loopOneShot  = 0
	loopLoop     = 1
	loopPingPong = 2
)

// apply writes the keyed values at time seconds onto ab, mixed with the
// current values.
func (a *animationDef) apply(ab *artboardObj, seconds, mix float32) {
	frame := seconds * float32(a.fps)
	for _, k := range a.keys {
		c, ok := ab.compIndex[k.Object]
		if !ok {
			continue
		}
		v := sample(k.Frames, frame)
		if mix < 1 {
			cur := c.get(k.Property)
			v = cur + (v-cur)*mix
		}
		c.set(k.Property, v)
	}
	ab.dirty = true
}

type animInstance struct {
	def       *animationDef
	ab        *artboardObj
	time      float32
	direction float32
	didLoop   bool
}

func newAnimInstance(d *animationDef, ab *artboardObj) *animInstance {
	a := &animInstance{def: d, ab: ab, direction: 1, time: d.startSeconds()}
	if d.speed < 0 {
		a.time = d.endSeconds()
	}
	return a
}

// advance moves the playhead and reports whether the animation keeps going.
func (a *animInstance) advance(seconds float32) bool {
	d := a.def
	start, end := d.startSeconds(), d.endSeconds()
	a.time += seconds * d.speed * a.direction
	a.didLoop = false
	span := end - start
	switch d.loop {
	case loopLoop:
		if span <= 0 {
			a.time = start
			return true
		}
		if a.time >= end {
			a.time = start + float32(math.Mod(float64(a.time-start), float64(span)))
			a.didLoop = true
		} else if a.time < start {
			a.time = end - float32(math.Mod(float64(start-a.time), float64(span)))
			a.didLoop = true
		}
		return true
	case loopPingPong:
		if span <= 0 {
			a.time = start
			return true
		}
		for a.time > end || a.time < start {
			if a.time > end {
				a.time = end - (a.time - end)
			} else {
				a.time = start + (start - a.time)
			}
			a.direction = -a.direction
			a.didLoop = true
		}
		return true
	default:
		if a.time > end {
			a.time = end
			return false
		}
		if a.time < start {
			a.time = start
			return false
		}
		return true
	}
}

func (a *animInstance) apply(mix float32) {
	a.def.apply(a.ab, a.time, mix)
}

func (e *Engine) animation(op string, h abi.LinearAnimation) (*animationDef, bool) {
	return object[*animationDef](e, op, uintptr(h), KindLinearAnimation)
}

func (e *Engine) linearAnimationName(h abi.LinearAnimation) abi.StrView {
	d, ok := e.animation("linear_animation_name", h)
	if !ok {
		return abi.StrView{}
	}
	return str(d.name)
}

func (e *Engine) animU32(op string, h abi.LinearAnimation, get func(*animationDef) uint32) uint32 {
	d, ok := e.animation(op, h)
	if !ok {
		return 0
	}
	return get(d)
}

func (e *Engine) linearAnimationDuration(h abi.LinearAnimation) uint32 {
	return e.animU32("linear_animation_duration", h, func(d *animationDef) uint32 { return d.duration })
}

func (e *Engine) linearAnimationFPS(h abi.LinearAnimation) uint32 {
	return e.animU32("linear_animation_fps", h, func(d *animationDef) uint32 { return d.fps })
}

func (e *Engine) linearAnimationWorkStart(h abi.LinearAnimation) uint32 {
	return e.animU32("linear_animation_work_start", h, func(d *animationDef) uint32 { return d.workStart })
}

func (e *Engine) linearAnimationWorkEnd(h abi.LinearAnimation) uint32 {
	return e.animU32("linear_animation_work_end", h, func(d *animationDef) uint32 { return d.workEnd })
}

func (e *Engine) linearAnimationLoopValue(h abi.LinearAnimation) uint32 {
	return e.animU32("linear_animation_loop_value", h, func(d *animationDef) uint32 { return d.loop })
}

func (e *Engine) linearAnimationEnableWorkArea(h abi.LinearAnimation) bool {
	d, ok := e.animation("linear_animation_enable_work_area", h)
	return ok && d.workArea
}

func (e *Engine) linearAnimationSpeed(h abi.LinearAnimation) float32 {
	d, ok := e.animation("linear_animation_speed", h)
	if !ok {
		return 0
	}
	return d.speed
}

func (e *Engine) linearAnimationApply(h abi.LinearAnimation, a abi.Artboard, time, mix float32) abi.Status {
	const op = "linear_animation_apply"
	d, ok := e.animation(op, h)
	if !ok {
		return abi.StatusNull
	}
	ab, ok := e.artboard(op, a)
	if !ok {
		return abi.StatusNull
	}
	d.apply(ab, time, mix)
	return abi.StatusOK
}

func (e *Engine) linearAnimationInstanceNew(h abi.LinearAnimation, a abi.Artboard, out *abi.LinearAnimationInstance) abi.Status {
	const op = "linear_animation_instance_new"
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	d, ok := e.animation(op, h)
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
	*out = abi.LinearAnimationInstance(e.tab.add(KindLinearAnimationInstance, newAnimInstance(d, ab)))
	return abi.StatusOK
}

func (e *Engine) animInstance(op string, h abi.LinearAnimationInstance) (*animInstance, bool) {
	return object[*animInstance](e, op, uintptr(h), KindLinearAnimationInstance)
}

func (e *Engine) linearAnimationInstanceDelete(h abi.LinearAnimationInstance) {
	e.tab.del("linear_animation_instance_delete", uintptr(h), KindLinearAnimationInstance)
}

func (e *Engine) linearAnimationInstanceAdvance(h abi.LinearAnimationInstance, seconds float32, looped *bool) abi.Status {
	if looped == nil {
		return abi.StatusNull
	}
	a, ok := e.animInstance("linear_animation_instance_advance", h)
	if !ok {
		return abi.StatusNull
	}
	a.advance(seconds)
	*looped = a.didLoop
	return abi.StatusOK
}

// The artboard argument is checked but the instance applies to the
// artboard it was created for.
func (e *Engine) linearAnimationInstanceApply(h abi.LinearAnimationInstance, ab abi.Artboard, mix float32) abi.Status {
	const op = "linear_animation_instance_apply"
	a, ok := e.animInstance(op, h)
	if !ok {
		return abi.StatusNull
	}
	if _, ok := e.artboard(op, ab); !ok {
		return abi.StatusNull
	}
	a.apply(mix)
	return abi.StatusOK
}

func (e *Engine) linearAnimationInstanceTime(h abi.LinearAnimationInstance) float32 {
	a, ok := e.animInstance("linear_animation_instance_time", h)
	if !ok {
		return 0
	}
	return a.time
}

func (e *Engine) linearAnimationInstanceSetTime(h abi.LinearAnimationInstance, seconds float32) {
	if a, ok := e.animInstance("linear_animation_instance_set_time", h); ok {
		a.time = seconds
	}
}

func (e *Engine) linearAnimationInstanceDidLoop(h abi.LinearAnimationInstance) bool {
	a, ok := e.animInstance("linear_animation_instance_did_loop", h)
	return ok && a.didLoop
}
