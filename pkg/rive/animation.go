package rive

import "github.com/go-drift/rive/pkg/abi"

// Loop is the playback mode of a linear animation.
type Loop uint32

const (
	LoopOneShot  Loop = 0
	LoopLoop     Loop = 1
	LoopPingPong Loop = 2
)

func (l Loop) String() string {
	switch l {
	case LoopOneShot:
		return "oneShot"
	case LoopLoop:
		return "loop"
	case LoopPingPong:
		return "pingPong"
	default:
		return "unknown"
	}
}

// LinearAnimation is an animation template of an artboard. It does not own
// anything and stays valid while the artboard wrapper that produced it is
// alive.
type LinearAnimation struct {
	borrowed[abi.LinearAnimation]
}

// Name returns the animation name.
func (l LinearAnimation) Name() string {
	if !l.valid() {
		return ""
	}
	return copyString(l.rt.fns.LinearAnimationName(l.raw))
}

func (l LinearAnimation) u32(get func(abi.LinearAnimation) uint32) uint32 {
	if !l.valid() {
		return 0
	}
	return get(l.raw)
}

// Duration returns the length in frames.
func (l LinearAnimation) Duration() uint32 { return l.u32(l.fns().LinearAnimationDuration) }

// FPS returns the authored frame rate.
func (l LinearAnimation) FPS() uint32 { return l.u32(l.fns().LinearAnimationFPS) }

func (l LinearAnimation) WorkStart() uint32 { return l.u32(l.fns().LinearAnimationWorkStart) }
func (l LinearAnimation) WorkEnd() uint32   { return l.u32(l.fns().LinearAnimationWorkEnd) }
func (l LinearAnimation) Loop() Loop        { return Loop(l.u32(l.fns().LinearAnimationLoopValue)) }

func (l LinearAnimation) EnableWorkArea() bool {
	return l.valid() && l.rt.fns.LinearAnimationEnableWorkArea(l.raw)
}

func (l LinearAnimation) Speed() float32 {
	if !l.valid() {
		return 0
	}
	return l.rt.fns.LinearAnimationSpeed(l.raw)
}

// Seconds returns the duration in seconds, or 0 when FPS is 0.
func (l LinearAnimation) Seconds() float32 {
	fps := l.FPS()
	if fps == 0 {
		return 0
	}
	return float32(l.Duration()) / float32(fps)
}

// Apply poses artboard at time seconds, blended by mix in [0, 1].
func (l LinearAnimation) Apply(artboard *Artboard, time, mix float32) error {
	const op = "LinearAnimation.Apply"
	h, err := l.handle(op)
	if err != nil {
		return err
	}
	ah, err := artboard.handle(op)
	if err != nil {
		return err
	}
	return check(op, l.rt.fns.LinearAnimationApply(h, ah, time, mix))
}

// NewInstance creates a playback cursor bound to artboard. The instance
// must be destroyed before the artboard's last reference is released.
func (l LinearAnimation) NewInstance(artboard *Artboard) (*LinearAnimationInstance, error) {
	const op = "LinearAnimation.NewInstance"
	h, err := l.handle(op)
	if err != nil {
		return nil, err
	}
	ah, err := artboard.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.LinearAnimationInstance
	raw, err := adopt(op, l.rt.fns.LinearAnimationInstanceNew(h, ah, &out), out)
	if err != nil {
		return nil, err
	}
	return newLinearAnimationInstance(l.rt, raw), nil
}

// LinearAnimationInstance is the playback state of one animation on one
// artboard. Destroy frees it.
type LinearAnimationInstance struct {
	h owned[abi.LinearAnimationInstance]
}

func newLinearAnimationInstance(rt *Runtime, raw abi.LinearAnimationInstance) *LinearAnimationInstance {
	i := &LinearAnimationInstance{h: newOwned(rt, kindLinearAnimationInstance, raw, rt.fns.LinearAnimationInstanceDelete)}
	return track(i, &i.h)
}

func (i *LinearAnimationInstance) handle(op string) (abi.LinearAnimationInstance, error) {
	if i == nil {
		return 0, nullError(op)
	}
	return i.h.handle(op)
}

// Destroy frees the instance. Further calls are no-ops.
func (i *LinearAnimationInstance) Destroy() {
	if i != nil {
		i.h.release()
	}
}

// Advance moves the cursor by seconds and reports whether it looped.
func (i *LinearAnimationInstance) Advance(seconds float32) (looped bool, err error) {
	const op = "LinearAnimationInstance.Advance"
	h, err := i.handle(op)
	if err != nil {
		return false, err
	}
	if err := check(op, i.h.rt.fns.LinearAnimationInstanceAdvance(h, seconds, &looped)); err != nil {
		return false, err
	}
	return looped, nil
}

// Apply poses artboard at the current time, blended by mix.
func (i *LinearAnimationInstance) Apply(artboard *Artboard, mix float32) error {
	const op = "LinearAnimationInstance.Apply"
	h, err := i.handle(op)
	if err != nil {
		return err
	}
	ah, err := artboard.handle(op)
	if err != nil {
		return err
	}
	return check(op, i.h.rt.fns.LinearAnimationInstanceApply(h, ah, mix))
}

// Time returns the cursor position in seconds.
func (i *LinearAnimationInstance) Time() float32 {
	h, err := i.handle("")
	if err != nil {
		return 0
	}
	return i.h.rt.fns.LinearAnimationInstanceTime(h)
}

// SetTime moves the cursor to seconds.
func (i *LinearAnimationInstance) SetTime(seconds float32) {
	if h, err := i.handle(""); err == nil {
		i.h.rt.fns.LinearAnimationInstanceSetTime(h, seconds)
	}
}

// DidLoop reports whether the last advance wrapped around.
func (i *LinearAnimationInstance) DidLoop() bool {
	h, err := i.handle("")
	return err == nil && i.h.rt.fns.LinearAnimationInstanceDidLoop(h)
}
