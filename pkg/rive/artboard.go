package rive

import (
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
)

// Artboard is a drawable scene root. It is reference counted; clones alias
// the same native artboard, so advancing one is visible through the other.
type Artboard struct {
	h shared[abi.Artboard]
}

func newArtboard(rt *Runtime, raw abi.Artboard) *Artboard {
	a := &Artboard{h: newShared(rt, kindArtboard, raw, rt.fns.ArtboardRef, rt.fns.ArtboardUnref)}
	return track(a, &a.h.owned)
}

func (a *Artboard) handle(op string) (abi.Artboard, error) {
	if a == nil {
		return 0, nullError(op)
	}
	return a.h.handle(op)
}

func (a *Artboard) raw() abi.Artboard {
	if a == nil {
		return 0
	}
	return a.h.raw
}

func (a *Artboard) alive() bool { return a.raw() != 0 }

// Clone returns a second wrapper for the same artboard.
func (a *Artboard) Clone() (*Artboard, error) {
	if a == nil {
		return nil, nullError("Artboard.Clone")
	}
	raw, err := a.h.retain("Artboard.Clone")
	if err != nil {
		return nil, err
	}
	return newArtboard(a.h.rt, raw), nil
}

// Release drops this wrapper's reference. Accessors obtained through this
// wrapper stop working. Further calls are no-ops.
func (a *Artboard) Release() {
	if a != nil {
		a.h.release()
	}
}

// Advance moves the artboard forward by seconds and reports whether
// anything visual changed.
func (a *Artboard) Advance(seconds float32) (bool, error) {
	const op = "Artboard.Advance"
	h, err := a.handle(op)
	if err != nil {
		return false, err
	}
	var changed bool
	if err := check(op, a.h.rt.fns.ArtboardAdvance(h, seconds, &changed)); err != nil {
		return false, err
	}
	return changed, nil
}

// RawRenderer is implemented by renderers that expose a generic renderer
// handle.
type RawRenderer interface {
	RendererHandle() abi.Renderer
}

// Draw draws the artboard with r.
func (a *Artboard) Draw(r RawRenderer) error {
	const op = "Artboard.Draw"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	if r == nil {
		return nullError(op)
	}
	rh := r.RendererHandle()
	if rh == 0 {
		return nullError(op)
	}
	return check(op, a.h.rt.fns.ArtboardDraw(h, rh))
}

// DrawWebGL2 draws the artboard with a WebGL2 renderer.
func (a *Artboard) DrawWebGL2(r *WebGL2Renderer) error {
	const op = "Artboard.DrawWebGL2"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	rh, err := r.handle(op)
	if err != nil {
		return err
	}
	return check(op, a.h.rt.fns.ArtboardDrawWebGL2(h, rh))
}

// DrawWebGPU draws the artboard with a WebGPU renderer.
func (a *Artboard) DrawWebGPU(r *WebGPURenderer) error {
	const op = "Artboard.DrawWebGPU"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	rh, err := r.handle(op)
	if err != nil {
		return err
	}
	return check(op, a.h.rt.fns.ArtboardDrawWebGPU(h, rh))
}

// DidChange reports whether the last advance changed anything.
func (a *Artboard) DidChange() bool {
	h := a.raw()
	return h != 0 && a.h.rt.fns.ArtboardDidChange(h)
}

// Name returns the artboard name.
func (a *Artboard) Name() string {
	h := a.raw()
	if h == 0 {
		return ""
	}
	return copyString(a.h.rt.fns.ArtboardName(h))
}

// Bounds returns the artboard bounds.
func (a *Artboard) Bounds() AABB {
	h := a.raw()
	if h == 0 {
		return AABB{}
	}
	return a.h.rt.fns.ArtboardBounds(h)
}

func (a *Artboard) Width() float32 {
	h := a.raw()
	if h == 0 {
		return 0
	}
	return a.h.rt.fns.ArtboardWidth(h)
}

func (a *Artboard) Height() float32 {
	h := a.raw()
	if h == 0 {
		return 0
	}
	return a.h.rt.fns.ArtboardHeight(h)
}

func (a *Artboard) SetWidth(w float32) {
	if h := a.raw(); h != 0 {
		a.h.rt.fns.ArtboardSetWidth(h, w)
	}
}

func (a *Artboard) SetHeight(v float32) {
	if h := a.raw(); h != 0 {
		a.h.rt.fns.ArtboardSetHeight(h, v)
	}
}

// FrameOrigin reports whether the origin is placed at the frame's top left.
func (a *Artboard) FrameOrigin() bool {
	h := a.raw()
	return h != 0 && a.h.rt.fns.ArtboardFrameOrigin(h)
}

func (a *Artboard) SetFrameOrigin(v bool) {
	if h := a.raw(); h != 0 {
		a.h.rt.fns.ArtboardSetFrameOrigin(h, v)
	}
}

func (a *Artboard) HasAudio() bool {
	h := a.raw()
	return h != 0 && a.h.rt.fns.ArtboardHasAudio(h)
}

func (a *Artboard) Volume() float32 {
	h := a.raw()
	if h == 0 {
		return 0
	}
	return a.h.rt.fns.ArtboardVolume(h)
}

func (a *Artboard) SetVolume(v float32) {
	if h := a.raw(); h != 0 {
		a.h.rt.fns.ArtboardSetVolume(h, v)
	}
}

// ResetSize restores the authored width and height.
func (a *Artboard) ResetSize() error {
	const op = "Artboard.ResetSize"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	return check(op, a.h.rt.fns.ArtboardResetSize(h))
}

func (a *Artboard) count(get func(abi.Artboard) uintptr) int {
	h := a.raw()
	if h == 0 {
		return 0
	}
	return int(get(h))
}

func (a *Artboard) AnimationCount() int    { return a.count(a.fns().ArtboardAnimationCount) }
func (a *Artboard) StateMachineCount() int { return a.count(a.fns().ArtboardStateMachineCount) }
func (a *Artboard) EventCount() int        { return a.count(a.fns().ArtboardEventCount) }
func (a *Artboard) TextRunCount() int      { return a.count(a.fns().ArtboardTextValueRunCount) }

func (a *Artboard) fns() *abi.Functions {
	if a == nil || a.h.rt == nil {
		return &noFunctions
	}
	return a.h.rt.fns
}

// Event returns event i with all of its properties.
func (a *Artboard) Event(i int) (Event, error) {
	const op = "Artboard.Event"
	h, err := a.handle(op)
	if err != nil {
		return Event{}, err
	}
	if i < 0 {
		return Event{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	fns := a.h.rt.fns
	var info abi.EventInfo
	if err := check(op, fns.ArtboardEventAt(h, uintptr(i), &info)); err != nil {
		return Event{}, err
	}
	return decodeEvent(op, &info, func(p uintptr, out *abi.EventPropertyInfo) abi.Status {
		return fns.ArtboardEventPropertyAt(h, uintptr(i), p, out)
	})
}

// Events returns every event declared on the artboard.
func (a *Artboard) Events() ([]Event, error) {
	n := a.EventCount()
	out := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		ev, err := a.Event(i)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// AnimationAt returns animation i.
func (a *Artboard) AnimationAt(i int) (LinearAnimation, error) {
	const op = "Artboard.AnimationAt"
	h, err := a.handle(op)
	if err != nil {
		return LinearAnimation{}, err
	}
	if i < 0 {
		return LinearAnimation{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out abi.LinearAnimation
	raw, err := adopt(op, a.h.rt.fns.ArtboardAnimationByIndex(h, uintptr(i), &out), out)
	if err != nil {
		return LinearAnimation{}, err
	}
	return LinearAnimation{borrow(a.h.rt, raw, a)}, nil
}

// Animation returns the animation called name.
func (a *Artboard) Animation(name string) (LinearAnimation, error) {
	const op = "Artboard.Animation"
	h, err := a.handle(op)
	if err != nil {
		return LinearAnimation{}, err
	}
	var out abi.LinearAnimation
	st := a.h.rt.fns.ArtboardAnimationByName(h, abi.Str(name), &out)
	runtime.KeepAlive(name)
	raw, err := adopt(op, st, out)
	if err != nil {
		return LinearAnimation{}, err
	}
	return LinearAnimation{borrow(a.h.rt, raw, a)}, nil
}

// StateMachineAt returns state machine i.
func (a *Artboard) StateMachineAt(i int) (StateMachine, error) {
	const op = "Artboard.StateMachineAt"
	h, err := a.handle(op)
	if err != nil {
		return StateMachine{}, err
	}
	if i < 0 {
		return StateMachine{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out abi.StateMachine
	raw, err := adopt(op, a.h.rt.fns.ArtboardStateMachineByIndex(h, uintptr(i), &out), out)
	if err != nil {
		return StateMachine{}, err
	}
	return StateMachine{borrow(a.h.rt, raw, a)}, nil
}

// StateMachine returns the state machine called name.
func (a *Artboard) StateMachine(name string) (StateMachine, error) {
	const op = "Artboard.StateMachine"
	h, err := a.handle(op)
	if err != nil {
		return StateMachine{}, err
	}
	var out abi.StateMachine
	st := a.h.rt.fns.ArtboardStateMachineByName(h, abi.Str(name), &out)
	runtime.KeepAlive(name)
	raw, err := adopt(op, st, out)
	if err != nil {
		return StateMachine{}, err
	}
	return StateMachine{borrow(a.h.rt, raw, a)}, nil
}

// InputByPath returns input name of the nested artboard at path.
func (a *Artboard) InputByPath(name, path string) (SmiInput, error) {
	const op = "Artboard.InputByPath"
	h, err := a.handle(op)
	if err != nil {
		return SmiInput{}, err
	}
	var out abi.SmiInput
	st := a.h.rt.fns.ArtboardInputByPath(h, abi.Str(name), abi.Str(path), &out)
	runtime.KeepAlive(name)
	runtime.KeepAlive(path)
	raw, err := adopt(op, st, out)
	if err != nil {
		return SmiInput{}, err
	}
	return SmiInput{borrow(a.h.rt, raw, a)}, nil
}

// TextRunNameAt returns the name of text value run i.
func (a *Artboard) TextRunNameAt(i int) (string, error) {
	return a.textAt("Artboard.TextRunNameAt", i, a.fns().ArtboardTextValueRunNameAt)
}

// TextRunTextAt returns the text of text value run i.
func (a *Artboard) TextRunTextAt(i int) (string, error) {
	return a.textAt("Artboard.TextRunTextAt", i, a.fns().ArtboardTextValueRunTextAt)
}

func (a *Artboard) textAt(op string, i int, get func(abi.Artboard, uintptr, *abi.StrView) abi.Status) (string, error) {
	h, err := a.handle(op)
	if err != nil {
		return "", err
	}
	if i < 0 {
		return "", &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var v abi.StrView
	if err := check(op, get(h, uintptr(i), &v)); err != nil {
		return "", err
	}
	return copyString(v), nil
}

// SetTextRunTextAt replaces the text of text value run i.
func (a *Artboard) SetTextRunTextAt(i int, text string) error {
	const op = "Artboard.SetTextRunTextAt"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	if i < 0 {
		return &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	st := a.h.rt.fns.ArtboardSetTextValueRunTextAt(h, uintptr(i), abi.Str(text))
	runtime.KeepAlive(text)
	return check(op, st)
}

// TextByPath returns the text of run name in the nested artboard at path.
// An empty path addresses this artboard.
func (a *Artboard) TextByPath(name, path string) (string, error) {
	const op = "Artboard.TextByPath"
	h, err := a.handle(op)
	if err != nil {
		return "", err
	}
	var v abi.StrView
	st := a.h.rt.fns.ArtboardTextByPathGet(h, abi.Str(name), abi.Str(path), &v)
	runtime.KeepAlive(name)
	runtime.KeepAlive(path)
	if err := check(op, st); err != nil {
		return "", err
	}
	return copyString(v), nil
}

// SetTextByPath replaces the text of run name in the nested artboard at
// path.
func (a *Artboard) SetTextByPath(name, path, text string) error {
	const op = "Artboard.SetTextByPath"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	st := a.h.rt.fns.ArtboardTextByPathSet(h, abi.Str(name), abi.Str(path), abi.Str(text))
	runtime.KeepAlive(name)
	runtime.KeepAlive(path)
	runtime.KeepAlive(text)
	return check(op, st)
}

// FlattenPath snapshots path i. With toParent the coordinates are in the
// parent's space instead of the path's local space.
func (a *Artboard) FlattenPath(i int, toParent bool) (*FlattenedPath, error) {
	const op = "Artboard.FlattenPath"
	h, err := a.handle(op)
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out abi.FlattenedPath
	raw, err := adopt(op, a.h.rt.fns.ArtboardFlattenPath(h, uintptr(i), toParent, &out), out)
	if err != nil {
		return nil, err
	}
	return newFlattenedPath(a.h.rt, raw), nil
}

// BindViewModelInstance binds vmi as the artboard's data context. A nil
// vmi unbinds; a released one is refused.
func (a *Artboard) BindViewModelInstance(vmi *ViewModelInstance) error {
	const op = "Artboard.BindViewModelInstance"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	var vh abi.ViewModelInstance
	if vmi != nil {
		if vh, err = vmi.handle(op); err != nil {
			return err
		}
	}
	return check(op, a.h.rt.fns.ArtboardBindViewModelInstance(h, vh))
}
