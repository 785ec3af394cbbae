package rive

import (
	"fmt"
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/errors"
)

// kind tags the owning wrapper families for leak accounting.
type kind int

const (
	kindFactory kind = iota
	kindFile
	kindArtboard
	kindBindableArtboard
	kindViewModel
	kindViewModelInstance
	kindRenderImage
	kindLinearAnimationInstance
	kindStateMachineInstance
	kindFlattenedPath
	kindAudioSource
	kindFont
	kindWebGL2Renderer
	kindWebGPURenderer
	kindCount
)

var kindNames = [kindCount]string{
	"factory", "file", "artboard", "bindable_artboard", "view_model",
	"view_model_instance", "render_image", "linear_animation_instance",
	"state_machine_instance", "flattened_path", "audio_source", "font",
	"webgl2_renderer", "webgpu_renderer",
}

func (k kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// owned holds exactly one native reference (shared family) or the single
// destructor right (unique family). drop runs at most once.
type owned[H ~uintptr] struct {
	rt      *Runtime
	raw     H
	kind    kind
	drop    func(H)
	cleanup runtime.Cleanup
}

func (o *owned[H]) alive() bool { return o.raw != 0 }

func (o *owned[H]) handle(op string) (H, error) {
	if o.raw == 0 {
		return 0, nullError(op)
	}
	return o.raw, nil
}

func (o *owned[H]) release() {
	if o.raw == 0 {
		return
	}
	h := o.raw
	o.raw = 0
	o.cleanup.Stop()
	o.drop(h)
	o.rt.live[o.kind].Add(-1)
	Logger().Debug("rive: released handle", "kind", o.kind, "handle", uintptr(h))
}

// shared adds the reference increment of the ref-counted family.
type shared[H ~uintptr] struct {
	owned[H]
	ref func(H)
}

// retain takes one more reference for a new wrapper aliasing the same
// native object.
func (s *shared[H]) retain(op string) (H, error) {
	h, err := s.handle(op)
	if err != nil {
		return 0, err
	}
	s.ref(h)
	return h, nil
}

// leak is the argument handed to the GC cleanup of an unreleased wrapper.
type leak struct {
	rt   *Runtime
	kind kind
	raw  uintptr
}

// track registers a freshly built wrapper. w must be the heap object that
// embeds o; once w becomes unreachable without a release the leak is
// reported. The native reference is not dropped from the cleanup goroutine
// because object graphs are single-threaded.
func track[T any, H ~uintptr](w *T, o *owned[H]) *T {
	o.rt.live[o.kind].Add(1)
	o.cleanup = runtime.AddCleanup(w, reportLeak, leak{rt: o.rt, kind: o.kind, raw: uintptr(o.raw)})
	Logger().Debug("rive: adopted handle", "kind", o.kind, "handle", uintptr(o.raw))
	return w
}

func reportLeak(l leak) {
	l.rt.leaked[l.kind].Add(1)
	Logger().Warn("rive: handle garbage collected without release", "kind", l.kind, "handle", l.raw)
	errors.ReportLeak("rive.track", l.kind.String(), l.raw)
}

// adopt validates the out value of a handle-producing call. A null handle
// with an OK status is a provider contract violation and becomes the NULL
// error.
func adopt[H ~uintptr](op string, st abi.Status, raw H) (H, error) {
	if err := check(op, st); err != nil {
		return 0, err
	}
	if raw == 0 {
		Logger().Warn("rive: provider returned a null handle with ok status", "op", op)
		errors.ReportContract("rive."+op, "", "ok status with null handle")
		return 0, nullError(op)
	}
	return raw, nil
}

// scope is implemented by wrappers that borrowed accessors depend on.
type scope interface {
	alive() bool
}

// borrowed is a non-owning accessor valid while its producing wrapper is.
type borrowed[H ~uintptr] struct {
	rt    *Runtime
	raw   H
	owner scope
}

func (b borrowed[H]) valid() bool {
	return b.raw != 0 && b.owner != nil && b.owner.alive()
}

func (b borrowed[H]) handle(op string) (H, error) {
	if !b.valid() {
		return 0, nullError(op)
	}
	return b.raw, nil
}

func newShared[H ~uintptr](rt *Runtime, k kind, raw H, ref, unref func(H)) shared[H] {
	return shared[H]{owned: newOwned(rt, k, raw, unref), ref: ref}
}

func newOwned[H ~uintptr](rt *Runtime, k kind, raw H, drop func(H)) owned[H] {
	return owned[H]{rt: rt, raw: raw, kind: k, drop: drop}
}

func borrow[H ~uintptr](rt *Runtime, raw H, owner scope) borrowed[H] {
	return borrowed[H]{rt: rt, raw: raw, owner: owner}
}

// noFunctions stands in for the table of zero-value wrappers so method
// values can be formed before the liveness check.
var noFunctions abi.Functions

func (b borrowed[H]) fns() *abi.Functions {
	if b.rt == nil {
		return &noFunctions
	}
	return b.rt.fns
}
