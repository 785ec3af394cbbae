package simengine

import (
	"sync/atomic"

	"github.com/go-drift/rive/pkg/abi"
)

// Engine is one simulated runtime. All handles it produces live in its own
// table; handles from one engine are meaningless to another.
type Engine struct {
	tab         *table
	nullOutputs atomic.Bool
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{tab: newTable()}
}

// Stats returns a snapshot of the handle table.
func (e *Engine) Stats() Stats {
	return e.tab.stats()
}

// NullOutputs makes every handle-producing call report OK while leaving its
// out value null, the contract violation callers must detect.
func (e *Engine) NullOutputs(on bool) {
	e.nullOutputs.Store(on)
}

// suppress reports whether producing calls must withhold their result.
func (e *Engine) suppress() bool {
	return e.nullOutputs.Load()
}

// object resolves h to its payload.
func object[T any](e *Engine, op string, h uintptr, k Kind) (T, bool) {
	var zero T
	ent, ok := e.tab.lookup(op, h, k)
	if !ok {
		return zero, false
	}
	v, ok := ent.obj.(T)
	return v, ok
}

// str views s. The view stays valid while s is referenced by the engine.
func str(s string) abi.StrView {
	return abi.Str(s)
}

// text copies a borrowed view.
func text(v abi.StrView) string {
	return string(v.Unsafe())
}

// invalidBytes mirrors the null-pointer-with-length check of every entry
// point that takes a byte view.
func invalidBytes(b abi.BytesView) bool {
	return b.Ptr == nil && b.Len > 0
}

func (e *Engine) abiVersion() uint32 { return abi.Version }

type factoryObj struct {
	backend string
}

func (e *Engine) factoryDefault() abi.Factory {
	return abi.Factory(e.tab.add(KindFactory, &factoryObj{backend: "raster"}))
}

// The GPU factories need a backend this engine does not have.
func (e *Engine) factoryWebGL2() abi.Factory { return 0 }
func (e *Engine) factoryWebGPU() abi.Factory { return 0 }

func (e *Engine) factoryRef(f abi.Factory) {
	e.tab.ref("factory_ref", uintptr(f), KindFactory)
}

func (e *Engine) factoryUnref(f abi.Factory) {
	e.tab.unref("factory_unref", uintptr(f), KindFactory)
}
