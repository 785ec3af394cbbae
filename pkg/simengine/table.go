package simengine

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/go-drift/rive/pkg/errors"
)

// Kind tags the objects held in the handle table.
type Kind uint8

const (
	KindFactory Kind = iota + 1
	KindFile
	KindArtboard
	KindBindableArtboard
	KindViewModel
	KindViewModelInstance
	KindComponent
	KindTextRun
	KindFlattenedPath
	KindRenderer
	KindLinearAnimation
	KindLinearAnimationInstance
	KindStateMachine
	KindStateMachineInstance
	KindInput
	KindFileAsset
	KindAudioSource
	KindFont
	KindRenderImage
)

var kindNames = map[Kind]string{
	KindFactory:                 "factory",
	KindFile:                    "file",
	KindArtboard:                "artboard",
	KindBindableArtboard:        "bindable_artboard",
	KindViewModel:               "view_model",
	KindViewModelInstance:       "view_model_instance",
	KindComponent:               "component",
	KindTextRun:                 "text_run",
	KindFlattenedPath:           "flattened_path",
	KindRenderer:                "renderer",
	KindLinearAnimation:         "linear_animation",
	KindLinearAnimationInstance: "linear_animation_instance",
	KindStateMachine:            "state_machine",
	KindStateMachineInstance:    "state_machine_instance",
	KindInput:                   "input",
	KindFileAsset:               "file_asset",
	KindAudioSource:             "audio_source",
	KindFont:                    "font",
	KindRenderImage:             "render_image",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Violation is a misuse of the handle table observed by the engine.
type Violation struct {
	Op     string
	Handle uintptr
	Want   Kind
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s handle %#x: %s", v.Op, v.Want, v.Handle, v.Reason)
}

// Stats is a snapshot of the ownership traffic seen so far.
type Stats struct {
	// Live counts owning handles still in the table, per kind. Borrowed
	// accessors are not counted.
	Live map[Kind]int
	// Refs, Unrefs and Deletes count the corresponding boundary calls.
	Refs, Unrefs, Deletes int64
	// DefaultDecodes counts assets decoded by the engine because no loader
	// handled them.
	DefaultDecodes int64
	Violations     []Violation
}

// LiveTotal sums Live.
func (s Stats) LiveTotal() int {
	n := 0
	for _, c := range s.Live {
		n += c
	}
	return n
}

type entry struct {
	kind  Kind
	obj   any
	owner uintptr

	mu       sync.Mutex
	refs     int32
	children []uintptr
	byKey    map[any]uintptr
}

// table maps handles to objects. Handles are never reused within one
// engine, so a stale handle is always detected.
type table struct {
	next     atomic.Uintptr
	entries  *xsync.MapOf[uintptr, *entry]
	refs     atomic.Int64
	unrefs   atomic.Int64
	deletes  atomic.Int64
	decodes  atomic.Int64
	mu       sync.Mutex
	observed []Violation
}

const handleBase = 0x10000

func newTable() *table {
	return &table{entries: xsync.NewMapOf[uintptr, *entry]()}
}

// add registers an owning object holding one reference.
func (t *table) add(k Kind, obj any) uintptr {
	h := handleBase + t.next.Add(1)*16
	t.entries.Store(h, &entry{kind: k, obj: obj, refs: 1})
	return h
}

// child returns the borrowed handle for obj under owner, creating it on
// first use. The same key always yields the same handle while the owner
// lives.
func (t *table) child(owner uintptr, key any, k Kind, obj any) uintptr {
	parent, ok := t.entries.Load(owner)
	if !ok {
		return 0
	}
	parent.mu.Lock()
	defer parent.mu.Unlock()
	if h, ok := parent.byKey[key]; ok {
		return h
	}
	h := handleBase + t.next.Add(1)*16
	t.entries.Store(h, &entry{kind: k, obj: obj, owner: owner})
	if parent.byKey == nil {
		parent.byKey = make(map[any]uintptr)
	}
	parent.byKey[key] = h
	parent.children = append(parent.children, h)
	return h
}

// lookup resolves h. Null yields false without a violation; anything else
// that does not resolve to a live object of kind k is recorded.
func (t *table) lookup(op string, h uintptr, k Kind) (*entry, bool) {
	if h == 0 {
		return nil, false
	}
	e, ok := t.entries.Load(h)
	if !ok {
		t.violate(op, h, k, "unknown or freed handle")
		return nil, false
	}
	if e.kind != k {
		t.violate(op, h, k, "handle is a "+e.kind.String())
		return nil, false
	}
	return e, true
}

// peek resolves h without recording a violation.
func (t *table) peek(h uintptr, k Kind) (*entry, bool) {
	e, ok := t.entries.Load(h)
	if !ok || e.kind != k {
		return nil, false
	}
	return e, true
}

func (t *table) ref(op string, h uintptr, k Kind) {
	e, ok := t.lookup(op, h, k)
	if !ok {
		return
	}
	t.refs.Add(1)
	e.mu.Lock()
	e.refs++
	e.mu.Unlock()
}

func (t *table) unref(op string, h uintptr, k Kind) {
	e, ok := t.lookup(op, h, k)
	if !ok {
		return
	}
	t.unrefs.Add(1)
	e.mu.Lock()
	e.refs--
	last := e.refs <= 0
	e.mu.Unlock()
	if last {
		t.remove(h)
	}
}

// hold and drop adjust the count of h for the engine's own use; they are
// not part of the observed traffic.
func (t *table) hold(h uintptr) {
	if e, ok := t.entries.Load(h); ok {
		e.mu.Lock()
		e.refs++
		e.mu.Unlock()
	}
}

func (t *table) drop(h uintptr) {
	e, ok := t.entries.Load(h)
	if !ok {
		return
	}
	e.mu.Lock()
	e.refs--
	last := e.refs <= 0
	e.mu.Unlock()
	if last {
		t.remove(h)
	}
}

func (t *table) del(op string, h uintptr, k Kind) {
	if _, ok := t.lookup(op, h, k); !ok {
		return
	}
	t.deletes.Add(1)
	t.remove(h)
}

// remove drops h and, recursively, every borrowed handle it produced.
func (t *table) remove(h uintptr) {
	e, ok := t.entries.LoadAndDelete(h)
	if !ok {
		return
	}
	e.mu.Lock()
	children := e.children
	e.children = nil
	e.byKey = nil
	e.mu.Unlock()
	for _, c := range children {
		t.remove(c)
	}
}

func (t *table) violate(op string, h uintptr, k Kind, reason string) {
	v := Violation{Op: op, Handle: h, Want: k, Reason: reason}
	t.mu.Lock()
	t.observed = append(t.observed, v)
	t.mu.Unlock()
	errors.ReportContract("simengine."+op, k.String(), "handle %#x: %s", h, reason)
}

func (t *table) stats() Stats {
	s := Stats{
		Live:           make(map[Kind]int),
		Refs:           t.refs.Load(),
		Unrefs:         t.unrefs.Load(),
		Deletes:        t.deletes.Load(),
		DefaultDecodes: t.decodes.Load(),
	}
	t.entries.Range(func(_ uintptr, e *entry) bool {
		if e.owner == 0 {
			s.Live[e.kind]++
		}
		return true
	})
	t.mu.Lock()
	s.Violations = append([]Violation(nil), t.observed...)
	t.mu.Unlock()
	return s
}
