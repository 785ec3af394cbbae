package rive

import (
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
)

// TransformComponent accesses a transform component of an artboard. It does
// not keep the artboard alive.
type TransformComponent struct {
	borrowed[abi.TransformComponent]
}

// Node accesses a node of an artboard.
type Node struct {
	borrowed[abi.Node]
}

// Bone accesses a bone of an artboard.
type Bone struct {
	borrowed[abi.Bone]
}

// RootBone accesses a root bone of an artboard.
type RootBone struct {
	borrowed[abi.RootBone]
}

// TextValueRun accesses a text value run of an artboard.
type TextValueRun struct {
	borrowed[abi.TextValueRun]
}

func lookup[H ~uintptr](a *Artboard, op, name string, get func(abi.Artboard, abi.StrView, *H) abi.Status) (borrowed[H], error) {
	h, err := a.handle(op)
	if err != nil {
		return borrowed[H]{}, err
	}
	var out H
	st := get(h, abi.Str(name), &out)
	runtime.KeepAlive(name)
	raw, err := adopt(op, st, out)
	if err != nil {
		return borrowed[H]{}, err
	}
	return borrow(a.h.rt, raw, a), nil
}

// TransformComponent returns the transform component called name.
func (a *Artboard) TransformComponent(name string) (TransformComponent, error) {
	b, err := lookup(a, "Artboard.TransformComponent", name, a.fns().ArtboardTransformComponentByName)
	return TransformComponent{b}, err
}

// Node returns the node called name.
func (a *Artboard) Node(name string) (Node, error) {
	b, err := lookup(a, "Artboard.Node", name, a.fns().ArtboardNodeByName)
	return Node{b}, err
}

// Bone returns the bone called name.
func (a *Artboard) Bone(name string) (Bone, error) {
	b, err := lookup(a, "Artboard.Bone", name, a.fns().ArtboardBoneByName)
	return Bone{b}, err
}

// RootBone returns the root bone called name.
func (a *Artboard) RootBone(name string) (RootBone, error) {
	b, err := lookup(a, "Artboard.RootBone", name, a.fns().ArtboardRootBoneByName)
	return RootBone{b}, err
}

// TextValueRun returns the text value run called name.
func (a *Artboard) TextValueRun(name string) (TextValueRun, error) {
	b, err := lookup(a, "Artboard.TextValueRun", name, a.fns().ArtboardTextValueRunByName)
	return TextValueRun{b}, err
}

// TextValueRunAt returns text value run i.
func (a *Artboard) TextValueRunAt(i int) (TextValueRun, error) {
	const op = "Artboard.TextValueRunAt"
	h, err := a.handle(op)
	if err != nil {
		return TextValueRun{}, err
	}
	if i < 0 {
		return TextValueRun{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out abi.TextValueRun
	raw, err := adopt(op, a.h.rt.fns.ArtboardTextValueRunByIndex(h, uintptr(i), &out), out)
	if err != nil {
		return TextValueRun{}, err
	}
	return TextValueRun{borrow(a.h.rt, raw, a)}, nil
}

func getF[H ~uintptr](b borrowed[H], get func(H) float32) float32 {
	if !b.valid() {
		return 0
	}
	return get(b.raw)
}

func setF[H ~uintptr](b borrowed[H], set func(H, float32), v float32) {
	if b.valid() {
		set(b.raw, v)
	}
}

func (c TransformComponent) ScaleX() float32 { return getF(c.borrowed, c.fns().TransformComponentScaleX) }
func (c TransformComponent) ScaleY() float32 { return getF(c.borrowed, c.fns().TransformComponentScaleY) }

// Rotation returns the rotation in radians.
func (c TransformComponent) Rotation() float32 {
	return getF(c.borrowed, c.fns().TransformComponentRotation)
}

func (c TransformComponent) SetScaleX(v float32) { setF(c.borrowed, c.fns().TransformComponentSetScaleX, v) }
func (c TransformComponent) SetScaleY(v float32) { setF(c.borrowed, c.fns().TransformComponentSetScaleY, v) }
func (c TransformComponent) SetRotation(v float32) {
	setF(c.borrowed, c.fns().TransformComponentSetRotation, v)
}

// WorldTransform returns the component's transform in artboard space.
func (c TransformComponent) WorldTransform() (Mat2D, error) {
	return c.matrix("TransformComponent.WorldTransform", c.fns().TransformComponentWorldTransform)
}

// ParentWorldTransform returns the parent's transform in artboard space.
func (c TransformComponent) ParentWorldTransform() (Mat2D, error) {
	return c.matrix("TransformComponent.ParentWorldTransform", c.fns().TransformComponentParentWorldTransform)
}

func (c TransformComponent) matrix(op string, get func(abi.TransformComponent, *abi.Mat2D) abi.Status) (Mat2D, error) {
	h, err := c.handle(op)
	if err != nil {
		return Mat2D{}, err
	}
	var m Mat2D
	if err := check(op, get(h, &m)); err != nil {
		return Mat2D{}, err
	}
	return m, nil
}

func (n Node) X() float32     { return getF(n.borrowed, n.fns().NodeX) }
func (n Node) Y() float32     { return getF(n.borrowed, n.fns().NodeY) }
func (n Node) SetX(v float32) { setF(n.borrowed, n.fns().NodeSetX, v) }
func (n Node) SetY(v float32) { setF(n.borrowed, n.fns().NodeSetY, v) }

func (b Bone) Length() float32     { return getF(b.borrowed, b.fns().BoneLength) }
func (b Bone) SetLength(v float32) { setF(b.borrowed, b.fns().BoneSetLength, v) }

func (b RootBone) X() float32     { return getF(b.borrowed, b.fns().RootBoneX) }
func (b RootBone) Y() float32     { return getF(b.borrowed, b.fns().RootBoneY) }
func (b RootBone) SetX(v float32) { setF(b.borrowed, b.fns().RootBoneSetX, v) }
func (b RootBone) SetY(v float32) { setF(b.borrowed, b.fns().RootBoneSetY, v) }

// Name returns the run name.
func (r TextValueRun) Name() string {
	if !r.valid() {
		return ""
	}
	return copyString(r.rt.fns.TextValueRunName(r.raw))
}

// Text returns the run text.
func (r TextValueRun) Text() string {
	if !r.valid() {
		return ""
	}
	return copyString(r.rt.fns.TextValueRunText(r.raw))
}

// SetText replaces the run text.
func (r TextValueRun) SetText(text string) error {
	const op = "TextValueRun.SetText"
	h, err := r.handle(op)
	if err != nil {
		return err
	}
	st := r.rt.fns.TextValueRunSetText(h, abi.Str(text))
	runtime.KeepAlive(text)
	return check(op, st)
}
