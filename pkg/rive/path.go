package rive

import "github.com/go-drift/rive/pkg/abi"

// FlattenedPath is a snapshot of a path as a vertex list. Destroy frees it.
type FlattenedPath struct {
	h owned[abi.FlattenedPath]
}

func newFlattenedPath(rt *Runtime, raw abi.FlattenedPath) *FlattenedPath {
	p := &FlattenedPath{h: newOwned(rt, kindFlattenedPath, raw, rt.fns.FlattenedPathDelete)}
	return track(p, &p.h)
}

func (p *FlattenedPath) handle(op string) (abi.FlattenedPath, error) {
	if p == nil {
		return 0, nullError(op)
	}
	return p.h.handle(op)
}

// Destroy frees the snapshot. Further calls are no-ops.
func (p *FlattenedPath) Destroy() {
	if p != nil {
		p.h.release()
	}
}

// Len returns the number of vertices.
func (p *FlattenedPath) Len() int {
	h, err := p.handle("")
	if err != nil {
		return 0
	}
	return int(p.h.rt.fns.FlattenedPathLength(h))
}

// IsCubic reports whether vertex i carries cubic control points.
func (p *FlattenedPath) IsCubic(i int) (bool, error) {
	const op = "FlattenedPath.IsCubic"
	h, err := p.handle(op)
	if err != nil {
		return false, err
	}
	if i < 0 {
		return false, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out bool
	if err := check(op, p.h.rt.fns.FlattenedPathIsCubic(h, uintptr(i), &out)); err != nil {
		return false, err
	}
	return out, nil
}

func (p *FlattenedPath) coord(op string, i int, get func(abi.FlattenedPath, uintptr, *float32) abi.Status) (float32, error) {
	h, err := p.handle(op)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out float32
	if err := check(op, get(h, uintptr(i), &out)); err != nil {
		return 0, err
	}
	return out, nil
}

func (p *FlattenedPath) fns() *abi.Functions {
	if p == nil || p.h.rt == nil {
		return &noFunctions
	}
	return p.h.rt.fns
}

func (p *FlattenedPath) X(i int) (float32, error) {
	return p.coord("FlattenedPath.X", i, p.fns().FlattenedPathX)
}

func (p *FlattenedPath) Y(i int) (float32, error) {
	return p.coord("FlattenedPath.Y", i, p.fns().FlattenedPathY)
}

// InX returns the incoming control point of a cubic vertex. Non-cubic
// vertices report ErrInvalidArgument.
func (p *FlattenedPath) InX(i int) (float32, error) {
	return p.coord("FlattenedPath.InX", i, p.fns().FlattenedPathInX)
}

func (p *FlattenedPath) InY(i int) (float32, error) {
	return p.coord("FlattenedPath.InY", i, p.fns().FlattenedPathInY)
}

func (p *FlattenedPath) OutX(i int) (float32, error) {
	return p.coord("FlattenedPath.OutX", i, p.fns().FlattenedPathOutX)
}

func (p *FlattenedPath) OutY(i int) (float32, error) {
	return p.coord("FlattenedPath.OutY", i, p.fns().FlattenedPathOutY)
}

// PathPoint is one vertex of a flattened path. The control points are
// only set when Cubic is true.
type PathPoint struct {
	X, Y       float32
	Cubic      bool
	InX, InY   float32
	OutX, OutY float32
}

// Points copies every vertex.
func (p *FlattenedPath) Points() ([]PathPoint, error) {
	n := p.Len()
	out := make([]PathPoint, n)
	for i := range out {
		pt := &out[i]
		var err error
		if pt.X, err = p.X(i); err != nil {
			return nil, err
		}
		if pt.Y, err = p.Y(i); err != nil {
			return nil, err
		}
		if pt.Cubic, err = p.IsCubic(i); err != nil {
			return nil, err
		}
		if !pt.Cubic {
			continue
		}
		if pt.InX, err = p.InX(i); err != nil {
			return nil, err
		}
		if pt.InY, err = p.InY(i); err != nil {
			return nil, err
		}
		if pt.OutX, err = p.OutX(i); err != nil {
			return nil, err
		}
		if pt.OutY, err = p.OutY(i); err != nil {
			return nil, err
		}
	}
	return out, nil
}
