package simengine

import "github.com/go-drift/rive/pkg/abi"

type flatVertex struct {
	pt      abi.Vec2
	cubic   bool
	in, out abi.Vec2
}

type flatPath struct {
	vertices []flatVertex
}

// flatten copies the vertices of p. With toParent the path's own transform
// is applied, moving the points into its parent's space.
func flatten(p *pathShape, toParent bool) *flatPath {
	m := abi.Identity
	if toParent && p.node != nil {
		m = p.node.local()
	}
	fp := &flatPath{vertices: make([]flatVertex, 0, len(p.doc.Vertices))}
	for _, v := range p.doc.Vertices {
		fv := flatVertex{pt: mapPoint(m, abi.Vec2{X: v.X, Y: v.Y})}
		if v.In != nil && v.Out != nil {
			fv.cubic = true
			fv.in = mapPoint(m, abi.Vec2{X: v.In.X, Y: v.In.Y})
			fv.out = mapPoint(m, abi.Vec2{X: v.Out.X, Y: v.Out.Y})
		}
		fp.vertices = append(fp.vertices, fv)
	}
	return fp
}

func (e *Engine) artboardFlattenPath(a abi.Artboard, index uintptr, toParent bool, out *abi.FlattenedPath) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_flatten_path", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.paths)) {
		return abi.StatusOutOfRange
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.FlattenedPath(e.tab.add(KindFlattenedPath, flatten(ab.paths[index], toParent)))
	return abi.StatusOK
}

func (e *Engine) flattenedPathDelete(p abi.FlattenedPath) {
	e.tab.del("flattened_path_delete", uintptr(p), KindFlattenedPath)
}

func (e *Engine) flatPath(op string, p abi.FlattenedPath) (*flatPath, bool) {
	return object[*flatPath](e, op, uintptr(p), KindFlattenedPath)
}

func (e *Engine) flattenedPathLength(p abi.FlattenedPath) uintptr {
	fp, ok := e.flatPath("flattened_path_length", p)
	if !ok {
		return 0
	}
	return uintptr(len(fp.vertices))
}

func (e *Engine) flattenedPathIsCubic(p abi.FlattenedPath, index uintptr, out *bool) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	fp, ok := e.flatPath("flattened_path_is_cubic", p)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(fp.vertices)) {
		return abi.StatusOutOfRange
	}
	*out = fp.vertices[index].cubic
	return abi.StatusOK
}

// coord reads one coordinate of vertex index. Control points exist only on
// cubic vertices.
func (e *Engine) coord(op string, p abi.FlattenedPath, index uintptr, out *float32, control bool, pick func(*flatVertex) float32) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	fp, ok := e.flatPath(op, p)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(fp.vertices)) {
		return abi.StatusOutOfRange
	}
	v := &fp.vertices[index]
	if control && !v.cubic {
		return abi.StatusInvalidArgument
	}
	*out = pick(v)
	return abi.StatusOK
}

func (e *Engine) flattenedPathX(p abi.FlattenedPath, i uintptr, out *float32) abi.Status {
	return e.coord("flattened_path_x", p, i, out, false, func(v *flatVertex) float32 { return v.pt.X })
}

func (e *Engine) flattenedPathY(p abi.FlattenedPath, i uintptr, out *float32) abi.Status {
	return e.coord("flattened_path_y", p, i, out, false, func(v *flatVertex) float32 { return v.pt.Y })
}

func (e *Engine) flattenedPathInX(p abi.FlattenedPath, i uintptr, out *float32) abi.Status {
	return e.coord("flattened_path_in_x", p, i, out, true, func(v *flatVertex) float32 { return v.in.X })
}

func (e *Engine) flattenedPathInY(p abi.FlattenedPath, i uintptr, out *float32) abi.Status {
	return e.coord("flattened_path_in_y", p, i, out, true, func(v *flatVertex) float32 { return v.in.Y })
}

func (e *Engine) flattenedPathOutX(p abi.FlattenedPath, i uintptr, out *float32) abi.Status {
	return e.coord("flattened_path_out_x", p, i, out, true, func(v *flatVertex) float32 { return v.out.X })
}

func (e *Engine) flattenedPathOutY(p abi.FlattenedPath, i uintptr, out *float32) abi.Status {
	return e.coord("flattened_path_out_y", p, i, out, true, func(v *flatVertex) float32 { return v.out.Y })
}
