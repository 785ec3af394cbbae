package simengine

import "github.com/go-drift/rive/pkg/abi"

// multiply returns a*b, applying b first.
func multiply(a, b abi.Mat2D) abi.Mat2D {
	return abi.Mat2D{
		XX: a.XX*b.XX + a.YX*b.XY,
		XY: a.XY*b.XX + a.YY*b.XY,
		YX: a.XX*b.YX + a.YX*b.YY,
		YY: a.XY*b.YX + a.YY*b.YY,
		TX: a.XX*b.TX + a.YX*b.TY + a.TX,
		TY: a.XY*b.TX + a.YY*b.TY + a.TY,
	}
}

func mapPoint(m abi.Mat2D, p abi.Vec2) abi.Vec2 {
	return abi.Vec2{
		X: m.XX*p.X + m.YX*p.Y + m.TX,
		Y: m.XY*p.X + m.YY*p.Y + m.TY,
	}
}

// alignment maps content into frame. Layout fit keeps the content at its
// own size times scaleFactor, pinned to the frame's top-left corner.
func alignment(fit abi.Fit, a abi.Alignment, frame, content abi.AABB, scaleFactor float32) abi.Mat2D {
	if fit == abi.FitLayout {
		return abi.Mat2D{XX: scaleFactor, YY: scaleFactor, TX: frame.MinX, TY: frame.MinY}
	}
	ax, ay := a.Anchor()
	cw, ch := content.Width(), content.Height()
	fw, fh := frame.Width(), frame.Height()

	sx, sy := float32(1), float32(1)
	switch fit {
	case abi.FitFill:
		sx, sy = fw/cw, fh/ch
	case abi.FitContain:
		s := min(fw/cw, fh/ch)
		sx, sy = s, s
	case abi.FitCover:
		s := max(fw/cw, fh/ch)
		sx, sy = s, s
	case abi.FitFitWidth:
		sx, sy = fw/cw, fw/cw
	case abi.FitFitHeight:
		sx, sy = fh/ch, fh/ch
	case abi.FitScaleDown:
		s := min(fw/cw, fh/ch, 1)
		sx, sy = s, s
	}

	toOrigin := abi.Mat2D{
		XX: 1, YY: 1,
		TX: -content.MinX - cw/2 - ax*cw/2,
		TY: -content.MinY - ch/2 - ay*ch/2,
	}
	scale := abi.Mat2D{XX: sx, YY: sy}
	toFrame := abi.Mat2D{
		XX: 1, YY: 1,
		TX: frame.MinX + fw/2 + ax*fw/2,
		TY: frame.MinY + fh/2 + ay*fh/2,
	}
	return multiply(toFrame, multiply(scale, toOrigin))
}

func (e *Engine) computeAlignment(fit abi.Fit, a abi.Alignment, source, destination *abi.AABB, scaleFactor float32, out *abi.Mat2D) abi.Status {
	if source == nil || destination == nil || out == nil {
		return abi.StatusNull
	}
	if !fit.Valid() || !a.Valid() {
		return abi.StatusInvalidArgument
	}
	*out = alignment(fit, a, *destination, *source, scaleFactor)
	return abi.StatusOK
}

func (e *Engine) mapXY(m *abi.Mat2D, p abi.Vec2, out *abi.Vec2) abi.Status {
	if m == nil || out == nil {
		return abi.StatusNull
	}
	*out = mapPoint(*m, p)
	return abi.StatusOK
}
