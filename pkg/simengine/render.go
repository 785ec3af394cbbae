package simengine

import (
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/graphics"
)

// Renderer is a raster canvas artboards draw into through the generic
// renderer entry point.
type Renderer struct {
	e       *Engine
	h       abi.Renderer
	ctx     *gg.Context
	opacity float64
	saved   []float64
}

// NewRenderer registers a width x height canvas with the engine.
func (e *Engine) NewRenderer(width, height int) *Renderer {
	r := &Renderer{e: e, ctx: gg.NewContext(width, height), opacity: 1}
	r.h = abi.Renderer(e.tab.add(KindRenderer, r))
	return r
}

// RendererHandle returns the handle artboard draw calls expect.
func (r *Renderer) RendererHandle() abi.Renderer { return r.h }

// Clear fills the canvas with transparent black.
func (r *Renderer) Clear() { r.ctx.Clear() }

// Save pushes the transform, clip and opacity.
func (r *Renderer) Save() {
	r.ctx.Push()
	r.saved = append(r.saved, r.opacity)
}

// Restore pops what the matching Save pushed.
func (r *Renderer) Restore() {
	r.ctx.Pop()
	if n := len(r.saved); n > 0 {
		r.opacity = r.saved[n-1]
		r.saved = r.saved[:n-1]
	}
}

// Transform concatenates m onto the current transform.
func (r *Renderer) Transform(m abi.Mat2D) { r.ctx.Transform(toMatrix(m)) }

// ModulateOpacity scales the opacity of everything drawn until Restore.
func (r *Renderer) ModulateOpacity(o float32) { r.opacity *= float64(o) }

// Align concatenates the transform placing content inside frame.
func (r *Renderer) Align(fit abi.Fit, a abi.Alignment, frame, content abi.AABB, scaleFactor float32) {
	r.Transform(alignment(fit, a, frame, content, scaleFactor))
}

// ClipRect intersects the clip with the box in current coordinates.
func (r *Renderer) ClipRect(b abi.AABB) {
	r.ctx.ClipRect(float64(b.MinX), float64(b.MinY), float64(b.Width()), float64(b.Height()))
}

// Image returns the canvas.
func (r *Renderer) Image() image.Image { return r.ctx.Image() }

// EncodePNG writes the canvas as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error { return r.ctx.EncodePNG(w) }

// Close unregisters the renderer. Draw calls naming it afterwards are
// contract violations.
func (r *Renderer) Close() error {
	r.e.tab.del("renderer_close", uintptr(r.h), KindRenderer)
	return r.ctx.Close()
}

func toMatrix(m abi.Mat2D) gg.Matrix {
	return gg.Matrix{
		A: float64(m.XX), B: float64(m.YX), C: float64(m.TX),
		D: float64(m.XY), E: float64(m.YY), F: float64(m.TY),
	}
}

func setColor(dc *gg.Context, argb uint32, opacity float64) {
	r, g, b, a := graphics.Color(argb).RGBAF()
	dc.SetRGBA(r, g, b, a*opacity)
}

func (e *Engine) artboardDraw(a abi.Artboard, rh abi.Renderer) abi.Status {
	const op = "artboard_draw"
	ab, ok := e.artboard(op, a)
	if !ok {
		return abi.StatusNull
	}
	r, ok := object[*Renderer](e, op, uintptr(rh), KindRenderer)
	if !ok {
		return abi.StatusNull
	}
	if err := ab.draw(r.ctx, r.opacity); err != nil {
		return abi.StatusRuntimeError
	}
	return abi.StatusOK
}

func (ab *artboardObj) draw(dc *gg.Context, opacity float64) error {
	if bg := ab.def.background; bg != 0 {
		b := ab.bounds()
		setColor(dc, bg, opacity)
		dc.DrawRectangle(float64(b.MinX), float64(b.MinY), float64(b.Width()), float64(b.Height()))
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	for _, p := range ab.paths {
		if err := drawPath(dc, p, opacity*float64(p.node.worldOpacity())); err != nil {
			return err
		}
	}
	for _, im := range ab.images {
		drawImage(dc, ab, im, opacity*float64(im.node.worldOpacity()))
	}
	for _, t := range ab.texts {
		drawText(dc, ab, t, opacity*float64(t.node.worldOpacity()))
	}
	for _, n := range ab.nested {
		if err := n.ab.draw(dc, opacity); err != nil {
			return err
		}
	}
	return nil
}

func drawPath(dc *gg.Context, p *pathShape, opacity float64) error {
	vs := p.doc.Vertices
	if len(vs) < 2 || opacity <= 0 || p.fill == 0 && p.stroke == 0 {
		return nil
	}
	dc.Push()
	defer dc.Pop()
	dc.Transform(toMatrix(p.node.world()))

	dc.ClearPath()
	dc.MoveTo(float64(vs[0].X), float64(vs[0].Y))
	for i := 1; i < len(vs); i++ {
		segment(dc, &vs[i-1], &vs[i])
	}
	if p.doc.Closed {
		segment(dc, &vs[len(vs)-1], &vs[0])
		dc.ClosePath()
	}
	if p.fill != 0 {
		setColor(dc, p.fill, opacity)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
	}
	if p.stroke != 0 {
		w := p.doc.Width
		if w == 0 {
			w = 1
		}
		setColor(dc, p.stroke, opacity)
		dc.SetLineWidth(float64(w))
		if err := dc.StrokePreserve(); err != nil {
			return err
		}
	}
	dc.ClearPath()
	return nil
}

// segment adds the edge from a to b, curved when either end has a handle.
func segment(dc *gg.Context, a, b *VertexDoc) {
	if a.Out == nil && b.In == nil {
		dc.LineTo(float64(b.X), float64(b.Y))
		return
	}
	c1x, c1y := a.X, a.Y
	if a.Out != nil {
		c1x, c1y = a.Out.X, a.Out.Y
	}
	c2x, c2y := b.X, b.Y
	if b.In != nil {
		c2x, c2y = b.In.X, b.In.Y
	}
	dc.CubicTo(float64(c1x), float64(c1y), float64(c2x), float64(c2y), float64(b.X), float64(b.Y))
}

// drawImage places the image's top-left corner at its node's origin.
func drawImage(dc *gg.Context, ab *artboardObj, im *imageShape, opacity float64) {
	a := ab.file.asset(im.doc.Asset)
	if a == nil || a.image == nil || opacity <= 0 {
		return
	}
	dc.Push()
	defer dc.Pop()
	dc.Transform(toMatrix(im.node.world()))
	dc.DrawImageEx(a.image.buf, gg.DrawImageOptions{Opacity: min(opacity, 1), BlendMode: gg.BlendNormal})
}

// drawText draws a run on its node's baseline. Runs whose font asset has
// nothing loaded are skipped.
func drawText(dc *gg.Context, ab *artboardObj, t *textRun, opacity float64) {
	a := ab.file.asset(t.font)
	if a == nil || a.font == nil || t.text == "" || opacity <= 0 {
		return
	}
	dc.Push()
	defer dc.Pop()
	dc.Transform(toMatrix(t.node.world()))
	dc.SetFont(a.font.source.Face(float64(t.size)))
	setColor(dc, t.color, opacity)
	dc.DrawString(t.text, 0, 0)
}

// The engine has no GPU backend: constructors report UNSUPPORTED and every
// other GPU entry point sees only null handles.
func (e *Engine) webGL2RendererNew(_, _ int32, out *abi.WebGL2Renderer) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	return abi.StatusUnsupported
}

func (e *Engine) webGPURendererNew(_, _ int32, out *abi.WebGPURenderer) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	return abi.StatusUnsupported
}

func gpuDelete[H ~uintptr](H)                                              {}
func gpuOp[H ~uintptr](H) abi.Status                                       { return abi.StatusNull }
func gpuResize[H ~uintptr](H, int32, int32) abi.Status                     { return abi.StatusNull }
func gpuTransform[H ~uintptr](H, *abi.Mat2D) abi.Status                    { return abi.StatusNull }
func gpuOpacity[H ~uintptr](H, float32) abi.Status                         { return abi.StatusNull }
func gpuClip[H ~uintptr](H, float32, float32, float32, float32) abi.Status { return abi.StatusNull }

func gpuAlign[H ~uintptr](H, abi.Fit, abi.Alignment, *abi.AABB, *abi.AABB, float32) abi.Status {
	return abi.StatusNull
}

func (e *Engine) artboardDrawWebGL2(a abi.Artboard, _ abi.WebGL2Renderer) abi.Status {
	return e.artboardDrawGPU("artboard_draw_webgl2", a)
}

func (e *Engine) artboardDrawWebGPU(a abi.Artboard, _ abi.WebGPURenderer) abi.Status {
	return e.artboardDrawGPU("artboard_draw_webgpu", a)
}

// artboardDrawGPU still checks the artboard so stale handles are reported.
func (e *Engine) artboardDrawGPU(op string, a abi.Artboard) abi.Status {
	e.artboard(op, a)
	return abi.StatusNull
}
