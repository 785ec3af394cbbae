package rive

import "github.com/go-drift/rive/pkg/abi"

// rendererOps is the per-backend slice of the function table.
type rendererOps[H ~uintptr] struct {
	clear, flush, save, restore, restoreClip func(H) abi.Status
	resize                                   func(H, int32, int32) abi.Status
	transform                                func(H, *abi.Mat2D) abi.Status
	opacity                                  func(H, float32) abi.Status
	align                                    func(H, abi.Fit, abi.Alignment, *abi.AABB, *abi.AABB, float32) abi.Status
	saveClip                                 func(H, float32, float32, float32, float32) abi.Status
}

// gpuRenderer carries the operations both GPU renderer families share.
// Every method checks the receiver before reading a field, so a nil
// renderer reports ErrNull like the other wrappers.
type gpuRenderer[H ~uintptr] struct {
	h    owned[H]
	name string
	ops  rendererOps[H]
}

// WebGL2Renderer draws into the current WebGL2 context.
type WebGL2Renderer = gpuRenderer[abi.WebGL2Renderer]

// WebGPURenderer draws into the current WebGPU surface.
type WebGPURenderer = gpuRenderer[abi.WebGPURenderer]

func (r *gpuRenderer[H]) handle(op string) (H, error) {
	if r == nil {
		return 0, nullError(op)
	}
	return r.h.handle(op)
}

func (r *gpuRenderer[H]) do(op string, call func(ops *rendererOps[H], h H) abi.Status) error {
	if r == nil {
		return nullError("Renderer." + op)
	}
	op = r.name + "." + op
	h, err := r.h.handle(op)
	if err != nil {
		return err
	}
	return check(op, call(&r.ops, h))
}

// Destroy frees the renderer. Further calls are no-ops.
func (r *gpuRenderer[H]) Destroy() {
	if r != nil {
		r.h.release()
	}
}

func (r *gpuRenderer[H]) Clear() error {
	return r.do("Clear", func(o *rendererOps[H], h H) abi.Status { return o.clear(h) })
}

func (r *gpuRenderer[H]) Flush() error {
	return r.do("Flush", func(o *rendererOps[H], h H) abi.Status { return o.flush(h) })
}

func (r *gpuRenderer[H]) Save() error {
	return r.do("Save", func(o *rendererOps[H], h H) abi.Status { return o.save(h) })
}

func (r *gpuRenderer[H]) Restore() error {
	return r.do("Restore", func(o *rendererOps[H], h H) abi.Status { return o.restore(h) })
}

// Resize changes the drawing surface size in pixels.
func (r *gpuRenderer[H]) Resize(width, height int32) error {
	return r.do("Resize", func(o *rendererOps[H], h H) abi.Status { return o.resize(h, width, height) })
}

// Transform concatenates m onto the current transform.
func (r *gpuRenderer[H]) Transform(m Mat2D) error {
	return r.do("Transform", func(o *rendererOps[H], h H) abi.Status { return o.transform(h, &m) })
}

// ModulateOpacity multiplies the current opacity by opacity.
func (r *gpuRenderer[H]) ModulateOpacity(opacity float32) error {
	return r.do("ModulateOpacity", func(o *rendererOps[H], h H) abi.Status { return o.opacity(h, opacity) })
}

// Align concatenates the transform that places content inside frame.
func (r *gpuRenderer[H]) Align(fit Fit, alignment Alignment, frame, content AABB, scaleFactor float32) error {
	return r.do("Align", func(o *rendererOps[H], h H) abi.Status {
		return o.align(h, fit, alignment, &frame, &content, scaleFactor)
	})
}

// SaveClipRect saves the state and clips to the rectangle.
func (r *gpuRenderer[H]) SaveClipRect(left, top, right, bottom float32) error {
	return r.do("SaveClipRect", func(o *rendererOps[H], h H) abi.Status { return o.saveClip(h, left, top, right, bottom) })
}

// RestoreClipRect undoes the matching SaveClipRect.
func (r *gpuRenderer[H]) RestoreClipRect() error {
	return r.do("RestoreClipRect", func(o *rendererOps[H], h H) abi.Status { return o.restoreClip(h) })
}

// NewWebGL2Renderer creates a WebGL2 renderer of the given size.
func (rt *Runtime) NewWebGL2Renderer(width, height int32) (*WebGL2Renderer, error) {
	const op = "Runtime.NewWebGL2Renderer"
	var out abi.WebGL2Renderer
	raw, err := adopt(op, rt.fns.WebGL2RendererNew(width, height, &out), out)
	if err != nil {
		return nil, err
	}
	f := rt.fns
	r := &WebGL2Renderer{
		h:    newOwned(rt, kindWebGL2Renderer, raw, f.WebGL2RendererDelete),
		name: "WebGL2Renderer",
		ops: rendererOps[abi.WebGL2Renderer]{
			clear:       f.WebGL2RendererClear,
			flush:       f.WebGL2RendererFlush,
			save:        f.WebGL2RendererSave,
			restore:     f.WebGL2RendererRestore,
			restoreClip: f.WebGL2RendererRestoreClipRect,
			resize:      f.WebGL2RendererResize,
			transform:   f.WebGL2RendererTransform,
			opacity:     f.WebGL2RendererModulateOpacity,
			align:       f.WebGL2RendererAlign,
			saveClip:    f.WebGL2RendererSaveClipRect,
		},
	}
	return track(r, &r.h), nil
}

// NewWebGPURenderer creates a WebGPU renderer of the given size.
func (rt *Runtime) NewWebGPURenderer(width, height int32) (*WebGPURenderer, error) {
	const op = "Runtime.NewWebGPURenderer"
	var out abi.WebGPURenderer
	raw, err := adopt(op, rt.fns.WebGPURendererNew(width, height, &out), out)
	if err != nil {
		return nil, err
	}
	f := rt.fns
	r := &WebGPURenderer{
		h:    newOwned(rt, kindWebGPURenderer, raw, f.WebGPURendererDelete),
		name: "WebGPURenderer",
		ops: rendererOps[abi.WebGPURenderer]{
			clear:       f.WebGPURendererClear,
			flush:       f.WebGPURendererFlush,
			save:        f.WebGPURendererSave,
			restore:     f.WebGPURendererRestore,
			restoreClip: f.WebGPURendererRestoreClipRect,
			resize:      f.WebGPURendererResize,
			transform:   f.WebGPURendererTransform,
			opacity:     f.WebGPURendererModulateOpacity,
			align:       f.WebGPURendererAlign,
			saveClip:    f.WebGPURendererSaveClipRect,
		},
	}
	return track(r, &r.h), nil
}
