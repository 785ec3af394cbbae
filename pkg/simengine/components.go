package simengine

import "github.com/go-drift/rive/pkg/abi"

// componentRef is the payload of a borrowed component handle. Node, bone,
// root bone and transform-component handles to one component are the same
// handle, as in the native runtime where all four are casts of one pointer.
type componentRef struct {
	ab *artboardObj
	c  *component
}

type textRunRef struct {
	ab  *artboardObj
	run *textRun
}

func (e *Engine) component(op string, h uintptr) (*componentRef, bool) {
	return object[*componentRef](e, op, h, KindComponent)
}

func (e *Engine) getProp(op string, h uintptr, prop string) float32 {
	r, ok := e.component(op, h)
	if !ok {
		return 0
	}
	return r.c.get(prop)
}

func (e *Engine) setProp(op string, h uintptr, prop string, v float32) {
	r, ok := e.component(op, h)
	if !ok {
		return
	}
	r.c.set(prop, v)
	r.ab.dirty = true
}

func (e *Engine) transformComponentScaleX(c abi.TransformComponent) float32 {
	return e.getProp("transform_component_scale_x", uintptr(c), "scale_x")
}

func (e *Engine) transformComponentSetScaleX(c abi.TransformComponent, v float32) {
	e.setProp("transform_component_set_scale_x", uintptr(c), "scale_x", v)
}

func (e *Engine) transformComponentScaleY(c abi.TransformComponent) float32 {
	return e.getProp("transform_component_scale_y", uintptr(c), "scale_y")
}

func (e *Engine) transformComponentSetScaleY(c abi.TransformComponent, v float32) {
	e.setProp("transform_component_set_scale_y", uintptr(c), "scale_y", v)
}

func (e *Engine) transformComponentRotation(c abi.TransformComponent) float32 {
	return e.getProp("transform_component_rotation", uintptr(c), "rotation")
}

func (e *Engine) transformComponentSetRotation(c abi.TransformComponent, v float32) {
	e.setProp("transform_component_set_rotation", uintptr(c), "rotation", v)
}

func (e *Engine) transformComponentWorldTransform(c abi.TransformComponent, out *abi.Mat2D) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	r, ok := e.component("transform_component_world_transform", uintptr(c))
	if !ok {
		return abi.StatusNull
	}
	*out = r.c.world()
	return abi.StatusOK
}

func (e *Engine) transformComponentParentWorldTransform(c abi.TransformComponent, out *abi.Mat2D) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	r, ok := e.component("transform_component_parent_world_transform", uintptr(c))
	if !ok {
		return abi.StatusNull
	}
	*out = r.c.parentWorld()
	return abi.StatusOK
}

func (e *Engine) nodeX(n abi.Node) float32 { return e.getProp("node_x", uintptr(n), "x") }
func (e *Engine) nodeY(n abi.Node) float32 { return e.getProp("node_y", uintptr(n), "y") }

func (e *Engine) nodeSetX(n abi.Node, v float32) { e.setProp("node_set_x", uintptr(n), "x", v) }
func (e *Engine) nodeSetY(n abi.Node, v float32) { e.setProp("node_set_y", uintptr(n), "y", v) }

func (e *Engine) boneLength(b abi.Bone) float32 { return e.getProp("bone_length", uintptr(b), "length") }

func (e *Engine) boneSetLength(b abi.Bone, v float32) {
	e.setProp("bone_set_length", uintptr(b), "length", v)
}

func (e *Engine) rootBoneX(b abi.RootBone) float32 { return e.getProp("root_bone_x", uintptr(b), "x") }
func (e *Engine) rootBoneY(b abi.RootBone) float32 { return e.getProp("root_bone_y", uintptr(b), "y") }

func (e *Engine) rootBoneSetX(b abi.RootBone, v float32) {
	e.setProp("root_bone_set_x", uintptr(b), "x", v)
}

func (e *Engine) rootBoneSetY(b abi.RootBone, v float32) {
	e.setProp("root_bone_set_y", uintptr(b), "y", v)
}

func (e *Engine) textRun(op string, r abi.TextValueRun) (*textRunRef, bool) {
	return object[*textRunRef](e, op, uintptr(r), KindTextRun)
}

func (e *Engine) textValueRunName(r abi.TextValueRun) abi.StrView {
	ref, ok := e.textRun("text_value_run_name", r)
	if !ok {
		return abi.StrView{}
	}
	return str(ref.run.name)
}

func (e *Engine) textValueRunText(r abi.TextValueRun) abi.StrView {
	ref, ok := e.textRun("text_value_run_text", r)
	if !ok {
		return abi.StrView{}
	}
	return str(ref.run.text)
}

func (e *Engine) textValueRunSetText(r abi.TextValueRun, t abi.StrView) abi.Status {
	ref, ok := e.textRun("text_value_run_set_text", r)
	if !ok {
		return abi.StatusNull
	}
	ref.run.text = text(t)
	ref.ab.dirty = true
	return abi.StatusOK
}
