package rive

import (
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
)

// ViewModelInstance is a property bag addressed by dot-separated paths. It
// is reference counted; nesting or replacing instances shares them rather
// than copying.
//
// Typed accessors never coerce: asking for a number at a string property
// fails the same way as a path that does not exist.
type ViewModelInstance struct {
	h shared[abi.ViewModelInstance]
}

func newViewModelInstance(rt *Runtime, raw abi.ViewModelInstance) *ViewModelInstance {
	v := &ViewModelInstance{h: newShared(rt, kindViewModelInstance, raw, rt.fns.ViewModelInstanceRef, rt.fns.ViewModelInstanceUnref)}
	return track(v, &v.h.owned)
}

func (v *ViewModelInstance) handle(op string) (abi.ViewModelInstance, error) {
	if v == nil {
		return 0, nullError(op)
	}
	return v.h.handle(op)
}

// Clone returns a second wrapper for the same instance.
func (v *ViewModelInstance) Clone() (*ViewModelInstance, error) {
	if v == nil {
		return nil, nullError("ViewModelInstance.Clone")
	}
	raw, err := v.h.retain("ViewModelInstance.Clone")
	if err != nil {
		return nil, err
	}
	return newViewModelInstance(v.h.rt, raw), nil
}

// Release drops this wrapper's reference. Further calls are no-ops.
func (v *ViewModelInstance) Release() {
	if v != nil {
		v.h.release()
	}
}

func (v *ViewModelInstance) PropertyCount() int {
	h, err := v.handle("")
	if err != nil {
		return 0
	}
	return int(v.h.rt.fns.ViewModelInstancePropertyCount(h))
}

// PropertyAt describes property i.
func (v *ViewModelInstance) PropertyAt(i int) (PropertyInfo, error) {
	const op = "ViewModelInstance.PropertyAt"
	h, err := v.handle(op)
	if err != nil {
		return PropertyInfo{}, err
	}
	if i < 0 {
		return PropertyInfo{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var p abi.PropertyInfo
	if err := check(op, v.h.rt.fns.ViewModelInstancePropertyAt(h, uintptr(i), &p)); err != nil {
		return PropertyInfo{}, err
	}
	return decodeProperty(&p), nil
}

// Properties describes every property.
func (v *ViewModelInstance) Properties() ([]PropertyInfo, error) {
	n := v.PropertyCount()
	out := make([]PropertyInfo, 0, n)
	for i := 0; i < n; i++ {
		p, err := v.PropertyAt(i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// call runs fn with the instance handle and a borrowed view of path.
func (v *ViewModelInstance) call(op, path string, fn func(abi.ViewModelInstance, abi.StrView) abi.Status) error {
	h, err := v.handle(op)
	if err != nil {
		return err
	}
	st := fn(h, abi.Str(path))
	runtime.KeepAlive(path)
	return check(op, st)
}

// Number returns the number at path.
func (v *ViewModelInstance) Number(path string) (float32, error) {
	var out float32
	err := v.call("ViewModelInstance.Number", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetNumber(h, p, &out)
	})
	return out, err
}

// SetNumber writes the number at path.
func (v *ViewModelInstance) SetNumber(path string, value float32) error {
	return v.call("ViewModelInstance.SetNumber", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetNumber(h, p, value)
	})
}

// String returns the string at path.
func (v *ViewModelInstance) String(path string) (string, error) {
	var out abi.StrView
	err := v.call("ViewModelInstance.String", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetString(h, p, &out)
	})
	if err != nil {
		return "", err
	}
	return copyString(out), nil
}

// SetString writes the string at path.
func (v *ViewModelInstance) SetString(path, value string) error {
	err := v.call("ViewModelInstance.SetString", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetString(h, p, abi.Str(value))
	})
	runtime.KeepAlive(value)
	return err
}

// Boolean returns the boolean at path.
func (v *ViewModelInstance) Boolean(path string) (bool, error) {
	var out bool
	err := v.call("ViewModelInstance.Boolean", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetBoolean(h, p, &out)
	})
	return out, err
}

// SetBoolean writes the boolean at path.
func (v *ViewModelInstance) SetBoolean(path string, value bool) error {
	return v.call("ViewModelInstance.SetBoolean", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetBoolean(h, p, value)
	})
}

// Color returns the packed 0xAARRGGBB color at path.
func (v *ViewModelInstance) Color(path string) (int32, error) {
	var out int32
	err := v.call("ViewModelInstance.Color", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetColor(h, p, &out)
	})
	return out, err
}

// SetColor writes a packed 0xAARRGGBB color at path.
func (v *ViewModelInstance) SetColor(path string, argb int32) error {
	return v.call("ViewModelInstance.SetColor", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetColor(h, p, argb)
	})
}

// Enum returns the selected value name of the enum at path.
func (v *ViewModelInstance) Enum(path string) (string, error) {
	var out abi.StrView
	err := v.call("ViewModelInstance.Enum", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetEnum(h, p, &out)
	})
	if err != nil {
		return "", err
	}
	return copyString(out), nil
}

// SetEnum selects the enum value called value.
func (v *ViewModelInstance) SetEnum(path, value string) error {
	err := v.call("ViewModelInstance.SetEnum", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetEnum(h, p, abi.Str(value))
	})
	runtime.KeepAlive(value)
	return err
}

// EnumIndex returns the selected value index of the enum at path.
func (v *ViewModelInstance) EnumIndex(path string) (uint32, error) {
	var out uint32
	err := v.call("ViewModelInstance.EnumIndex", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetEnumIndex(h, p, &out)
	})
	return out, err
}

// SetEnumIndex selects enum value index.
func (v *ViewModelInstance) SetEnumIndex(path string, index uint32) error {
	return v.call("ViewModelInstance.SetEnumIndex", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetEnumIndex(h, p, index)
	})
}

// FireTrigger fires the trigger at path.
func (v *ViewModelInstance) FireTrigger(path string) error {
	return v.call("ViewModelInstance.FireTrigger", path, v.fns().ViewModelInstanceFireTrigger)
}

func (v *ViewModelInstance) fns() *abi.Functions {
	if v == nil || v.h.rt == nil {
		return &noFunctions
	}
	return v.h.rt.fns
}

// ViewModel returns the nested instance at path. The result aliases the
// nested instance; writes through it are visible through v.
func (v *ViewModelInstance) ViewModel(path string) (*ViewModelInstance, error) {
	const op = "ViewModelInstance.ViewModel"
	var out abi.ViewModelInstance
	err := v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetViewModel(h, p, &out)
	})
	if err != nil {
		return nil, err
	}
	raw, err := adopt(op, abi.StatusOK, out)
	if err != nil {
		return nil, err
	}
	return newViewModelInstance(v.h.rt, raw), nil
}

// ReplaceViewModel makes the nested property at path share value.
func (v *ViewModelInstance) ReplaceViewModel(path string, value *ViewModelInstance) error {
	const op = "ViewModelInstance.ReplaceViewModel"
	vh, err := value.handle(op)
	if err != nil {
		return err
	}
	return v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceReplaceViewModel(h, p, vh)
	})
}

// HasChanged reports whether the property at path was written since the
// last ClearChanges.
func (v *ViewModelInstance) HasChanged(path string) (bool, error) {
	var out bool
	err := v.call("ViewModelInstance.HasChanged", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstancePropertyHasChanged(h, p, &out)
	})
	return out, err
}

// ClearChanges resets the changed flag of the property at path.
func (v *ViewModelInstance) ClearChanges(path string) error {
	return v.call("ViewModelInstance.ClearChanges", path, v.fns().ViewModelInstanceClearPropertyChanges)
}

// ListSize returns the length of the list at path.
func (v *ViewModelInstance) ListSize(path string) (int, error) {
	var out uintptr
	err := v.call("ViewModelInstance.ListSize", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceListSize(h, p, &out)
	})
	return int(out), err
}

// ListAt returns element i of the list at path.
func (v *ViewModelInstance) ListAt(path string, i int) (*ViewModelInstance, error) {
	const op = "ViewModelInstance.ListAt"
	if i < 0 {
		return nil, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var out abi.ViewModelInstance
	err := v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceListInstanceAt(h, p, uintptr(i), &out)
	})
	if err != nil {
		return nil, err
	}
	raw, err := adopt(op, abi.StatusOK, out)
	if err != nil {
		return nil, err
	}
	return newViewModelInstance(v.h.rt, raw), nil
}

// List returns every element of the list at path. Release each element
// when done.
func (v *ViewModelInstance) List(path string) ([]*ViewModelInstance, error) {
	n, err := v.ListSize(path)
	if err != nil {
		return nil, err
	}
	out := make([]*ViewModelInstance, 0, n)
	for i := 0; i < n; i++ {
		item, err := v.ListAt(path, i)
		if err != nil {
			for _, it := range out {
				it.Release()
			}
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ListAdd appends value to the list at path.
func (v *ViewModelInstance) ListAdd(path string, value *ViewModelInstance) error {
	const op = "ViewModelInstance.ListAdd"
	vh, err := value.handle(op)
	if err != nil {
		return err
	}
	return v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceListAddInstance(h, p, vh)
	})
}

// ListAddAt inserts value at index i and reports whether it was inserted.
// An index at or past the end appends.
func (v *ViewModelInstance) ListAddAt(path string, value *ViewModelInstance, i int) (bool, error) {
	const op = "ViewModelInstance.ListAddAt"
	if i < 0 {
		return false, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	vh, err := value.handle(op)
	if err != nil {
		return false, err
	}
	var added bool
	err = v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceListAddInstanceAt(h, p, vh, uintptr(i), &added)
	})
	if err != nil {
		return false, err
	}
	return added, nil
}

// ListRemove removes every occurrence of value from the list at path.
func (v *ViewModelInstance) ListRemove(path string, value *ViewModelInstance) error {
	const op = "ViewModelInstance.ListRemove"
	vh, err := value.handle(op)
	if err != nil {
		return err
	}
	return v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceListRemoveInstance(h, p, vh)
	})
}

// ListRemoveAt removes element i of the list at path.
func (v *ViewModelInstance) ListRemoveAt(path string, i int) error {
	const op = "ViewModelInstance.ListRemoveAt"
	if i < 0 {
		return &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	return v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceListRemoveInstanceAt(h, p, uintptr(i))
	})
}

// ListSwap exchanges elements a and b of the list at path.
func (v *ViewModelInstance) ListSwap(path string, a, b uint32) error {
	return v.call("ViewModelInstance.ListSwap", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceListSwap(h, p, a, b)
	})
}

// SetArtboard assigns an artboard to the artboard property at path.
func (v *ViewModelInstance) SetArtboard(path string, artboard *BindableArtboard) error {
	const op = "ViewModelInstance.SetArtboard"
	bh, err := artboard.handle(op)
	if err != nil {
		return err
	}
	return v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetArtboard(h, p, bh)
	})
}

// SetArtboardViewModel binds value as the data context of the artboard
// property at path.
func (v *ViewModelInstance) SetArtboardViewModel(path string, value *ViewModelInstance) error {
	const op = "ViewModelInstance.SetArtboardViewModel"
	vh, err := value.handle(op)
	if err != nil {
		return err
	}
	return v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetArtboardViewModel(h, p, vh)
	})
}

// SetImage assigns image to the image property at path. nil clears it.
func (v *ViewModelInstance) SetImage(path string, image *RenderImage) error {
	const op = "ViewModelInstance.SetImage"
	var ih abi.RenderImage
	if image != nil {
		var err error
		if ih, err = image.handle(op); err != nil {
			return err
		}
	}
	return v.call(op, path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceSetImage(h, p, ih)
	})
}

// Image returns the image at path, or nil when none is set.
func (v *ViewModelInstance) Image(path string) (*RenderImage, error) {
	var out abi.RenderImage
	err := v.call("ViewModelInstance.Image", path, func(h abi.ViewModelInstance, p abi.StrView) abi.Status {
		return v.h.rt.fns.ViewModelInstanceGetImage(h, p, &out)
	})
	if err != nil || out == 0 {
		return nil, err
	}
	return newRenderImage(v.h.rt, out), nil
}
