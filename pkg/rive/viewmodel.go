package rive

import (
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
)

// ViewModel is a view-model schema. It is reference counted.
type ViewModel struct {
	h shared[abi.ViewModel]
}

func newViewModel(rt *Runtime, raw abi.ViewModel) *ViewModel {
	vm := &ViewModel{h: newShared(rt, kindViewModel, raw, rt.fns.ViewModelRef, rt.fns.ViewModelUnref)}
	return track(vm, &vm.h.owned)
}

func (vm *ViewModel) handle(op string) (abi.ViewModel, error) {
	if vm == nil {
		return 0, nullError(op)
	}
	return vm.h.handle(op)
}

// Clone returns a second wrapper for the same view model.
func (vm *ViewModel) Clone() (*ViewModel, error) {
	if vm == nil {
		return nil, nullError("ViewModel.Clone")
	}
	raw, err := vm.h.retain("ViewModel.Clone")
	if err != nil {
		return nil, err
	}
	return newViewModel(vm.h.rt, raw), nil
}

// Release drops this wrapper's reference. Further calls are no-ops.
func (vm *ViewModel) Release() {
	if vm != nil {
		vm.h.release()
	}
}

// Name returns the view model name.
func (vm *ViewModel) Name() string {
	h, err := vm.handle("")
	if err != nil {
		return ""
	}
	return copyString(vm.h.rt.fns.ViewModelName(h))
}

func (vm *ViewModel) PropertyCount() int {
	h, err := vm.handle("")
	if err != nil {
		return 0
	}
	return int(vm.h.rt.fns.ViewModelPropertyCount(h))
}

func (vm *ViewModel) InstanceCount() int {
	h, err := vm.handle("")
	if err != nil {
		return 0
	}
	return int(vm.h.rt.fns.ViewModelInstanceCount(h))
}

// PropertyAt describes property i.
func (vm *ViewModel) PropertyAt(i int) (PropertyInfo, error) {
	const op = "ViewModel.PropertyAt"
	h, err := vm.handle(op)
	if err != nil {
		return PropertyInfo{}, err
	}
	if i < 0 {
		return PropertyInfo{}, &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var p abi.PropertyInfo
	if err := check(op, vm.h.rt.fns.ViewModelPropertyAt(h, uintptr(i), &p)); err != nil {
		return PropertyInfo{}, err
	}
	return decodeProperty(&p), nil
}

// Properties describes every property of the schema.
func (vm *ViewModel) Properties() ([]PropertyInfo, error) {
	n := vm.PropertyCount()
	out := make([]PropertyInfo, 0, n)
	for i := 0; i < n; i++ {
		p, err := vm.PropertyAt(i)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// InstanceNameAt returns the name of authored instance i.
func (vm *ViewModel) InstanceNameAt(i int) (string, error) {
	const op = "ViewModel.InstanceNameAt"
	h, err := vm.handle(op)
	if err != nil {
		return "", err
	}
	if i < 0 {
		return "", &Error{Op: op, Status: abi.StatusOutOfRange}
	}
	var v abi.StrView
	if err := check(op, vm.h.rt.fns.ViewModelInstanceNameAt(h, uintptr(i), &v)); err != nil {
		return "", err
	}
	return copyString(v), nil
}

func (vm *ViewModel) instance(op string, call func(abi.ViewModel, *abi.ViewModelInstance) abi.Status) (*ViewModelInstance, error) {
	h, err := vm.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.ViewModelInstance
	raw, err := adopt(op, call(h, &out), out)
	if err != nil {
		return nil, err
	}
	return newViewModelInstance(vm.h.rt, raw), nil
}

// InstanceAt returns a new instance initialized from authored instance i.
func (vm *ViewModel) InstanceAt(i int) (*ViewModelInstance, error) {
	if i < 0 {
		return nil, &Error{Op: "ViewModel.InstanceAt", Status: abi.StatusOutOfRange}
	}
	return vm.instance("ViewModel.InstanceAt", func(h abi.ViewModel, out *abi.ViewModelInstance) abi.Status {
		return vm.h.rt.fns.ViewModelInstanceByIndex(h, uintptr(i), out)
	})
}

// Instance returns a new instance initialized from the authored instance
// called name.
func (vm *ViewModel) Instance(name string) (*ViewModelInstance, error) {
	v, err := vm.instance("ViewModel.Instance", func(h abi.ViewModel, out *abi.ViewModelInstance) abi.Status {
		return vm.h.rt.fns.ViewModelInstanceByName(h, abi.Str(name), out)
	})
	runtime.KeepAlive(name)
	return v, err
}

// DefaultInstance returns a new instance initialized from the default one.
func (vm *ViewModel) DefaultInstance() (*ViewModelInstance, error) {
	return vm.instance("ViewModel.DefaultInstance", func(h abi.ViewModel, out *abi.ViewModelInstance) abi.Status {
		return vm.h.rt.fns.ViewModelDefaultInstance(h, out)
	})
}

// NewInstance returns a blank instance with default property values.
func (vm *ViewModel) NewInstance() (*ViewModelInstance, error) {
	return vm.instance("ViewModel.NewInstance", func(h abi.ViewModel, out *abi.ViewModelInstance) abi.Status {
		return vm.h.rt.fns.ViewModelNewInstance(h, out)
	})
}
