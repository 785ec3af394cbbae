package rive

import (
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
)

// File is a loaded document. It is reference counted.
type File struct {
	h shared[abi.File]
}

func newFile(rt *Runtime, raw abi.File) *File {
	f := &File{h: newShared(rt, kindFile, raw, rt.fns.FileRef, rt.fns.FileUnref)}
	return track(f, &f.h.owned)
}

func (f *File) handle(op string) (abi.File, error) {
	if f == nil {
		return 0, nullError(op)
	}
	return f.h.handle(op)
}

func (f *File) raw() abi.File {
	if f == nil {
		return 0
	}
	return f.h.raw
}

// Clone returns a second wrapper for the same file.
func (f *File) Clone() (*File, error) {
	if f == nil {
		return nil, nullError("File.Clone")
	}
	raw, err := f.h.retain("File.Clone")
	if err != nil {
		return nil, err
	}
	return newFile(f.h.rt, raw), nil
}

// Release drops this wrapper's reference. Further calls are no-ops.
func (f *File) Release() {
	if f != nil {
		f.h.release()
	}
}

// ArtboardCount returns the number of artboards.
func (f *File) ArtboardCount() int {
	h := f.raw()
	if h == 0 {
		return 0
	}
	return int(f.h.rt.fns.FileArtboardCount(h))
}

func (f *File) artboard(op string, call func(abi.File, *abi.Artboard) abi.Status) (*Artboard, error) {
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.Artboard
	raw, err := adopt(op, call(h, &out), out)
	if err != nil {
		return nil, err
	}
	return newArtboard(f.h.rt, raw), nil
}

// DefaultArtboard returns a new instance of the default artboard.
func (f *File) DefaultArtboard() (*Artboard, error) {
	return f.artboard("File.DefaultArtboard", f.fns().FileArtboardDefault)
}

// ArtboardAt returns a new instance of artboard i.
func (f *File) ArtboardAt(i int) (*Artboard, error) {
	if i < 0 {
		return nil, &Error{Op: "File.ArtboardAt", Status: abi.StatusOutOfRange}
	}
	return f.artboard("File.ArtboardAt", func(h abi.File, out *abi.Artboard) abi.Status {
		return f.h.rt.fns.FileArtboardByIndex(h, uintptr(i), out)
	})
}

// Artboard returns a new instance of the artboard called name.
func (f *File) Artboard(name string) (*Artboard, error) {
	a, err := f.artboard("File.Artboard", func(h abi.File, out *abi.Artboard) abi.Status {
		return f.h.rt.fns.FileArtboardByName(h, abi.Str(name), out)
	})
	runtime.KeepAlive(name)
	return a, err
}

func (f *File) fns() *abi.Functions {
	if f == nil || f.h.rt == nil {
		return &noFunctions
	}
	return f.h.rt.fns
}

// ViewModelCount returns the number of view models.
func (f *File) ViewModelCount() int {
	h := f.raw()
	if h == 0 {
		return 0
	}
	return int(f.h.rt.fns.FileViewModelCount(h))
}

func (f *File) viewModel(op string, call func(abi.File, *abi.ViewModel) abi.Status) (*ViewModel, error) {
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.ViewModel
	raw, err := adopt(op, call(h, &out), out)
	if err != nil {
		return nil, err
	}
	return newViewModel(f.h.rt, raw), nil
}

// ViewModelAt returns view model i.
func (f *File) ViewModelAt(i int) (*ViewModel, error) {
	if i < 0 {
		return nil, &Error{Op: "File.ViewModelAt", Status: abi.StatusOutOfRange}
	}
	return f.viewModel("File.ViewModelAt", func(h abi.File, out *abi.ViewModel) abi.Status {
		return f.h.rt.fns.FileViewModelByIndex(h, uintptr(i), out)
	})
}

// ViewModel returns the view model called name.
func (f *File) ViewModel(name string) (*ViewModel, error) {
	vm, err := f.viewModel("File.ViewModel", func(h abi.File, out *abi.ViewModel) abi.Status {
		return f.h.rt.fns.FileViewModelByName(h, abi.Str(name), out)
	})
	runtime.KeepAlive(name)
	return vm, err
}

// DefaultArtboardViewModel returns the view model bound to artboard by
// default.
func (f *File) DefaultArtboardViewModel(artboard *Artboard) (*ViewModel, error) {
	const op = "File.DefaultArtboardViewModel"
	ah, err := artboard.handle(op)
	if err != nil {
		return nil, err
	}
	return f.viewModel(op, func(h abi.File, out *abi.ViewModel) abi.Status {
		return f.h.rt.fns.FileDefaultArtboardViewModel(h, ah, out)
	})
}

func (f *File) bindable(op string, call func(abi.File, *abi.BindableArtboard) abi.Status) (*BindableArtboard, error) {
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.BindableArtboard
	raw, err := adopt(op, call(h, &out), out)
	if err != nil {
		return nil, err
	}
	return newBindableArtboard(f.h.rt, raw), nil
}

// BindableArtboard returns the artboard called name in a form that can be
// assigned to an artboard view-model property.
func (f *File) BindableArtboard(name string) (*BindableArtboard, error) {
	b, err := f.bindable("File.BindableArtboard", func(h abi.File, out *abi.BindableArtboard) abi.Status {
		return f.h.rt.fns.FileBindableArtboardByName(h, abi.Str(name), out)
	})
	runtime.KeepAlive(name)
	return b, err
}

// DefaultBindableArtboard returns the default artboard in bindable form.
func (f *File) DefaultBindableArtboard() (*BindableArtboard, error) {
	return f.bindable("File.DefaultBindableArtboard", f.fns().FileBindableArtboardDefault)
}

// BindableArtboardFrom wraps an existing artboard instance.
func (f *File) BindableArtboardFrom(artboard *Artboard) (*BindableArtboard, error) {
	const op = "File.BindableArtboardFrom"
	ah, err := artboard.handle(op)
	if err != nil {
		return nil, err
	}
	return f.bindable(op, func(h abi.File, out *abi.BindableArtboard) abi.Status {
		return f.h.rt.fns.FileBindableArtboardFromArtboard(h, ah, out)
	})
}

// HasAudio reports whether the file references audio.
func (f *File) HasAudio() bool {
	h := f.raw()
	return h != 0 && f.h.rt.fns.FileHasAudio(h)
}

// EnumCount returns the number of data enums.
func (f *File) EnumCount() int {
	h := f.raw()
	if h == 0 {
		return 0
	}
	return int(f.h.rt.fns.FileEnumCount(h))
}

// Enums returns every data enum with its values.
func (f *File) Enums() ([]DataEnum, error) {
	const op = "File.Enums"
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	fns := f.h.rt.fns
	n := fns.FileEnumCount(h)
	out := make([]DataEnum, 0, n)
	for i := uintptr(0); i < n; i++ {
		var name abi.StrView
		if err := check(op, fns.FileEnumNameAt(h, i, &name)); err != nil {
			return nil, err
		}
		e := DataEnum{Name: copyString(name)}
		vn := fns.FileEnumValueCount(h, i)
		e.Values = make([]string, 0, vn)
		for j := uintptr(0); j < vn; j++ {
			var v abi.StrView
			if err := check(op, fns.FileEnumValueNameAt(h, i, j, &v)); err != nil {
				return nil, err
			}
			e.Values = append(e.Values, copyString(v))
		}
		out = append(out, e)
	}
	return out, nil
}

// BindableArtboard is an artboard reference assignable to view-model
// artboard properties. It is reference counted.
type BindableArtboard struct {
	h shared[abi.BindableArtboard]
}

func newBindableArtboard(rt *Runtime, raw abi.BindableArtboard) *BindableArtboard {
	b := &BindableArtboard{h: newShared(rt, kindBindableArtboard, raw, rt.fns.BindableArtboardRef, rt.fns.BindableArtboardUnref)}
	return track(b, &b.h.owned)
}

func (b *BindableArtboard) handle(op string) (abi.BindableArtboard, error) {
	if b == nil {
		return 0, nullError(op)
	}
	return b.h.handle(op)
}

// Clone returns a second wrapper for the same bindable artboard.
func (b *BindableArtboard) Clone() (*BindableArtboard, error) {
	if b == nil {
		return nil, nullError("BindableArtboard.Clone")
	}
	raw, err := b.h.retain("BindableArtboard.Clone")
	if err != nil {
		return nil, err
	}
	return newBindableArtboard(b.h.rt, raw), nil
}

// Release drops this wrapper's reference. Further calls are no-ops.
func (b *BindableArtboard) Release() {
	if b != nil {
		b.h.release()
	}
}
