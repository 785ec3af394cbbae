package rive

import (
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/errors"
)

// Factory decodes files and media. It is reference counted.
type Factory struct {
	h shared[abi.Factory]
}

func newFactory(rt *Runtime, raw abi.Factory) *Factory {
	f := &Factory{h: newShared(rt, kindFactory, raw, rt.fns.FactoryRef, rt.fns.FactoryUnref)}
	return track(f, &f.h.owned)
}

func (f *Factory) handle(op string) (abi.Factory, error) {
	if f == nil {
		return 0, nullError(op)
	}
	return f.h.handle(op)
}

func (f *Factory) alive() bool { return f != nil && f.h.alive() }

// Clone returns a second wrapper for the same factory.
func (f *Factory) Clone() (*Factory, error) {
	if f == nil {
		return nil, nullError("Factory.Clone")
	}
	raw, err := f.h.retain("Factory.Clone")
	if err != nil {
		return nil, err
	}
	return newFactory(f.h.rt, raw), nil
}

// Release drops this wrapper's reference. Further calls are no-ops.
func (f *Factory) Release() {
	if f != nil {
		f.h.release()
	}
}

// LoadFile decodes a document.
func (f *Factory) LoadFile(data []byte) (*File, error) {
	const op = "Factory.LoadFile"
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.File
	st := f.h.rt.fns.LoadFile(h, abi.Bytes(data), &out)
	runtime.KeepAlive(data)
	raw, err := adopt(op, st, out)
	if err != nil {
		return nil, err
	}
	return newFile(f.h.rt, raw), nil
}

// AssetLoader resolves the assets of a document while it loads.
//
// LoadContents is called synchronously, once per asset, before the load
// returns. inBand holds the embedded bytes and is empty for assets hosted
// out of band. Returning true tells the runtime the asset was handled and
// suppresses the default decode. The asset is only valid during the call;
// the factory may be cloned if it is needed afterwards.
type AssetLoader interface {
	LoadContents(asset *FileAsset, inBand []byte, factory *Factory) bool
}

// AssetLoaderFunc adapts a function to AssetLoader.
type AssetLoaderFunc func(asset *FileAsset, inBand []byte, factory *Factory) bool

// LoadContents calls fn.
func (fn AssetLoaderFunc) LoadContents(asset *FileAsset, inBand []byte, factory *Factory) bool {
	return fn(asset, inBand, factory)
}

// LoadFileWithAssetLoader decodes a document, routing each asset through
// loader. A loader that panics is reported to the errors handler and
// treated as not having handled the asset.
func (f *Factory) LoadFileWithAssetLoader(data []byte, loader AssetLoader) (*File, error) {
	const op = "Factory.LoadFileWithAssetLoader"
	if loader == nil {
		return f.LoadFile(data)
	}
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	rt := f.h.rt
	callbacks := &abi.AssetLoaderCallbacks{
		LoadContents: func(_ uintptr, asset abi.FileAsset, inBand abi.BytesView, factory abi.Factory) bool {
			return rt.loadAsset(loader, asset, inBand, factory)
		},
	}
	var out abi.File
	st := rt.fns.LoadFileWithAssetLoader(h, abi.Bytes(data), callbacks, &out)
	runtime.KeepAlive(data)
	raw, err := adopt(op, st, out)
	if err != nil {
		return nil, err
	}
	return newFile(rt, raw), nil
}

func (rt *Runtime) loadAsset(loader AssetLoader, asset abi.FileAsset, inBand abi.BytesView, factory abi.Factory) (handled bool) {
	if asset == 0 {
		return false
	}
	call := &callScope{}
	a := &FileAsset{rt: rt, raw: asset, owner: call}
	defer call.end()

	var fw *Factory
	if factory != 0 {
		rt.fns.FactoryRef(factory)
		fw = newFactory(rt, factory)
		defer fw.Release()
	}
	defer errors.RecoverWithCallback("rive.AssetLoader.LoadContents", func(any) {
		handled = false
	})
	return loader.LoadContents(a, copyBytes(inBand), fw)
}

// callScope bounds a FileAsset to one loader invocation.
type callScope struct {
	done bool
}

func (c *callScope) alive() bool { return !c.done }
func (c *callScope) end()        { c.done = true }

// DecodeAudio decodes an audio payload.
func (f *Factory) DecodeAudio(data []byte) (*AudioSource, error) {
	const op = "Factory.DecodeAudio"
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.AudioSource
	st := f.h.rt.fns.DecodeAudio(h, abi.Bytes(data), &out)
	runtime.KeepAlive(data)
	raw, err := adopt(op, st, out)
	if err != nil {
		return nil, err
	}
	return newAudioSource(f.h.rt, raw), nil
}

// DecodeFont decodes a font payload.
func (f *Factory) DecodeFont(data []byte) (*Font, error) {
	const op = "Factory.DecodeFont"
	h, err := f.handle(op)
	if err != nil {
		return nil, err
	}
	var out abi.Font
	st := f.h.rt.fns.DecodeFont(h, abi.Bytes(data), &out)
	runtime.KeepAlive(data)
	raw, err := adopt(op, st, out)
	if err != nil {
		return nil, err
	}
	return newFont(f.h.rt, raw), nil
}
