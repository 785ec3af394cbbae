//go:build darwin || linux

package native

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/go-drift/rive/pkg/abi"
)

var (
	openMu sync.Mutex
	opened = make(map[string]*abi.Functions)

	trampolineOnce sync.Once
	trampoline     uintptr
)

// Open loads the provider library at path, or at [LibraryPath] when path
// is empty, and binds the full function table. Opening the same path
// twice returns the same table. A library missing any symbol is closed
// again and reported with an *abi.MissingSymbolsError in the chain.
func Open(path string) (*abi.Functions, error) {
	if path == "" {
		path = LibraryPath()
	}
	openMu.Lock()
	defer openMu.Unlock()
	if fns, ok := opened[path]; ok {
		return fns, nil
	}

	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("native: load %s: %w", path, err)
	}
	fns := &abi.Functions{}
	err = abi.Bind(fns, func(name string) (uintptr, error) {
		return purego.Dlsym(lib, name)
	}, purego.RegisterFunc)
	if err == nil {
		err = bindShims(fns, lib)
	}
	if err != nil {
		_ = purego.Dlclose(lib)
		return nil, fmt.Errorf("native: bind %s: %w", path, err)
	}
	opened[path] = fns
	return fns, nil
}

// bindShims installs the entries whose Go signature differs from C.
func bindShims(fns *abi.Functions, lib uintptr) error {
	const sym = "rive_rs_load_file_with_asset_loader"
	addr, err := purego.Dlsym(lib, sym)
	if err != nil || addr == 0 {
		return &abi.MissingSymbolsError{Symbols: []string{sym}}
	}
	var load func(factory abi.Factory, bytes abi.BytesView, loader *cLoader, out *abi.File) abi.Status
	purego.RegisterFunc(&load, addr)

	fns.LoadFileWithAssetLoader = func(factory abi.Factory, bytes abi.BytesView, cb *abi.AssetLoaderCallbacks, out *abi.File) abi.Status {
		if cb == nil || cb.LoadContents == nil {
			return load(factory, bytes, nil, out)
		}
		key := register(cb)
		defer unregister(key)
		return load(factory, bytes, &cLoader{loadContents: loaderTrampoline(), userData: key}, out)
	}
	return nil
}

// loaderTrampoline returns the single C entry point for asset loader
// callbacks. purego callbacks are a finite process-wide resource, so one
// trampoline serves every load.
func loaderTrampoline() uintptr {
	trampolineOnce.Do(func() {
		trampoline = purego.NewCallback(dispatch)
	})
	return trampoline
}
