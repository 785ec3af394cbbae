package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/rive/cmd/rive/internal/cache"
	"github.com/go-drift/rive/cmd/rive/internal/config"
	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/abi/native"
	"github.com/go-drift/rive/pkg/rive"
	"github.com/go-drift/rive/pkg/simengine"
)

// errNeedsSim is returned by commands that draw through the reference
// engine's raster renderer.
var errNeedsSim = errors.New("this command needs the sim backend (use --backend sim or a .yaml document)")

// document is one loaded file and everything keeping it alive.
type document struct {
	cfg     *config.Resolved
	backend string
	// engine is nil on the native backend.
	engine  *simengine.Engine
	rt      *rive.Runtime
	factory *rive.Factory
	file    *rive.File
}

// backendFor resolves "auto": reference documents are YAML, anything else
// goes to the native provider.
func backendFor(cfg *config.Resolved, path string) string {
	if cfg.Backend != config.BackendAuto {
		return cfg.Backend
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return config.BackendSim
	}
	return config.BackendNative
}

// openProvider returns the function table for backend.
func openProvider(cfg *config.Resolved, backend string) (*abi.Functions, *simengine.Engine, error) {
	if backend == config.BackendSim {
		e := simengine.New()
		return e.Functions(), e, nil
	}
	path := cfg.Library
	if path == "" {
		var dirs []string
		if os.Getenv(native.EnvLibrary) == "" {
			if dir, err := cache.LibDir(); err == nil {
				dirs = append(dirs, dir)
			}
		}
		path = native.LibraryPath(dirs...)
	}
	fns, err := native.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w\n\nRun 'rive fetch' or set %s", err, native.EnvLibrary)
	}
	return fns, nil, nil
}

// newRuntime opens the provider and checks its version against the
// configuration.
func newRuntime(cfg *config.Resolved, backend string) (*rive.Runtime, *simengine.Engine, error) {
	fns, engine, err := openProvider(cfg, backend)
	if err != nil {
		return nil, nil, err
	}
	rt, err := rive.NewRuntime(fns)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.CheckABI(rt.ABIVersion()); err != nil {
		return nil, nil, err
	}
	return rt, engine, nil
}

func openDocument(path string) (*document, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	backend := backendFor(cfg, path)
	rt, engine, err := newRuntime(cfg, backend)
	if err != nil {
		return nil, err
	}
	factory, err := rt.NewFactory()
	if err != nil {
		return nil, err
	}
	file, err := factory.LoadFile(data)
	if err != nil {
		factory.Release()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &document{cfg: cfg, backend: backend, engine: engine, rt: rt, factory: factory, file: file}, nil
}

func (d *document) Close() {
	d.file.Release()
	d.factory.Release()
}

// artboard returns the named artboard, the configured one, or the
// file's default.
func (d *document) artboard(name string) (*rive.Artboard, error) {
	if name == "" {
		name = d.cfg.Artboard
	}
	if name == "" {
		return d.file.DefaultArtboard()
	}
	return d.file.Artboard(name)
}

// stateMachine picks the named state machine, the configured one, or the
// artboard's first. It returns false when the artboard has none.
func (d *document) stateMachine(a *rive.Artboard, name string) (rive.StateMachine, bool, error) {
	if name == "" {
		name = d.cfg.StateMachine
	}
	if name != "" {
		sm, err := a.StateMachine(name)
		return sm, err == nil, err
	}
	if a.StateMachineCount() == 0 {
		return rive.StateMachine{}, false, nil
	}
	sm, err := a.StateMachineAt(0)
	return sm, err == nil, err
}
