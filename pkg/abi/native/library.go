// Package native binds the boundary function table to the prebuilt provider
// library through purego, without cgo.
//
// Open resolves every symbol listed by [abi.Symbols] and returns a table
// ready for rive.NewRuntime:
//
//	fns, err := native.Open("")
//	if err != nil {
//		return err
//	}
//	rt, err := rive.NewRuntime(fns)
package native

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// EnvLibrary names the environment variable holding an explicit library
// path. It takes precedence over the search paths.
const EnvLibrary = "RIVE_ABI_LIB"

// ErrUnsupported is returned by Open on platforms purego cannot load
// libraries on.
var ErrUnsupported = errors.New("native: not supported on this platform")

// LibraryName returns the platform file name of the provider library.
func LibraryName() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "librive_rs_abi.dylib"
	case "windows":
		return "rive_rs_abi.dll"
	default:
		return "librive_rs_abi.so"
	}
}

// LibraryPath returns the library Open loads when given an empty path:
// $RIVE_ABI_LIB if set, else the first existing file among dirs, the
// working directory and the executable's directory (and its ../lib).
// When nothing exists the bare name is returned so the system loader can
// search its own paths.
func LibraryPath(dirs ...string) string {
	if p := os.Getenv(EnvLibrary); p != "" {
		return p
	}
	name := LibraryName()
	candidates := make([]string, 0, len(dirs)+3)
	for _, d := range dirs {
		candidates = append(candidates, filepath.Join(d, name))
	}
	candidates = append(candidates, name)
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, name),
			filepath.Join(dir, "..", "lib", name),
		)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}
	return name
}
