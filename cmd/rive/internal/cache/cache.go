// Package cache resolves where the rive tool keeps downloaded provider
// libraries.
//
// Priority order: --cache-dir flag > RIVE_CACHE_DIR env > ~/.rive default.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-drift/rive/pkg/abi/native"
)

var global struct {
	version    string
	rawVersion string
	cacheDir   string
	warned     bool
}

// SetGlobal initializes the cache resolver with the CLI version.
// This should be called at startup from root.go.
func SetGlobal(version string) {
	global.rawVersion = strings.TrimSpace(version)
	global.version = NormalizeVersion(version)
}

// NormalizeVersion returns a clean release version, or empty if the version
// is not a valid release (e.g., dev builds, pseudo-versions from go install).
// Explicit prerelease tags (v0.2.0-rc1) are allowed.
//
// Examples:
//
//	"v0.1.0"                          -> "v0.1.0"
//	"0.1.0"                           -> "v0.1.0"
//	"rive-v0.1.0"                     -> "v0.1.0"
//	"v0.2.0-rc1"                      -> "v0.2.0-rc1" (prerelease allowed)
//	"0.1.0-dev"                       -> "" (dev build)
//	"v0.2.1-0.20260122153045-abc123"  -> "" (pseudo-version)
//	"v1.2"                            -> "" (not X.Y.Z)
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(strings.TrimPrefix(version, "rive-"))
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) || semver.Build(version) != "" {
		return ""
	}
	// semver accepts "v1.2" as shorthand; releases are always X.Y.Z
	if semver.Canonical(version) != version {
		return ""
	}
	pre := semver.Prerelease(version)
	if pre == "-dev" || strings.HasPrefix(pre, "-0.") {
		return ""
	}
	return version
}

// SetCacheDir sets an override for the cache directory.
// This is typically called when parsing the --cache-dir flag.
func SetCacheDir(dir string) {
	global.cacheDir = dir
}

// Root returns the cache root directory.
// Priority: --cache-dir flag > RIVE_CACHE_DIR env > ~/.rive default.
func Root() (string, error) {
	if global.cacheDir != "" {
		return global.cacheDir, nil
	}

	if envDir := os.Getenv("RIVE_CACHE_DIR"); envDir != "" {
		return envDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return filepath.Join(home, ".rive"), nil
}

// Platform returns the cache subdirectory for the running OS and
// architecture, like "linux_amd64".
func Platform() string {
	return runtime.GOOS + "_" + runtime.GOARCH
}

// VersionDir returns the library directory for an explicit version.
// Returns: <cache_root>/lib/<version>/<goos>_<goarch>
func VersionDir(version string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "lib", version, Platform()), nil
}

// LibDir returns the versioned library directory for the provider library.
//
// If the CLI version is not a release (dev build, pseudo-version), this
// searches for the highest version available in the cache and prints a
// warning.
func LibDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}

	version := global.version
	if version == "" {
		// Non-release build: find any cached version
		version, err = findCachedVersion(root)
		if err != nil {
			return "", err
		}
		if !global.warned {
			raw := global.rawVersion
			if raw == "" {
				raw = "unknown"
			}
			fmt.Fprintf(os.Stderr, "Warning: using cached library (%s) for non-release CLI version %s\n", version, raw)
			global.warned = true
		}
	}

	return filepath.Join(root, "lib", version, Platform()), nil
}

// findCachedVersion looks for versions in the cache that hold a library
// for this platform. Returns the highest semver version found.
func findCachedVersion(root string) (string, error) {
	libDir := filepath.Join(root, "lib")
	entries, err := os.ReadDir(libDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("cache directory %s does not exist; run 'rive fetch'", libDir)
		}
		return "", fmt.Errorf("failed to read cache directory %s: %w", libDir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() || !semver.IsValid(entry.Name()) {
			continue
		}
		lib := filepath.Join(libDir, entry.Name(), Platform(), native.LibraryName())
		if _, err := os.Stat(lib); err == nil {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("no cached library found for %s; run 'rive fetch'", Platform())
	}

	semver.Sort(candidates)
	return candidates[len(candidates)-1], nil
}

// Version returns the CLI release version, or the raw version string for
// non-release builds.
func Version() string {
	if global.version != "" {
		return global.version
	}
	return global.rawVersion
}
