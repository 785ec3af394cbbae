// Package config loads the optional rive.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/rive/pkg/abi"
)

// FileName is the configuration file looked up by Find.
const FileName = "rive.yaml"

// Backends accepted by runtime.backend.
const (
	BackendAuto   = "auto"
	BackendNative = "native"
	BackendSim    = "sim"
)

// Config represents the optional rive.yaml configuration.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Player  PlayerConfig  `yaml:"player"`
	Export  ExportConfig  `yaml:"export"`
}

// RuntimeConfig selects the provider behind the runtime.
type RuntimeConfig struct {
	Library string `yaml:"library,omitempty"`
	Backend string `yaml:"backend,omitempty"`
	MinABI  string `yaml:"min_abi,omitempty"`
}

// PlayerConfig holds defaults for the play and render commands.
type PlayerConfig struct {
	FPS          int    `yaml:"fps,omitempty"`
	StateMachine string `yaml:"state_machine,omitempty"`
	Artboard     string `yaml:"artboard,omitempty"`
}

// ExportConfig holds defaults for exported images.
type ExportConfig struct {
	Scale float64 `yaml:"scale,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, empty when defaults only.
	Path         string
	Library      string
	Backend      string
	MinABI       string
	FPS          int
	StateMachine string
	Artboard     string
	Scale        float64
}

// LoadOptional reads rive.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	return loadFile(filepath.Join(dir, FileName))
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads the configuration at path (which need not exist) and
// resolves defaults. An empty path resolves defaults only.
func Resolve(path string) (*Resolved, error) {
	cfg := &Config{}
	if path != "" {
		var err error
		if cfg, err = loadFile(path); err != nil {
			return nil, err
		}
	}

	r := &Resolved{
		Path:         path,
		Library:      strings.TrimSpace(cfg.Runtime.Library),
		Backend:      strings.ToLower(strings.TrimSpace(cfg.Runtime.Backend)),
		MinABI:       strings.TrimSpace(cfg.Runtime.MinABI),
		FPS:          cfg.Player.FPS,
		StateMachine: strings.TrimSpace(cfg.Player.StateMachine),
		Artboard:     strings.TrimSpace(cfg.Player.Artboard),
		Scale:        cfg.Export.Scale,
	}
	if r.Backend == "" {
		r.Backend = BackendAuto
	}
	if r.FPS == 0 {
		r.FPS = 60
	}
	if r.Scale == 0 {
		r.Scale = 1
	}
	if r.Library != "" && path != "" && !filepath.IsAbs(r.Library) {
		r.Library = filepath.Join(filepath.Dir(path), r.Library)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", FileName, err)
	}
	return r, nil
}

func (r *Resolved) validate() error {
	switch r.Backend {
	case BackendAuto, BackendNative, BackendSim:
	default:
		return fmt.Errorf("runtime.backend must be %s, %s or %s (got %q)", BackendAuto, BackendNative, BackendSim, r.Backend)
	}
	if r.MinABI != "" && !semver.IsValid(canonicalABI(r.MinABI)) {
		return fmt.Errorf("runtime.min_abi is not a version (got %q)", r.MinABI)
	}
	if r.FPS < 0 || r.FPS > 1000 {
		return fmt.Errorf("player.fps out of range (got %d)", r.FPS)
	}
	if r.Scale <= 0 {
		return fmt.Errorf("export.scale must be positive (got %v)", r.Scale)
	}
	return nil
}

// canonicalABI accepts "1", "v1" and "v1.0.0" alike.
func canonicalABI(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// ABIString renders a boundary version as a semver string.
func ABIString(version uint32) string {
	return fmt.Sprintf("v%d.0.0", version)
}

// CheckABI reports an error when version is older than runtime.min_abi.
// The boundary only ever adds functions within a major version, so the
// major version must also match abi.Version.
func (r *Resolved) CheckABI(version uint32) error {
	have := ABIString(version)
	if semver.Major(have) != semver.Major(ABIString(abi.Version)) {
		return fmt.Errorf("provider ABI %s is incompatible with %s", have, ABIString(abi.Version))
	}
	if r.MinABI == "" {
		return nil
	}
	if want := canonicalABI(r.MinABI); semver.Compare(have, want) < 0 {
		return fmt.Errorf("provider ABI %s is older than runtime.min_abi %s", have, want)
	}
	return nil
}

// Find walks up from dir looking for rive.yaml and returns its path, or
// empty when there is none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
