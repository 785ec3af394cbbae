package cmd

import (
	"fmt"

	"github.com/go-drift/rive/cmd/rive/internal/config"
	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/rive"
)

func init() {
	RegisterCommand(&Command{
		Name:  "abi",
		Short: "Show the boundary version and check a provider",
		Long: `Print the ABI version this CLI was built against and the number of
entry points it binds.

--check opens the configured provider (native library or reference
engine) and verifies its version against runtime.min_abi. --symbols
lists every bound C symbol.`,
		Usage: "rive abi [--check] [--symbols]",
		Run:   runABI,
	})
}

func runABI(args []string) error {
	p, err := flagSpec{switches: []string{"--check", "--symbols"}}.parse(args)
	if err != nil {
		return err
	}
	if len(p.positional) > 0 {
		return fmt.Errorf("unexpected argument %q", p.positional[0])
	}

	syms := abi.Symbols()
	fmt.Fprintf(stdout, "ABI %s (%d symbols)\n", config.ABIString(abi.Version), len(syms))

	if p.set["--symbols"] {
		for _, s := range syms {
			suffix := ""
			if s.Shim {
				suffix = " (shim)"
			}
			fmt.Fprintf(stdout, "  %-48s %s%s\n", s.Name, s.Field, suffix)
		}
	}

	if !p.set["--check"] {
		return nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	backend := cfg.Backend
	if backend == config.BackendAuto {
		backend = config.BackendNative
	}
	rt, _, err := newRuntime(cfg, backend)
	if err != nil {
		return err
	}
	minABI := cfg.MinABI
	if minABI == "" {
		minABI = "unset"
	}
	fmt.Fprintf(stdout, "provider (%s): %s, compatible (min_abi %s)\n", backend, config.ABIString(rt.ABIVersion()), minABI)
	rive.Logger().Debug("provider checked", "backend", backend, "live", rt.LiveHandles())
	return nil
}
