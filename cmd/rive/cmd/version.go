package cmd

import (
	"fmt"

	"github.com/go-drift/rive/cmd/rive/internal/config"
	"github.com/go-drift/rive/pkg/abi"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Print version information",
		Long:  "Print the CLI version, build time and ABI version.",
		Usage: "rive version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}

func printVersion() {
	fmt.Fprintf(stdout, "rive CLI version %s (built %s), ABI %s\n", Version, BuildTime, config.ABIString(abi.Version))
}
