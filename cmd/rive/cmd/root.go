// Package cmd implements the rive CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (inspect, paths, render, play, abi, fetch).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/rive/cmd/rive/internal/cache"
	"github.com/go-drift/rive/cmd/rive/internal/config"
	riveerrors "github.com/go-drift/rive/pkg/errors"
	"github.com/go-drift/rive/pkg/rive"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Output streams. Tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "rive",
	Short: "rive - inspect and play vector animation files",
	Long: `rive loads animation files through the runtime handle layer, either
from the native provider library or from the in-process reference engine.

Use "rive <command> --help" for more information about a command.`,
	Usage: "rive [global flags] <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// globalOptions are the flags accepted before the command name.
type globalOptions struct {
	verbose    bool
	configPath string
	backend    string
}

var globals globalOptions

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	cache.SetGlobal(Version)
	globals = globalOptions{}

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Global flags are only recognized before the command name
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(filteredArgs) > 0 {
			filteredArgs = append(filteredArgs, arg)
			continue
		}
		switch arg {
		case "-h", "--help", "help":
			printHelp(rootCmd)
			return nil
		case "-v", "--version":
			printVersion()
			return nil
		case "--verbose":
			globals.verbose = true
		case "--cache-dir", "--config", "--backend":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a value", arg)
			}
			setGlobal(arg, args[i+1])
			i++
		default:
			if name, value, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(name, "--") {
				switch name {
				case "--cache-dir", "--config", "--backend":
					setGlobal(name, value)
					continue
				}
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	setupLogging(globals.verbose)

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func setGlobal(name, value string) {
	switch name {
	case "--cache-dir":
		cache.SetCacheDir(value)
	case "--config":
		globals.configPath = value
	case "--backend":
		globals.backend = strings.ToLower(value)
	}
}

// setupLogging routes runtime logs and reported errors to stderr. Verbose
// mode logs handle traffic at debug level and adds stack traces to error
// reports.
func setupLogging(verbose bool) {
	if !verbose {
		rive.SetLogger(nil)
		riveerrors.SetHandler(&riveerrors.LogHandler{Out: stderr})
		return
	}
	rive.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	riveerrors.SetHandler(&riveerrors.LogHandler{Verbose: true, Out: stderr})
}

// loadConfig resolves rive.yaml from --config or the nearest one above the
// working directory, then applies --backend.
func loadConfig() (*config.Resolved, error) {
	path := globals.configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.Find(wd); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Resolve(path)
	if err != nil {
		return nil, err
	}
	switch globals.backend {
	case "":
	case config.BackendAuto, config.BackendNative, config.BackendSim:
		cfg.Backend = globals.backend
	default:
		return nil, fmt.Errorf("--backend must be %s, %s or %s (got %q)", config.BackendAuto, config.BackendNative, config.BackendSim, globals.backend)
	}
	return cfg, nil
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --verbose            Log handle traffic and stack traces to stderr")
	fmt.Fprintln(w, "  --config FILE        Use FILE instead of the nearest rive.yaml")
	fmt.Fprintln(w, "  --backend NAME       auto, native or sim (default: runtime.backend)")
	fmt.Fprintln(w, "  --cache-dir DIR      Override cache directory (default: ~/.rive)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RIVE_ABI_LIB         Explicit provider library path")
	fmt.Fprintln(w, "  RIVE_CACHE_DIR       Cache directory override (lower priority than --cache-dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  rive inspect hero.riv --jq '.artboards[].name'")
	fmt.Fprintln(w, "  rive render scene.yaml -o scene.png --fit cover")
	fmt.Fprintln(w, "  rive play hero.riv --frames 120")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
