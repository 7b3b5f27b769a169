package cli

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/GloriousEggroll/proton-wine/internal/config"
	"github.com/GloriousEggroll/proton-wine/internal/debug"
	"github.com/GloriousEggroll/proton-wine/internal/loadorder"
	"github.com/GloriousEggroll/proton-wine/internal/options"
	"github.com/GloriousEggroll/proton-wine/internal/version"
	"github.com/GloriousEggroll/proton-wine/internal/winver"
	"github.com/spf13/cobra"
)

// collaborators bundles the launcher state the option table feeds.
type collaborators struct {
	registry *debug.Registry
	emu      *winver.Emulation
	dlls     *loadorder.Table
}

func runLaunch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := traced(ctx, "config.load", func() (config.Config, error) {
		return config.Load(cfgPath)
	})
	if err != nil {
		return configFailure(cmd, err)
	}

	collab := &collaborators{
		registry: &debug.Registry{},
		emu:      winver.New(),
		dlls:     &loadorder.Table{},
	}
	if err := applyConfig(cfg, collab); err != nil {
		return configFailure(cmd, fmt.Errorf("%s: %w", cfgPath, err))
	}

	table := options.Builtin(options.Hooks{
		DebugMsg: func(expr string) error {
			edits, err := debug.ParseFilter(expr)
			if err != nil {
				return err
			}
			collab.registry.Apply(edits)
			return nil
		},
		DLL:    collab.dlls.AddOption,
		DOSVer: collab.emu.SetDOS,
		WinVer: collab.emu.SetWindows,
	})

	parser := &options.Parser{
		Table:    table,
		Env:      options.SystemEnv{},
		Diag:     cmd.ErrOrStderr(),
		Defaults: options.Settings{Managed: cfg.Display.Managed},
	}
	res, err := traced(ctx, "options.parse", func() (*options.Result, error) {
		return parser.Parse(append([]string{invocationName(cmd)}, args...))
	})
	if err != nil {
		return parseFailure(cmd, table, err)
	}

	switch res.Terminal {
	case options.Help:
		printUsage(cmd.OutOrStdout(), invocationName(cmd), table)
		return nil
	case options.Version:
		fmt.Fprintln(cmd.OutOrStdout(), version.Banner())
		return nil
	}

	if len(res.Args()) < 2 {
		printUsage(cmd.ErrOrStderr(), invocationName(cmd), table)
		return &ExitError{Code: 1}
	}
	return tracedErr(ctx, "launch", func() error {
		return launchProgram(cmd, collab, res)
	})
}

// applyConfig seeds the collaborators from the configuration file.
// Command-line options are applied afterwards and take precedence.
func applyConfig(cfg config.Config, collab *collaborators) error {
	if cfg.Version.Windows != "" {
		if err := collab.emu.SetWindows(cfg.Version.Windows); err != nil {
			return err
		}
	}
	if cfg.Version.DOS != "" {
		if err := collab.emu.SetDOS(cfg.Version.DOS); err != nil {
			return err
		}
	}
	for _, override := range cfg.DLL.Overrides {
		if err := collab.dlls.AddOption(override); err != nil {
			return err
		}
	}
	if cfg.Debug.Channels != "" {
		edits, err := debug.ParseFilter(cfg.Debug.Channels)
		if err != nil {
			return err
		}
		collab.registry.Apply(edits)
	}
	return nil
}

// configFailure reports a configuration problem and maps it to exit
// status 1.
func configFailure(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", invocationName(cmd), err)
	return &ExitError{Code: 1}
}

// parseFailure writes the diagnostic a parse error calls for and maps
// the error to exit status 1. Unknown options reprint the usage dump;
// debug filter errors reprint the filter grammar.
func parseFailure(cmd *cobra.Command, table options.Table, err error) error {
	errw := cmd.ErrOrStderr()
	var syntaxErr *debug.SyntaxError
	var unknown *options.UnknownOptionError
	switch {
	case errors.As(err, &syntaxErr):
		fmt.Fprintf(errw, "%s: %v\n", invocationName(cmd), syntaxErr)
		printDebugSyntax(errw)
	case errors.As(err, &unknown):
		fmt.Fprintf(errw, "%s: %v\n\n", invocationName(cmd), unknown)
		printUsage(errw, invocationName(cmd), table)
	default:
		fmt.Fprintf(errw, "%s: %v\n", invocationName(cmd), err)
	}
	return &ExitError{Code: 1}
}

// launchProgram hands the surviving argument vector to the target
// program. The child inherits the process environment, including the
// freshly persisted inherited-options variable, and receives
// termination signals sent to the launcher.
func launchProgram(cmd *cobra.Command, collab *collaborators, res *options.Result) error {
	app := res.Args()
	child := exec.Command(app[1], app[2:]...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	stop := forwardSignals(cmd.ErrOrStderr(), collab.registry, child)
	err := runProgram(child)
	stop()
	if err == nil {
		return nil
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return &ExitError{Code: exit.ExitCode()}
	}
	return fmt.Errorf("cannot run %s: %w", app[1], err)
}

// runProgram is swapped out by tests.
var runProgram = func(child *exec.Cmd) error { return child.Run() }
