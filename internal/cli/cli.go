// Package cli implements the archdiagrams command-line interface.
//
// Invoked without a subcommand, archdiagrams renders every registered
// architecture diagram into docs/diagrams and exits non-zero if any of them
// failed. The list and dot subcommands inspect the scene registry without
// writing files.
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log; --verbose (-v)
// switches to debug level and logs scene and render lifecycle events.
// Human-readable results go to stdout.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/macro-ai/archdiagrams/pkg/buildinfo"
	"github.com/macro-ai/archdiagrams/pkg/config"
	"github.com/macro-ai/archdiagrams/pkg/scenes"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used in help text and completions.
const appName = "archdiagrams"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // human-readable output; defaults to os.Stdout

	configPath string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// EnableDebug switches to debug logging and installs logging hooks for
// scene and render events.
func (c *CLI) EnableDebug() {
	c.SetLogLevel(LogDebug)
	installLogHooks(c.Logger)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running it without a subcommand generates the diagrams.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.generateCommand()
	root.Use = appName
	root.Short = "Generate the architecture diagrams"
	root.Long = `archdiagrams renders the deployment architecture diagrams (current hobby
deployment, consolidated ECS, future scaling, Neon branching strategy) to
image files, by default PNGs in docs/diagrams.

It exits with status 1 if any diagram failed to render.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML config file (output dir, format, custom scenes)")

	// Register all subcommands
	root.AddCommand(c.listCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Registry
// =============================================================================

// loadConfig reads the --config file, or returns the defaults when none
// was given.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(c.configPath)
}

// registry returns the built-in scenes followed by the custom scenes of cfg.
// defaultScenes supplies the compiled-in scenes.
var defaultScenes = scenes.Default

func registry(cfg config.Config) (*scenes.Registry, error) {
	r := defaultScenes()
	if err := scenes.RegisterConfig(r, cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// sceneKeys completes scene keys for commands taking one as argument.
func (c *CLI) sceneKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := c.loadConfig()
	if err != nil {
		cfg = config.Default()
	}
	r, err := registry(cfg)
	if err != nil {
		r = scenes.Default()
	}
	return r.Keys(), cobra.ShellCompDirectiveNoFileComp
}
