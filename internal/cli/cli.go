// Package cli implements the bomgen command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/activestate/bomgen/pkg/buildinfo"
	"github.com/activestate/bomgen/pkg/config"
	"github.com/activestate/bomgen/pkg/errors"
	"github.com/activestate/bomgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "bomgen"

	// javaHomeEnv names the JDK installation next to which the m2 repository lives.
	javaHomeEnv = "JAVA_HOME"
)

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

	// Getenv looks up environment variables; tests replace it.
	Getenv func(string) string

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself generates a BOM.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.generateCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML file overriding BOM coordinates, skipped packaging and entities")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.scanCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner loads the configuration and creates a pipeline runner.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cfg, c.Logger), nil
}

// =============================================================================
// Argument Helpers
// =============================================================================

// requireProjectName is a cobra.PositionalArgs that rejects a missing or
// unusable project name before anything touches the filesystem.
func requireProjectName(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New(errors.ErrCodeUsage, "missing required argument <project_name>\nusage: %s", cmd.UseLine())
	}
	if len(args) > 2 {
		return errors.New(errors.ErrCodeUsage, "too many arguments\nusage: %s", cmd.UseLine())
	}
	return errors.ValidateProjectName(args[0])
}

// rootArg returns the optional repository root argument at index i.
func rootArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
