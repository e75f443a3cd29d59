// Package cli implements the patchgrid command-line interface.
//
// patchgrid takes five positional integers and writes every non-overlapping
// placement of N patches on a grid to its own text file:
//
//	patchgrid <grid_width> <grid_height> <number_of_patches> <patch_width> <patch_height>
//
// Layouts go to layouts<W>x<H>/ under the output root (the working directory
// unless --output-root or PATCHGRID_OUTPUT_ROOT says otherwise).
//
// # Logging
//
// --verbose (-v) enables debug-level logging on stderr. The logger is passed
// through context.Context so the run can report progress.
//
// # Errors
//
// Invalid arguments are reported as *errors.Error values whose message is the
// text shown to the user; main prints it to stdout and exits with status 1.
// Failures while writing exit with status 2.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/patchgrid/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for usage text and display.
	appName = "patchgrid"

	// envOutputRoot overrides the default output root.
	envOutputRoot = "PATCHGRID_OUTPUT_ROOT"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Execute runs the root command with args (normally os.Args[1:]).
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(normalizeArgs(args))
	return root.ExecuteContext(ctx)
}

// RootCommand creates the root cobra command. The root command is the
// generator itself; there are no subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		opts    generateFlags
	)

	root := &cobra.Command{
		Use:   appName + " " + argsUsage,
		Short: "Enumerate non-overlapping patch layouts on a grid",
		Long: `patchgrid enumerates every placement of N non-overlapping rectangular patches
on a grid and writes each layout to its own text file.

The base grid has rows of 'r' alternating with rows of 'r'/'Q'. Each patch is
stamped with its 1-based number. Files are written to layouts<W>x<H>/ as
layout_<W>x<H>_<counter>_<N>_<patchW>x<patchH>.txt.

Grid width and height must be between 1 and 16.`,
		Example:       "  patchgrid 4 4 2 2 1\n  patchgrid --dry-run 8 8 3 2 2",
		Version:       buildinfo.Version,
		Args:          exactArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			c.Logger.Debug("build", "info", buildinfo.String())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(flagError)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.outputRoot, "output-root", "o", defaultOutputRoot(),
		"directory that receives layouts<W>x<H>/ (env "+envOutputRoot+")")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "count layouts without writing files")
	root.Flags().BoolVar(&opts.manifest, "manifest", false, "write manifest.toml describing the run")

	return root
}

// =============================================================================
// Paths
// =============================================================================

// defaultOutputRoot returns $PATCHGRID_OUTPUT_ROOT, or "." when unset.
func defaultOutputRoot() string {
	if root := os.Getenv(envOutputRoot); root != "" {
		return root
	}
	return "."
}
