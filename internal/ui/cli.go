package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/quadrant/internal/config"
	"github.com/javiermolinar/quadrant/internal/logging"
	"github.com/javiermolinar/quadrant/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// ErrNoTerminal is returned when the interactive board is started without a tty.
var ErrNoTerminal = errors.New("the board needs an interactive terminal (try `quadrant render`)")

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool // write the TUI debug log
	verbose bool
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "quadrant",
		Short: "Drag catalog entries onto a four-quadrant diagram",
		Long: `Quadrant opens a terminal canvas split into four colored quadrants.

Drag entries from the palette on the right onto the canvas with the mouse,
move them around, and drop them back on the palette to reorder it.
Selected items can be removed, which returns them to the palette.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.noColor {
				DisableColor()
			}
			level := log.InfoLevel
			if a.verbose {
				level = log.DebugLevel
			}
			l := logging.New(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), l))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return ErrNoTerminal
			}
			logging.FromContext(cmd.Context()).Debug("starting board", "theme", a.config.UI.Theme)
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	flags := a.root.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Write a debug log to "+logging.DebugLogPath)
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log debug messages to stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.catalogCmd())
	a.root.AddCommand(a.renderCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quadrant %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output and logs.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
