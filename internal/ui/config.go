package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/quadrant/internal/config"
	"github.com/javiermolinar/quadrant/internal/logging"
	"github.com/javiermolinar/quadrant/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var (
		path     string
		initFile bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration quadrant is running with, after defaults
and QUADRANT_* environment overrides are applied.

With --init, writes the defaults to the config file if it does not exist yet.

Example:
  quadrant config
  quadrant config --init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s %s\n\n", colorMuted.Sprint("Config file:"), path)

			if initFile {
				created, err := initConfig(path)
				if err != nil {
					return err
				}
				if created {
					logger.Info("created config", "path", path)
				} else {
					logger.Info("config already exists", "path", path)
				}
			}

			if !theme.IsAvailable(a.config.UI.Theme) {
				logger.Warn("unknown theme, the board will use the default", "theme", a.config.UI.Theme, "available", theme.Available())
			}
			return printConfig(out, a.config)
		},
	}
	cmd.Flags().StringVar(&path, "path", config.DefaultConfigPath(), "Config file path")
	cmd.Flags().BoolVar(&initFile, "init", false, "Write the default config if none exists")
	return cmd
}

// initConfig writes the defaults to path unless a file is already there.
func initConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking config: %w", err)
	}
	if err := config.Default().SaveTo(path); err != nil {
		return false, fmt.Errorf("saving config: %w", err)
	}
	return true, nil
}

func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Fprintln(w, colorHeader.Sprint("Current configuration:"))
	fmt.Fprintln(w, "──────────────────────")
	_, err = w.Write(data)
	return err
}
