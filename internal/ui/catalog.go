package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the entries the palette starts with",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			entries := a.config.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, colorMuted.Sprint("(empty catalog)"))
				return nil
			}
			for i, e := range entries {
				fmt.Fprintf(out, "%2d  %-10s %s\n", i+1, colorHeader.Sprint(e.Name), colorMuted.Sprint(e.ImageURL))
			}
			return nil
		},
	}
}
