package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/quadrant/internal/board"
)

// Color definitions for consistent styling across the CLI.
var (
	colorHeader = color.New(color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)

	// Quadrant colors follow the canvas fills.
	colorQuadrant = [4]*color.Color{
		color.New(color.FgRed),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
)

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatQuadrant(q board.Quadrant, s string) string {
	if q < board.TopLeft || q > board.BottomRight {
		return s
	}
	return colorQuadrant[q].Sprint(s)
}
