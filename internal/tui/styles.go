package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/quadrant/internal/tui/theme"
)

// dashedBorder draws palette slots.
var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	Palette *theme.Palette

	Title   lipgloss.Style
	Caption lipgloss.Style
	Frame   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style

	Slot      lipgloss.Style
	SlotHover lipgloss.Style
	SlotGhost lipgloss.Style
}

// NewStyles creates styles from a palette.
func NewStyles(p *theme.Palette) *Styles {
	slot := lipgloss.NewStyle().
		Border(dashedBorder).
		BorderForeground(p.FgMuted).
		Foreground(p.Fg).
		Width(paletteWidth - 2).
		Align(lipgloss.Center)

	return &Styles{
		Palette: p,

		Title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Caption: lipgloss.NewStyle().Bold(true).Foreground(p.Fg),
		Frame:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(p.Fg),
		Status:  lipgloss.NewStyle().Foreground(p.Accent),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(p.Remove),
		Hint:    lipgloss.NewStyle().Foreground(p.FgMuted),

		Slot:      slot,
		SlotHover: slot.BorderForeground(p.Accent),
		SlotGhost: lipgloss.NewStyle().Italic(true).Foreground(p.Ghost),
	}
}
