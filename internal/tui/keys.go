package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/quadrant/internal/drag"
	"github.com/javiermolinar/quadrant/internal/tui/commands"
)

type keyMap struct {
	Remove   key.Binding
	Deselect key.Binding
	Export   key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Remove: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", "remove selected"),
		),
		Deselect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "deselect"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export png"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy placements"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Remove, k.Export, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Remove, k.Deselect},
		{k.Export, k.Copy},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("key", "key", msg.String())

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.width > 0 {
			m.resize(m.width, m.height)
		}

	case key.Matches(msg, m.keys.Remove):
		if sel, ok := m.coord.Snapshot().Selected(); ok {
			m.coord.Dispatch(drag.RemoveItem{ID: sel.ID})
		}

	case key.Matches(msg, m.keys.Deselect):
		m.abandonGesture()
		m.coord.Dispatch(drag.PointerDownOutside{})

	case key.Matches(msg, m.keys.Export):
		return m, commands.ExportPNG(m.exportPath(), m.scene())

	case key.Matches(msg, m.keys.Copy):
		return m, commands.CopyPlacements(m.scene())
	}
	return m, nil
}
