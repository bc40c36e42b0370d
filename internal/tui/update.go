package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/quadrant/internal/tui/commands"
)

const statusTTL = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case commands.ExportedMsg:
		m.logger.Info("exported snapshot", "path", msg.Path)
		return m, m.setStatus(fmt.Sprintf("Saved %s", msg.Path))

	case commands.ErrMsg:
		m.logger.Error("command failed", "err", msg.Err)
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = m.nowFunc().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if m.nowFunc().After(m.statusTime) {
			m.statusMsg = ""
			m.err = nil
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.statusMsg = s
	m.err = nil
	m.statusTime = m.nowFunc().Add(statusTTL)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
