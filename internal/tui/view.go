package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/quadrant/internal/drag"
)

// View renders the model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if !m.layout.Fits {
		return m.tooSmallView()
	}

	snap := m.coord.Snapshot()
	labels := m.config.Labels
	frameWidth := m.layout.Cols + 2
	pad := strings.Repeat(" ", gutterWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.verticalCaption(labels.Left),
		m.styles.Frame.Render(m.canvasGrid(snap).render()),
		m.verticalCaption(labels.Right),
		" ",
		m.paletteColumn(snap),
	)

	lines := []string{
		pad + m.styles.Title.Render(ansi.Truncate(labels.Title, m.width-gutterWidth, "…")),
		pad + m.centered(strings.ToUpper(labels.Top), frameWidth),
		body,
		pad + m.centered(strings.ToUpper(labels.Bottom), frameWidth),
		m.footer(snap),
	}
	return strings.Join(lines, "\n")
}

func (m Model) centered(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	return m.styles.Caption.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, s))
}

// verticalCaption spells s top to bottom alongside the canvas frame.
func (m Model) verticalCaption(s string) string {
	height := m.layout.Rows + 2
	runes := []rune(strings.ToUpper(s))
	if len(runes) > height {
		runes = runes[:height]
	}
	start := (height - len(runes)) / 2

	lines := make([]string, height)
	for i := range lines {
		ch := " "
		if j := i - start; j >= 0 && j < len(runes) {
			ch = m.styles.Caption.Render(string(runes[j]))
		}
		lines[i] = " " + ch + " "
	}
	return strings.Join(lines, "\n")
}

func (m Model) paletteColumn(snap drag.Snapshot) string {
	if len(snap.Palette) == 0 {
		return m.styles.Hint.Render("(empty)")
	}
	visible := m.layout.VisibleSlots(len(snap.Palette))
	slots := make([]string, visible, visible+1)
	for i, e := range snap.Palette[:visible] {
		name := ansi.Truncate(e.Name, paletteWidth-2, "…")
		switch ghost, ok := snap.Ghost(i); {
		case ok:
			slots[i] = m.styles.SlotHover.Render(m.styles.SlotGhost.Render(ansi.Truncate(ghost.Name, paletteWidth-2, "…")))
		case snap.HoveredSlot == i:
			slots[i] = m.styles.SlotHover.Render(name)
		default:
			slots[i] = m.styles.Slot.Render(name)
		}
	}
	if hidden := len(snap.Palette) - visible; hidden > 0 {
		slots = append(slots, m.styles.Hint.Render(fmt.Sprintf(" +%d more", hidden)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, slots...)
}

func (m Model) footer(snap drag.Snapshot) string {
	var status string
	switch {
	case m.statusMsg != "" && m.err != nil:
		status = m.styles.Error.Render(m.statusMsg)
	case m.statusMsg != "":
		status = m.styles.Status.Render(m.statusMsg)
	case snap.DraggingEntry != nil:
		status = m.styles.Status.Render("Dragging " + snap.DraggingEntry.Name)
	default:
		if sel, ok := snap.Selected(); ok {
			q := m.config.QuadrantLabel(snap.Geometry.Classify(sel))
			status = m.styles.Hint.Render(fmt.Sprintf("%s · %s", sel.Name, q))
		}
	}

	h := m.help.View(m.keys)
	if status == "" {
		return h
	}
	return status + "  " + h
}

func (m Model) tooSmallView() string {
	minW := 2*gutterWidth + 3 + paletteWidth + 2*minCanvasRows
	minH := chromeRows + m.footerRows() + minCanvasRows
	msg := m.styles.Error.Render("Terminal too small") + "\n" +
		m.styles.Hint.Render(fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, m.width, m.height))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}
