package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/quadrant/internal/board"
	"github.com/javiermolinar/quadrant/internal/drag"
)

// cell is one terminal cell of the canvas interior.
type cell struct {
	ch        rune
	fg, bg    lipgloss.Color
	bold      bool
	underline bool
}

func (c cell) sameStyle(o cell) bool {
	return c.fg == o.fg && c.bg == o.bg && c.bold == o.bold && c.underline == o.underline
}

type cellGrid [][]cell

func (g cellGrid) put(col, row int, c cell) {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return
	}
	g[row][col] = c
}

// text writes s starting at col, keeping the cell backgrounds.
func (g cellGrid) text(col, row int, s string, fg lipgloss.Color, bold, underline bool) {
	if row < 0 || row >= len(g) {
		return
	}
	for i, r := range []rune(s) {
		c := col + i
		if c < 0 || c >= len(g[row]) {
			continue
		}
		g[row][c] = cell{ch: r, fg: fg, bg: g[row][c].bg, bold: bold, underline: underline}
	}
}

// render collapses runs of equally styled cells into styled strings.
func (g cellGrid) render() string {
	lines := make([]string, len(g))
	for r, row := range g {
		var b strings.Builder
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && row[c].sameStyle(row[start]) {
				continue
			}
			run := make([]rune, 0, c-start)
			for _, cl := range row[start:c] {
				run = append(run, cl.ch)
			}
			st := row[start]
			b.WriteString(lipgloss.NewStyle().
				Foreground(st.fg).
				Background(st.bg).
				Bold(st.bold).
				Underline(st.underline).
				Render(string(run)))
			start = c
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (l Layout) quadrantAt(col, row int) board.Quadrant {
	right := col >= l.Cols/2
	bottom := row >= l.Rows/2
	switch {
	case !right && !bottom:
		return board.TopLeft
	case right && !bottom:
		return board.TopRight
	case !right && bottom:
		return board.BottomLeft
	default:
		return board.BottomRight
	}
}

// gridLines returns the cell indexes crossed by lines every step pixels.
func gridLines(extent, step, cellSize float64, n int) map[int]bool {
	out := make(map[int]bool)
	if step <= 0 || cellSize <= 0 {
		return out
	}
	for v := step; v < extent; v += step {
		if i := int(v / cellSize); i < n {
			out[i] = true
		}
	}
	return out
}

// canvasGrid paints quadrants, grid, captions and items for snap.
func (m Model) canvasGrid(snap drag.Snapshot) cellGrid {
	l := m.layout
	p := m.styles.Palette
	g := make(cellGrid, l.Rows)

	vLines := gridLines(snap.Geometry.Width, m.config.Canvas.GridSize, l.CellW, l.Cols)
	hLines := gridLines(snap.Geometry.Height, m.config.Canvas.GridSize, l.CellH, l.Rows)
	midCol, midRow := l.Cols/2, l.Rows/2

	for r := range g {
		g[r] = make([]cell, l.Cols)
		for c := range g[r] {
			q := l.quadrantAt(c, r)
			cl := cell{ch: ' ', fg: p.GridDot[q], bg: p.Quadrants[q]}
			switch {
			case c == midCol && r == midRow:
				cl.ch, cl.fg = '┼', p.Divider
			case c == midCol:
				cl.ch, cl.fg = '│', p.Divider
			case r == midRow:
				cl.ch, cl.fg = '─', p.Divider
			case vLines[c] && hLines[r]:
				cl.ch = '·'
			}
			g[r][c] = cl
		}
	}

	m.paintCornerLabels(g)

	for _, it := range snap.Items {
		m.paintItem(g, it, snap)
	}
	return g
}

func (m Model) paintCornerLabels(g cellGrid) {
	l := m.layout
	p := m.styles.Palette
	width := l.Cols/2 - 3
	for q := board.TopLeft; q <= board.BottomRight; q++ {
		text := ansi.Truncate(m.config.Labels.Quadrant(q), width, "…")
		n := len([]rune(text))
		col, row := 1, 0
		if q == board.TopRight || q == board.BottomRight {
			col = l.Cols - 1 - n
		}
		if q == board.BottomLeft || q == board.BottomRight {
			row = l.Rows - 1
		}
		g.text(col, row, text, p.QuadrantText[q], true, false)
	}
}

func (m Model) paintItem(g cellGrid, it board.PlacedItem, snap drag.Snapshot) {
	p := m.styles.Palette
	box := m.layout.ItemBox(it, snap.Geometry.ItemSize)

	bg := p.ItemBg
	if snap.DraggingItemID == it.ID {
		bg = p.ItemDragBg
	}
	for r := box.Row; r < box.Row+box.Rows; r++ {
		for c := box.Col; c < box.Col+box.Cols; c++ {
			g.put(c, r, cell{ch: ' ', fg: p.ItemFg, bg: bg})
		}
	}

	label := ansi.Truncate(it.Name, box.Cols, "")
	n := len([]rune(label))
	fg := p.ItemFg
	if it.Selected {
		fg = p.Selected
	}
	g.text(box.Col+(box.Cols-n)/2, box.Row+(box.Rows-1)/2, label, fg, it.Selected, it.Selected)

	if it.Selected {
		rc, rr := m.layout.RemoveCell(box)
		g.put(rc, rr, cell{ch: '×', fg: p.TextOnRemove, bg: p.Remove, bold: true})
	}
}
