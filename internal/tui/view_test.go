package tui

import (
	"fmt"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/quadrant/internal/config"
	"github.com/javiermolinar/quadrant/internal/tui/commands"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestViewLoading(t *testing.T) {
	m := New(config.Default())
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before resize = %q", got)
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	lines := strings.Split(view, "\n")

	if want := m.layout.Rows + chromeRows + 1; len(lines) != want {
		t.Errorf("got %d lines, want %d", len(lines), want)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w > m.width {
			t.Errorf("line %d is %d wide, terminal is %d", i, w, m.width)
		}
	}

	for _, want := range []string{
		"Diagrama de Politico",
		"AUTORITARISMO",
		"LIBERTARIANISMO",
		"Totalitarismo",
		"Liberalismo",
		"MDB", "PT", "PP", "PRD",
		"quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	// the canvas frame sits right after the left gutter
	if !strings.HasPrefix(lines[2], strings.Repeat(" ", gutterWidth)+"┌") {
		t.Errorf("frame not at column %d: %q", gutterWidth, lines[2])
	}
}

func TestViewPlacedItem(t *testing.T) {
	m := placeMDB(t, newTestModel(t, nil))
	m = update(t, m, press(31, 16))
	m = update(t, m, release(31, 16))

	lines := strings.Split(m.View(), "\n")
	row := []rune(lines[16])
	if got := string(row[30:33]); got != "MDB" {
		t.Errorf("item label at row 16 = %q", got)
	}
	if row[34] != '×' {
		t.Errorf("remove button missing, got %q", string(row[34]))
	}
	if !strings.Contains(m.View(), "MDB · Liberalismo") {
		t.Error("footer does not describe the selection")
	}
}

func TestViewGhostWhileHovering(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, press(66, 3))
	m = update(t, m, motion(66, 9))

	lines := strings.Split(m.View(), "\n")
	// slot 2 content row
	if !strings.Contains(lines[9], "MDB") {
		t.Errorf("ghost missing from hovered slot: %q", lines[9])
	}
	if strings.Contains(lines[9], "PP") {
		t.Errorf("hovered slot still shows its own entry: %q", lines[9])
	}
	if !strings.Contains(m.View(), "Dragging MDB") {
		t.Error("footer does not show the drag")
	}
}

func TestViewFitsTerminal(t *testing.T) {
	long := config.Default()
	for i := 0; i < 11; i++ {
		long.Catalog = append(long.Catalog, config.EntryConfig{Name: fmt.Sprintf("P%02d", i)})
	}

	tests := []struct {
		name string
		cfg  *config.Config
		w, h int
	}{
		{"roomy", nil, 120, 40},
		{"short", nil, 120, 30},
		{"small", nil, 60, 20},
		{"long catalog", long, 120, 40},
		{"long catalog short", long, 120, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, tt.cfg)
			m = update(t, m, tea.WindowSizeMsg{Width: tt.w, Height: tt.h})
			if !m.layout.Fits {
				t.Fatal("layout does not fit")
			}
			for _, expanded := range []bool{false, true} {
				if expanded {
					m = update(t, m, keyPress("?"))
				}
				if n := len(strings.Split(m.View(), "\n")); n > tt.h {
					t.Errorf("help expanded %v: view is %d lines, terminal is %d", expanded, n, tt.h)
				}
			}
		})
	}
}

func TestViewPaletteOverflow(t *testing.T) {
	cfg := config.Default()
	for i := 0; i < 11; i++ {
		cfg.Catalog = append(cfg.Catalog, config.EntryConfig{Name: fmt.Sprintf("P%02d", i)})
	}
	m := newTestModel(t, cfg)

	view := m.View()
	if !strings.Contains(view, "+6 more") {
		t.Errorf("overflow line missing, palette has %d entries", len(m.Snapshot().Palette))
	}
	if strings.Contains(view, "P10") {
		t.Error("entry past the last visible slot was drawn")
	}

	// placing the first entry pulls a hidden one into view
	m = placeMDB(t, m)
	if !strings.Contains(m.View(), "+5 more") {
		t.Error("overflow count not updated after a placement")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Errorf("got %q", m.View())
	}
}

func TestViewStatus(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, commands.StatusMsgCmd{Msg: "Copied 2 placements"})
	if !strings.Contains(m.View(), "Copied 2 placements") {
		t.Error("status message not shown")
	}
}
