// Package tui provides the terminal user interface for quadrant.
package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/quadrant/internal/config"
	"github.com/javiermolinar/quadrant/internal/drag"
	"github.com/javiermolinar/quadrant/internal/export"
	"github.com/javiermolinar/quadrant/internal/logging"
	"github.com/javiermolinar/quadrant/internal/tui/theme"
)

// Model is the main TUI model. All board state lives in the coordinator;
// the model only tracks the gesture in progress and screen geometry.
type Model struct {
	config *config.Config
	coord  *drag.Coordinator
	logger *log.Logger

	styles *Styles
	keys   keyMap
	help   help.Model

	width   int
	height  int
	layout  Layout
	mounted bool

	gesture gesture

	statusMsg  string
	statusTime time.Time
	err        error

	nowFunc func() time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithNow sets the clock used for snapshot names and item ids.
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.nowFunc = now }
}

// WithLogger routes TUI and drag logs to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// New creates a TUI model for cfg.
func New(cfg *config.Config, opts ...Option) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}

	m := Model{
		config:  cfg,
		logger:  logging.Discard(),
		styles:  NewStyles(theme.NewPalette(t)),
		keys:    newKeyMap(),
		help:    help.New(),
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.coord = drag.NewCoordinator(cfg.Entries(), cfg.Geometry(),
		drag.WithLogger(m.logger),
		drag.WithClock(m.nowFunc),
		drag.WithInvariantChecks(),
	)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Snapshot returns the board as currently rendered.
func (m Model) Snapshot() drag.Snapshot {
	return m.coord.Snapshot()
}

func (m Model) scene() export.Scene {
	return export.NewScene(m.config, m.coord.Snapshot().Items)
}

func (m Model) exportPath() string {
	return filepath.Join(m.config.Export.Dir, export.FileName(m.nowFunc()))
}

// resize recomputes the layout and keeps the canvas mount in step with it.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.layout = NewLayout(width, height, m.footerRows(), m.config.Geometry())

	switch {
	case m.layout.Fits:
		m.coord.Dispatch(drag.Mount{Origin: m.layout.Origin()})
		m.mounted = true
	case m.mounted:
		m.abandonGesture()
		m.coord.Dispatch(drag.Unmount{})
		m.mounted = false
	}
	m.logger.Debug("resize", "width", width, "height", height, "fits", m.layout.Fits,
		"cols", m.layout.Cols, "rows", m.layout.Rows)
}

// footerRows is the height of the key help, which grows when expanded.
func (m Model) footerRows() int {
	return lipgloss.Height(m.help.View(m.keys))
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI, writing a debug log to logging.DebugLogPath
// when debug is set.
func RunWithDebug(cfg *config.Config, debug bool) error {
	var opts []Option
	if debug {
		l, closer, err := logging.OpenFile(logging.DebugLogPath)
		if err != nil {
			return err
		}
		defer closer.Close()
		l.Debug("debug start", "config", fmt.Sprintf("%dx%d", int(cfg.Canvas.Width), int(cfg.Canvas.Height)))
		opts = append(opts, WithLogger(l))
	}

	p := tea.NewProgram(New(cfg, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
