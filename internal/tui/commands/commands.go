// Package commands provides TUI command constructors and message types.
package commands

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/quadrant/internal/export"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ExportedMsg is sent when a PNG snapshot was written.
type ExportedMsg struct {
	Path string
}

var writeClipboard = clipboard.WriteAll

// ExportPNG renders scene to path.
func ExportPNG(path string, scene export.Scene) tea.Cmd {
	return func() tea.Msg {
		if err := export.WritePNG(path, scene); err != nil {
			return ErrMsg{Err: err}
		}
		return ExportedMsg{Path: path}
	}
}

// CopyPlacements copies the placement table to the system clipboard as
// tab separated text.
func CopyPlacements(scene export.Scene) tea.Cmd {
	return func() tea.Msg {
		if len(scene.Items) == 0 {
			return StatusMsgCmd{Msg: "Nothing placed"}
		}
		var buf bytes.Buffer
		if err := export.WriteTSV(&buf, scene); err != nil {
			return ErrMsg{Err: err}
		}
		if err := writeClipboard(buf.String()); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: fmt.Sprintf("Copied %d placements", len(scene.Items))}
	}
}
