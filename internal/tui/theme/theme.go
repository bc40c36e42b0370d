// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "paper"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name    string `toml:"name"`
	Bg      string `toml:"bg"`       // Screen background
	Fg      string `toml:"fg"`       // Primary foreground
	FgMuted string `toml:"fg_muted"` // Hints, footer
	Accent  string `toml:"accent"`   // Title, hovered palette slot
	Divider string `toml:"divider"`  // Center cross

	QuadrantTopLeft     string `toml:"quadrant_top_left"`
	QuadrantTopRight    string `toml:"quadrant_top_right"`
	QuadrantBottomLeft  string `toml:"quadrant_bottom_left"`
	QuadrantBottomRight string `toml:"quadrant_bottom_right"`

	ItemBg   string `toml:"item_bg"`  // Placed item and palette entry tiles
	Selected string `toml:"selected"` // Outline of the selected item
	Remove   string `toml:"remove"`   // Remove button
}

// Load loads a theme by name from embedded files.
// Falls back to the default theme if the name is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.FgMuted == "" {
		t.FgMuted = blendColors(t.Fg, t.Bg, 0.5)
	}
	if t.Divider == "" {
		t.Divider = t.Fg
	}
	if t.ItemBg == "" {
		t.ItemBg = t.Bg
	}
	if t.Selected == "" {
		t.Selected = t.Accent
	}
	if t.Remove == "" {
		t.Remove = t.Accent
	}
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"paper", "mocha"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
