// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/quadrant/internal/board"
)

// Config holds the application configuration.
type Config struct {
	Canvas  CanvasConfig  `toml:"canvas"`
	Catalog []EntryConfig `toml:"catalog"`
	Labels  LabelsConfig  `toml:"labels"`
	UI      UIConfig      `toml:"ui"`
	Export  ExportConfig  `toml:"export"`
}

// CanvasConfig holds the fixed canvas constants, in pixels.
type CanvasConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	ItemSize float64 `toml:"item_size"`
	GridSize float64 `toml:"grid_size"` // spacing of the background grid
}

// EntryConfig is one catalog entry.
type EntryConfig struct {
	Name     string `toml:"name"`
	ImageURL string `toml:"image_url"`
}

// LabelsConfig holds the decorative axis and quadrant captions.
type LabelsConfig struct {
	Title       string `toml:"title"`
	Top         string `toml:"top"`
	Bottom      string `toml:"bottom"`
	Left        string `toml:"left"`
	Right       string `toml:"right"`
	TopLeft     string `toml:"top_left"`
	TopRight    string `toml:"top_right"`
	BottomLeft  string `toml:"bottom_left"`
	BottomRight string `toml:"bottom_right"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "paper", "mocha"
}

// ExportConfig holds PNG snapshot settings.
type ExportConfig struct {
	Dir string `toml:"dir"` // empty means the working directory
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:    700,
			Height:   700,
			ItemSize: 50,
			GridSize: 50,
		},
		Catalog: []EntryConfig{
			{Name: "MDB", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/b/b4/MDB_Logo.png/120px-MDB_Logo.png"},
			{Name: "PT", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c3/PT_%28Brazil%29_logo_2021.svg/60px-PT_%28Brazil%29_logo_2021.svg.png"},
			{Name: "PP", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/e4/Progressistas_logo.png/120px-Progressistas_logo.png"},
			{Name: "PRD", ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/5/54/Logomarca_Partido_Renova%C3%A7%C3%A3o_Democr%C3%A1tica.png/120px-Logomarca_Partido_Renova%C3%A7%C3%A3o_Democr%C3%A1tica.png"},
		},
		Labels: LabelsConfig{
			Title:       "Diagrama de Politico",
			Top:         "Autoritarismo",
			Bottom:      "Libertarianismo",
			Left:        "Controle Econômico",
			Right:       "Liberdade Econômica",
			TopLeft:     "Totalitarismo",
			TopRight:    "Conservadorismo",
			BottomLeft:  "Progressismo",
			BottomRight: "Liberalismo",
		},
		UI: UIConfig{
			Theme: "paper",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "quadrant", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Export.Dir = expandPath(cfg.Export.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	// A catalog in the file replaces the default one instead of merging into it.
	var file struct {
		Catalog []EntryConfig `toml:"catalog"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if file.Catalog != nil {
		cfg.Catalog = nil
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	floats := []struct {
		env string
		dst *float64
	}{
		{"QUADRANT_CANVAS_WIDTH", &cfg.Canvas.Width},
		{"QUADRANT_CANVAS_HEIGHT", &cfg.Canvas.Height},
		{"QUADRANT_ITEM_SIZE", &cfg.Canvas.ItemSize},
	}
	for _, f := range floats {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", f.env, err)
		}
		*f.dst = n
	}

	if v := os.Getenv("QUADRANT_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("QUADRANT_EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return err
	}
	if c.Canvas.GridSize < 0 || math.IsNaN(c.Canvas.GridSize) || math.IsInf(c.Canvas.GridSize, 0) {
		return errors.New("grid_size must be finite and not negative")
	}
	if len(c.Catalog) == 0 {
		return errors.New("catalog must have at least one entry")
	}
	seen := make(map[string]bool, len(c.Catalog))
	for i, e := range c.Catalog {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return fmt.Errorf("catalog entry %d has no name", i)
		}
		if seen[name] {
			return fmt.Errorf("duplicate catalog entry: %s", name)
		}
		seen[name] = true
	}
	return nil
}

// Geometry returns the canvas constants consumed by the board.
func (c *Config) Geometry() board.Geometry {
	return board.Geometry{
		Width:    c.Canvas.Width,
		Height:   c.Canvas.Height,
		ItemSize: c.Canvas.ItemSize,
	}
}

// Entries converts the catalog into palette entries, in order.
func (c *Config) Entries() []board.Entry {
	out := make([]board.Entry, len(c.Catalog))
	for i, e := range c.Catalog {
		out[i] = board.Entry{Name: strings.TrimSpace(e.Name), ImageURL: e.ImageURL}
	}
	return out
}

// QuadrantLabel returns the caption for q.
func (c *Config) QuadrantLabel(q board.Quadrant) string {
	return c.Labels.Quadrant(q)
}

// Quadrant returns the caption for q.
func (l LabelsConfig) Quadrant(q board.Quadrant) string {
	switch q {
	case board.TopLeft:
		return l.TopLeft
	case board.TopRight:
		return l.TopRight
	case board.BottomLeft:
		return l.BottomLeft
	case board.BottomRight:
		return l.BottomRight
	default:
		return q.String()
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
