// Package export renders a finished board outside the terminal: as a PNG
// snapshot drawn with gg, or as a plain placement table.
package export

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/javiermolinar/quadrant/internal/board"
	"github.com/javiermolinar/quadrant/internal/config"
)

// Scene is everything needed to draw the canvas once.
type Scene struct {
	Geometry board.Geometry
	GridSize float64
	Labels   config.LabelsConfig
	Items    []board.PlacedItem
}

// NewScene pairs the configured canvas with a set of placed items.
func NewScene(cfg *config.Config, items []board.PlacedItem) Scene {
	return Scene{
		Geometry: cfg.Geometry(),
		GridSize: cfg.Canvas.GridSize,
		Labels:   cfg.Labels,
		Items:    items,
	}
}

// Row is one line of the placement table.
type Row struct {
	Name     string
	X, Y     float64
	Quadrant board.Quadrant
	Label    string
	Selected bool
}

// Rows lists the placed items in placement order with their quadrant.
func (s Scene) Rows() []Row {
	rows := make([]Row, 0, len(s.Items))
	for _, it := range s.Items {
		q := s.Geometry.Classify(it)
		rows = append(rows, Row{
			Name:     it.Name,
			X:        it.X,
			Y:        it.Y,
			Quadrant: q,
			Label:    s.Labels.Quadrant(q),
			Selected: it.Selected,
		})
	}
	return rows
}

// WriteTSV writes one tab separated line per item: name, x, y, quadrant.
func WriteTSV(w io.Writer, s Scene) error {
	for _, r := range s.Rows() {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, formatCoord(r.X), formatCoord(r.Y), r.Label); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes the placement table aligned for a terminal.
func WriteTable(w io.Writer, s Scene) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tX\tY\tQUADRANT\t")
	for _, r := range s.Rows() {
		mark := ""
		if r.Selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Name, formatCoord(r.X), formatCoord(r.Y), r.Label, mark)
	}
	return tw.Flush()
}

// FileName is the default snapshot name for t.
func FileName(t time.Time) string {
	return "quadrant-" + t.Format("20060102-150405") + ".png"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
