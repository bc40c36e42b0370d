package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/quadrant/internal/board"
	"github.com/javiermolinar/quadrant/internal/drag"
	"github.com/javiermolinar/quadrant/internal/export"
	"github.com/javiermolinar/quadrant/internal/logging"
)

type renderOptions struct {
	place   []string
	move    []string
	remove  []string
	selectN string
	out     string
}

func (a *App) renderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a board from flags and print or export it",
		Long: `Replays a scripted session without a terminal UI.

Positions are raw pointer coordinates with the canvas corner at 0,0, so
an item dropped at X,Y is centered there and clamped to the canvas.
Steps run in order: place, move, select, remove.

Example:
  quadrant render --place MDB=375,375 --place PT=40,600 --out board.png
  quadrant render --place PP=100,100 --move PP=600,100 --select PP`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.FromContext(cmd.Context())
			s := newScript(a.config.Entries(), a.config.Geometry(), logger)
			if err := s.run(opts); err != nil {
				return err
			}

			scene := export.NewScene(a.config, s.coord.Snapshot().Items)
			if err := printBoard(cmd.OutOrStdout(), scene, s.coord.Snapshot()); err != nil {
				return err
			}
			if opts.out != "" {
				if err := export.WritePNG(opts.out, scene); err != nil {
					return err
				}
				logger.Info("wrote snapshot", "path", opts.out)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&opts.place, "place", nil, "Drop a palette entry at NAME=X,Y (repeatable)")
	f.StringArrayVar(&opts.move, "move", nil, "Drag a placed item to NAME=X,Y (repeatable)")
	f.StringVar(&opts.selectN, "select", "", "Click a placed item to select it")
	f.StringArrayVar(&opts.remove, "remove", nil, "Return a placed item to the palette (repeatable)")
	f.StringVarP(&opts.out, "out", "o", "", "Write a PNG snapshot to this path")
	return cmd
}

// script drives a coordinator the way the board's mouse handling does.
type script struct {
	coord  *drag.Coordinator
	logger *log.Logger
}

func newScript(catalog []board.Entry, g board.Geometry, logger *log.Logger) *script {
	c := drag.NewCoordinator(catalog, g, drag.WithLogger(logger), drag.WithInvariantChecks())
	c.Dispatch(drag.Mount{Origin: board.Point{}})
	return &script{coord: c, logger: logger}
}

func (s *script) run(opts renderOptions) error {
	for _, arg := range opts.place {
		name, p, err := parsePlacement(arg)
		if err != nil {
			return err
		}
		s.place(name, p)
	}
	for _, arg := range opts.move {
		name, p, err := parsePlacement(arg)
		if err != nil {
			return err
		}
		s.move(name, p)
	}
	if opts.selectN != "" {
		s.selectItem(opts.selectN)
	}
	for _, name := range opts.remove {
		s.remove(name)
	}
	return nil
}

func (s *script) place(name string, p board.Point) {
	idx := -1
	for i, e := range s.coord.Snapshot().Palette {
		if e.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Warn("not in the palette, skipping", "step", "place", "name", name)
		return
	}

	payload, ok := s.coord.BeginEntryDrag(idx)
	if !ok {
		return
	}
	res := s.coord.Dispatch(drag.CanvasDrop{Pointer: p, Payload: payload})
	s.coord.Dispatch(drag.EntryDragEnd{})
	if !res.Applied {
		s.logger.Warn("drop ignored", "step", "place", "name", name, "reason", res.Reason)
	}
}

func (s *script) itemID(step, name string) (string, bool) {
	for _, it := range s.coord.Snapshot().Items {
		if it.Name == name {
			return it.ID, true
		}
	}
	s.logger.Warn("not on the canvas, skipping", "step", step, "name", name)
	return "", false
}

func (s *script) move(name string, p board.Point) {
	id, ok := s.itemID("move", name)
	if !ok {
		return
	}
	s.coord.Dispatch(drag.ItemDragStart{ID: id})
	s.coord.Dispatch(drag.ItemDragMove{ID: id, Pointer: p})
	s.coord.Dispatch(drag.ItemDragEnd{ID: id})
}

func (s *script) selectItem(name string) {
	if id, ok := s.itemID("select", name); ok {
		s.coord.Dispatch(drag.ItemClick{ID: id})
	}
}

func (s *script) remove(name string) {
	if id, ok := s.itemID("remove", name); ok {
		s.coord.Dispatch(drag.RemoveItem{ID: id})
	}
}

// parsePlacement parses NAME=X,Y.
func parsePlacement(arg string) (string, board.Point, error) {
	name, coords, ok := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", board.Point{}, fmt.Errorf("invalid placement %q: want NAME=X,Y", arg)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return "", board.Point{}, fmt.Errorf("invalid placement %q: want NAME=X,Y", arg)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return "", board.Point{}, fmt.Errorf("invalid x in %q: %w", arg, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return "", board.Point{}, fmt.Errorf("invalid y in %q: %w", arg, err)
	}
	return name, board.Point{X: x, Y: y}, nil
}

// printBoard writes the placement table, a per-quadrant tally and the
// palette that is left.
func printBoard(w io.Writer, scene export.Scene, snap drag.Snapshot) error {
	if len(scene.Items) == 0 {
		fmt.Fprintln(w, colorMuted.Sprint("Nothing placed."))
	} else if err := export.WriteTable(w, scene); err != nil {
		return err
	}

	var counts [4]int
	for _, r := range scene.Rows() {
		counts[r.Quadrant]++
	}
	fmt.Fprintln(w)
	for q := board.TopLeft; q <= board.BottomRight; q++ {
		fmt.Fprintf(w, "%s %d\n", formatQuadrant(q, scene.Labels.Quadrant(q)+":"), counts[q])
	}

	names := make([]string, len(snap.Palette))
	for i, e := range snap.Palette {
		names[i] = e.Name
	}
	palette := strings.Join(names, ", ")
	if palette == "" {
		palette = "(empty)"
	}
	fmt.Fprintf(w, "\n%s %s\n", colorHeader.Sprint("Palette:"), palette)
	return nil
}
