package board

import "fmt"

// CheckInvariants verifies that catalog, palette and placements agree:
// every catalog name lives in exactly one collection, palette names are
// unique, items sit inside the canvas, and at most one item is selected.
func CheckInvariants(catalog []Entry, palette *Palette, placements *Placements) error {
	seen := make(map[string]int, len(catalog))
	for _, name := range palette.Names() {
		if seen[name] > 0 {
			return fmt.Errorf("%w: %q appears twice in the palette", ErrInvariantBreached, name)
		}
		seen[name]++
	}

	g := placements.Geometry()
	selected := 0
	for _, it := range placements.Items() {
		seen[it.Name]++
		if !g.InBounds(it.Position()) {
			return fmt.Errorf("%w: %s at (%v,%v) is outside the canvas", ErrInvariantBreached, it.ID, it.X, it.Y)
		}
		if it.Selected {
			selected++
		}
	}
	if selected > 1 {
		return fmt.Errorf("%w: %d items selected", ErrInvariantBreached, selected)
	}

	for _, e := range catalog {
		switch seen[e.Name] {
		case 0:
			return fmt.Errorf("%w: %q is neither in the palette nor placed", ErrInvariantBreached, e.Name)
		case 1:
		default:
			return fmt.Errorf("%w: %q is in more than one place", ErrInvariantBreached, e.Name)
		}
		delete(seen, e.Name)
	}
	for name := range seen {
		return fmt.Errorf("%w: %q is not in the catalog", ErrInvariantBreached, name)
	}
	return nil
}
