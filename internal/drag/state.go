// Package drag mediates pointer gestures between the palette and the canvas.
//
// State changes happen only through Reduce, a pure function from a state and
// an inbound event to the next state. Coordinator wraps it for callers that
// want a single mutable handle.
package drag

import "github.com/javiermolinar/quadrant/internal/board"

// NoSlot means no palette slot is hovered.
const NoSlot = -1

// State is the full interaction state: the two stores plus the ephemeral
// drag-tracking fields that only matter for rendering.
type State struct {
	Palette    *board.Palette
	Placements *board.Placements

	DraggingEntry  *board.Entry
	DraggingItemID string
	HoveredSlot    int
}

// NewState seeds a palette from catalog with nothing placed.
func NewState(catalog []board.Entry, placements *board.Placements) State {
	return State{
		Palette:     board.NewPalette(catalog),
		Placements:  placements,
		HoveredSlot: NoSlot,
	}
}

// clone copies the stores so the caller's state stays untouched.
func (s State) clone() State {
	c := s
	c.Palette = s.Palette.Clone()
	c.Placements = s.Placements.Clone()
	if s.DraggingEntry != nil {
		e := *s.DraggingEntry
		c.DraggingEntry = &e
	}
	return c
}

func (s State) clearEntryDrag() State {
	s.DraggingEntry = nil
	s.HoveredSlot = NoSlot
	return s
}

// Snapshot is the read-only view handed to renderers each cycle.
type Snapshot struct {
	Palette        []board.Entry
	Items          []board.PlacedItem
	DraggingEntry  *board.Entry
	DraggingItemID string
	HoveredSlot    int
	Geometry       board.Geometry
	Mounted        bool
}

// Snapshot copies everything a renderer needs out of s.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Palette:        s.Palette.Entries(),
		Items:          s.Placements.Items(),
		DraggingItemID: s.DraggingItemID,
		HoveredSlot:    s.HoveredSlot,
		Geometry:       s.Placements.Geometry(),
	}
	_, snap.Mounted = s.Placements.Origin()
	if s.DraggingEntry != nil {
		e := *s.DraggingEntry
		snap.DraggingEntry = &e
	}
	return snap
}

// Ghost returns the entry to preview in slot i: the dragged entry while a
// palette drag hovers that slot.
func (s Snapshot) Ghost(i int) (board.Entry, bool) {
	if s.DraggingEntry == nil || s.HoveredSlot != i {
		return board.Entry{}, false
	}
	return *s.DraggingEntry, true
}

// Selected returns the selected item, if any.
func (s Snapshot) Selected() (board.PlacedItem, bool) {
	for _, it := range s.Items {
		if it.Selected {
			return it, true
		}
	}
	return board.PlacedItem{}, false
}

// Item returns the placed item with the given id.
func (s Snapshot) Item(id string) (board.PlacedItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return board.PlacedItem{}, false
}
