package drag

import (
	"slices"
	"testing"
	"time"

	"github.com/javiermolinar/quadrant/internal/board"
)

func refCatalog() []board.Entry {
	return []board.Entry{
		{Name: "MDB", ImageURL: "mdb.png"},
		{Name: "PT", ImageURL: "pt.png"},
		{Name: "PP", ImageURL: "pp.png"},
		{Name: "PRD", ImageURL: "prd.png"},
	}
}

func refGeometry() board.Geometry {
	return board.Geometry{Width: 700, Height: 700, ItemSize: 50}
}

// tickingClock advances one millisecond per call.
func tickingClock() func() time.Time {
	ms := int64(1_700_000_000_000)
	return func() time.Time {
		ms++
		return time.UnixMilli(ms)
	}
}

func mountedState() State {
	s := NewState(refCatalog(), board.NewPlacements(refGeometry(), tickingClock()))
	s, _ = Reduce(s, Mount{Origin: board.Point{}})
	return s
}

// mustApply reduces ev and fails the test if it was ignored.
func mustApply(t *testing.T, s State, ev Event) State {
	t.Helper()
	next, res := Reduce(s, ev)
	if !res.Applied {
		t.Fatalf("%s ignored: %s", Name(ev), res.Reason)
	}
	return next
}

// place drags the named entry from the palette and drops it at raw.
func place(t *testing.T, s State, name string, raw board.Point) (State, board.PlacedItem) {
	t.Helper()
	idx := s.Palette.IndexOf(name)
	s = mustApply(t, s, EntryDragStart{Index: idx})
	next, res := Reduce(s, CanvasDrop{Pointer: raw, Payload: Payload{Name: name, FromIndex: idx}})
	if !res.Applied || res.Placed == nil {
		t.Fatalf("drop of %s ignored: %s", name, res.Reason)
	}
	return next, *res.Placed
}

func TestReduce_DropOnCanvas(t *testing.T) {
	s := mountedState()
	s, _ = place(t, s, "PT", board.Point{X: 100, Y: 100})
	s, item := place(t, s, "MDB", board.Point{X: 375, Y: 375})

	if item.X != 350 || item.Y != 350 {
		t.Errorf("got (%v,%v), want (350,350)", item.X, item.Y)
	}
	if !item.Selected {
		t.Error("dropped item should be selected")
	}
	sel, ok := s.Placements.Selected()
	if !ok || sel.ID != item.ID {
		t.Errorf("selected = %+v, want %s", sel, item.ID)
	}
	if got := s.Palette.Names(); !slices.Equal(got, []string{"PP", "PRD"}) {
		t.Errorf("palette = %v", got)
	}
	if s.DraggingEntry != nil || s.HoveredSlot != NoSlot {
		t.Error("drop should clear palette drag state")
	}
}

func TestReduce_DropScenarioFromFreshPalette(t *testing.T) {
	s := mountedState()
	s, item := place(t, s, "MDB", board.Point{X: 375, Y: 375})

	if item.X != 350 || item.Y != 350 || !item.Selected {
		t.Errorf("got %+v", item)
	}
	if got := s.Palette.Names(); !slices.Equal(got, []string{"PT", "PP", "PRD"}) {
		t.Errorf("palette = %v, want [PT PP PRD]", got)
	}
}

func TestReduce_DropClampsOutsidePointer(t *testing.T) {
	s := mountedState()
	_, item := place(t, s, "PP", board.Point{X: -20, Y: 5})
	if item.X != 0 || item.Y != 0 {
		t.Errorf("got (%v,%v), want (0,0)", item.X, item.Y)
	}
}

func TestReduce_DropIgnored(t *testing.T) {
	t.Run("unmounted canvas", func(t *testing.T) {
		s := NewState(refCatalog(), board.NewPlacements(refGeometry(), nil))
		s = mustApply(t, s, EntryDragStart{Index: 0})
		s = mustApply(t, s, SlotDragOver{Index: 1})

		next, res := Reduce(s, CanvasDrop{Pointer: board.Point{X: 10, Y: 10}, Payload: Payload{Name: "MDB"}})
		if res.Applied {
			t.Fatal("drop on unmounted canvas should be ignored")
		}
		if res.Reason != ReasonUnmounted {
			t.Errorf("reason = %q", res.Reason)
		}
		if next.Placements.Len() != 0 || next.Palette.Len() != 4 {
			t.Error("ignored drop changed the stores")
		}
		if next.DraggingEntry != nil || next.HoveredSlot != NoSlot {
			t.Error("ignored drop should still clear drag state")
		}
	})

	t.Run("entry already placed", func(t *testing.T) {
		s := mountedState()
		s, _ = place(t, s, "MDB", board.Point{X: 100, Y: 100})

		// a second, racing drop with the same payload
		next, res := Reduce(s, CanvasDrop{Pointer: board.Point{X: 200, Y: 200}, Payload: Payload{Name: "MDB"}})
		if res.Applied {
			t.Fatal("second drop of the same entry should be ignored")
		}
		if res.Reason != ReasonUnknownEntry {
			t.Errorf("reason = %q", res.Reason)
		}
		if next.Placements.Len() != 1 {
			t.Errorf("got %d items, want 1", next.Placements.Len())
		}
	})
}

func TestReduce_ItemDrag(t *testing.T) {
	s := mountedState()
	s, a := place(t, s, "MDB", board.Point{X: 100, Y: 100})
	s, b := place(t, s, "PT", board.Point{X: 300, Y: 300})

	s = mustApply(t, s, ItemDragStart{ID: a.ID})
	if s.DraggingItemID != a.ID {
		t.Errorf("dragging = %q, want %q", s.DraggingItemID, a.ID)
	}
	if sel, _ := s.Placements.Selected(); sel.ID != a.ID {
		t.Error("drag start should select the item")
	}

	s = mustApply(t, s, ItemDragMove{ID: a.ID, Pointer: board.Point{X: 500, Y: 900}})
	got, _ := s.Placements.Item(a.ID)
	if got.X != 475 || got.Y != 650 {
		t.Errorf("got (%v,%v), want (475,650)", got.X, got.Y)
	}

	s = mustApply(t, s, ItemDragEnd{ID: a.ID})
	if s.DraggingItemID != "" {
		t.Error("drag end should clear dragging id")
	}
	if sel, _ := s.Placements.Selected(); sel.ID != a.ID {
		t.Error("drag end should keep the selection")
	}
	if other, _ := s.Placements.Item(b.ID); other.Selected {
		t.Error("other item should stay deselected")
	}
}

func TestReduce_StaleIDsAreNoOps(t *testing.T) {
	s := mountedState()
	s, a := place(t, s, "MDB", board.Point{X: 100, Y: 100})

	for _, ev := range []Event{
		ItemDragStart{ID: "gone"},
		ItemDragMove{ID: "gone", Pointer: board.Point{X: 1, Y: 1}},
		ItemClick{ID: "gone"},
		RemoveItem{ID: "gone"},
	} {
		next, res := Reduce(s, ev)
		if res.Applied {
			t.Errorf("%s with unknown id was applied", Name(ev))
		}
		if res.Reason != ReasonUnknownItem {
			t.Errorf("%s reason = %q", Name(ev), res.Reason)
		}
		if got, _ := next.Placements.Item(a.ID); got != a {
			t.Errorf("%s changed an unrelated item", Name(ev))
		}
	}
}

func TestReduce_RemoveRoundTrip(t *testing.T) {
	s := mountedState()
	s, pp := place(t, s, "PP", board.Point{X: 200, Y: 200})

	next, res := Reduce(s, RemoveItem{ID: pp.ID})
	if !res.Applied {
		t.Fatalf("remove ignored: %s", res.Reason)
	}
	if res.Removed == nil || res.Removed.Name != "PP" || res.Removed.ImageURL != "pp.png" {
		t.Errorf("removed = %+v", res.Removed)
	}
	if _, ok := next.Placements.ByName("PP"); ok {
		t.Error("PP should no longer be placed")
	}
	if got := next.Palette.Names(); !slices.Equal(got, []string{"MDB", "PT", "PRD", "PP"}) {
		t.Errorf("palette = %v, want PP appended", got)
	}
}

func TestReduce_PaletteReorder(t *testing.T) {
	s := mountedState()
	s, _ = place(t, s, "MDB", board.Point{X: 10, Y: 10})
	// palette is now [PT PP PRD]

	s = mustApply(t, s, EntryDragStart{Index: 0})
	if s.DraggingEntry == nil || s.DraggingEntry.Name != "PT" {
		t.Fatalf("dragging = %+v", s.DraggingEntry)
	}
	s = mustApply(t, s, SlotDragOver{Index: 2})
	if s.HoveredSlot != 2 {
		t.Errorf("hovered = %d", s.HoveredSlot)
	}
	if !slices.Equal(s.Palette.Names(), []string{"PT", "PP", "PRD"}) {
		t.Error("drag over must not reorder")
	}

	s = mustApply(t, s, SlotDrop{Index: 2, Payload: Payload{Name: "PT", FromIndex: 0}})
	if got := s.Palette.Names(); !slices.Equal(got, []string{"PP", "PRD", "PT"}) {
		t.Errorf("palette = %v, want [PP PRD PT]", got)
	}
	if s.HoveredSlot != NoSlot || s.DraggingEntry != nil {
		t.Error("slot drop should clear drag state")
	}
}

func TestReduce_SlotDropStaleIndex(t *testing.T) {
	s := mountedState()
	s = mustApply(t, s, EntryDragStart{Index: 3})
	s = mustApply(t, s, SlotDragOver{Index: 0})

	next, res := Reduce(s, SlotDrop{Index: 0, Payload: Payload{Name: "PRD", FromIndex: 9}})
	if res.Applied {
		t.Fatal("stale from index should be ignored")
	}
	if !slices.Equal(next.Palette.Names(), []string{"MDB", "PT", "PP", "PRD"}) {
		t.Errorf("palette changed: %v", next.Palette.Names())
	}
	if next.HoveredSlot != NoSlot || next.DraggingEntry != nil {
		t.Error("ignored slot drop should still clear drag state")
	}
}

func TestReduce_SlotHover(t *testing.T) {
	s := mountedState()
	s = mustApply(t, s, EntryDragStart{Index: 0})
	s = mustApply(t, s, SlotDragOver{Index: 1})
	s = mustApply(t, s, SlotDragOver{Index: 2})

	// leaving a slot that is no longer hovered keeps the current preview
	s2, res := Reduce(s, SlotDragLeave{Index: 1})
	if res.Applied || s2.HoveredSlot != 2 {
		t.Errorf("stale leave: applied=%v hovered=%d", res.Applied, s2.HoveredSlot)
	}

	s = mustApply(t, s, SlotDragLeave{Index: 2})
	if s.HoveredSlot != NoSlot {
		t.Errorf("hovered = %d, want none", s.HoveredSlot)
	}

	if _, res := Reduce(s, SlotDragOver{Index: 7}); res.Applied {
		t.Error("drag over a missing slot should be ignored")
	}

	s = mustApply(t, s, SlotDragOver{Index: 0})
	s = mustApply(t, s, EntryDragEnd{})
	if s.DraggingEntry != nil || s.HoveredSlot != NoSlot {
		t.Error("abandoned drag should clear state")
	}
}

func TestReduce_SelectionClearing(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{"pointer down outside", PointerDownOutside{}},
		{"canvas background", CanvasPointerDown{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mountedState()
			s, _ = place(t, s, "MDB", board.Point{X: 100, Y: 100})
			s = mustApply(t, s, tt.ev)
			if _, ok := s.Placements.Selected(); ok {
				t.Error("selection should be cleared")
			}
		})
	}

	t.Run("item click selects", func(t *testing.T) {
		s := mountedState()
		s, a := place(t, s, "MDB", board.Point{X: 100, Y: 100})
		s, _ = place(t, s, "PT", board.Point{X: 400, Y: 400})
		s = mustApply(t, s, ItemClick{ID: a.ID})
		if sel, _ := s.Placements.Selected(); sel.ID != a.ID {
			t.Errorf("selected = %q, want %q", sel.ID, a.ID)
		}
	})
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := mountedState()
	s, a := place(t, s, "MDB", board.Point{X: 100, Y: 100})
	before := s.Snapshot()

	for _, ev := range []Event{
		ItemDragMove{ID: a.ID, Pointer: board.Point{X: 600, Y: 600}},
		RemoveItem{ID: a.ID},
		EntryDragStart{Index: 0},
		SlotDrop{Index: 2, Payload: Payload{FromIndex: 0}},
		PointerDownOutside{},
		Unmount{},
	} {
		_, _ = Reduce(s, ev)
	}

	after := s.Snapshot()
	if !slices.Equal(before.Items, after.Items) {
		t.Errorf("items changed: %v -> %v", before.Items, after.Items)
	}
	if !slices.Equal(before.Palette, after.Palette) {
		t.Errorf("palette changed: %v -> %v", before.Palette, after.Palette)
	}
	if !after.Mounted {
		t.Error("unmount leaked into input state")
	}
}

func TestReduce_UnknownEvent(t *testing.T) {
	s := mountedState()
	if _, res := Reduce(s, nil); res.Applied || res.Reason != ReasonUnknownEvent {
		t.Errorf("nil event: %+v", res)
	}
}
