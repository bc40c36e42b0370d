package drag

import (
	"errors"

	"github.com/javiermolinar/quadrant/internal/board"
)

// Reasons an event was ignored.
const (
	ReasonUnknownItem   = "unknown item"
	ReasonUnknownEntry  = "unknown entry"
	ReasonUnmounted     = "canvas not mounted"
	ReasonBadIndex      = "palette index out of range"
	ReasonNotHovered    = "slot not hovered"
	ReasonUnknownEvent  = "unknown event"
	ReasonAlreadyPlaced = "entry already placed"
)

// Result tells the caller what Reduce did with an event.
type Result struct {
	Applied bool
	Reason  string // why the event was ignored
	Placed  *board.PlacedItem
	Removed *board.Entry
}

func ignored(reason string) Result {
	return Result{Reason: reason}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, board.ErrInvalidPosition):
		return ReasonUnmounted
	case errors.Is(err, board.ErrUnknownItem):
		return ReasonUnknownItem
	case errors.Is(err, board.ErrUnknownEntry):
		return ReasonUnknownEntry
	case errors.Is(err, board.ErrIndexOutOfRange):
		return ReasonBadIndex
	case errors.Is(err, board.ErrDuplicateEntry):
		return ReasonAlreadyPlaced
	default:
		return err.Error()
	}
}

// Reduce applies ev to s and returns the next state. s is never modified.
//
// Nothing here fails: stale ids, vanished entries, bad indices and an
// unmounted canvas all leave the stores as they were. Terminal drag events
// (drops and drag ends) always clear the ephemeral fields they own.
func Reduce(s State, ev Event) (State, Result) {
	next := s.clone()

	switch ev := ev.(type) {
	case Mount:
		next.Placements.Mount(ev.Origin)
		return next, Result{Applied: true}

	case Unmount:
		next.Placements.Unmount()
		return next, Result{Applied: true}

	case EntryDragStart:
		e, ok := next.Palette.At(ev.Index)
		if !ok {
			return s, ignored(ReasonBadIndex)
		}
		next.DraggingEntry = &e
		next.HoveredSlot = NoSlot
		return next, Result{Applied: true}

	case EntryDragEnd:
		return next.clearEntryDrag(), Result{Applied: true}

	case SlotDragOver:
		if _, ok := next.Palette.At(ev.Index); !ok {
			return s, ignored(ReasonBadIndex)
		}
		next.HoveredSlot = ev.Index
		return next, Result{Applied: true}

	case SlotDragLeave:
		if next.HoveredSlot != ev.Index {
			return s, ignored(ReasonNotHovered)
		}
		next.HoveredSlot = NoSlot
		return next, Result{Applied: true}

	case SlotDrop:
		next = next.clearEntryDrag()
		if err := next.Palette.Reorder(ev.Payload.FromIndex, ev.Index); err != nil {
			return s.clearEntryDrag(), ignored(reasonFor(err))
		}
		return next, Result{Applied: true}

	case CanvasDrop:
		return dropOnCanvas(s.clearEntryDrag(), next.clearEntryDrag(), ev)

	case ItemDragStart:
		if err := next.Placements.Select(ev.ID); err != nil {
			return s, ignored(reasonFor(err))
		}
		next.DraggingItemID = ev.ID
		return next, Result{Applied: true}

	case ItemDragMove:
		if err := next.Placements.MoveTo(ev.ID, ev.Pointer); err != nil {
			return s, ignored(reasonFor(err))
		}
		return next, Result{Applied: true}

	case ItemDragEnd:
		// Selection stays on the dragged item.
		next.DraggingItemID = ""
		return next, Result{Applied: true}

	case ItemClick:
		if err := next.Placements.Select(ev.ID); err != nil {
			return s, ignored(reasonFor(err))
		}
		return next, Result{Applied: true}

	case RemoveItem:
		return removeItem(s, next, ev)

	case CanvasPointerDown, PointerDownOutside:
		next.Placements.ClearSelection()
		return next, Result{Applied: true}
	}

	return s, ignored(ReasonUnknownEvent)
}

// dropOnCanvas places the dragged entry. On any failure the stores of prev
// are kept and only the ephemeral drag state is cleared.
func dropOnCanvas(prev, next State, ev CanvasDrop) (State, Result) {
	entry, ok := next.Palette.Lookup(ev.Payload.Name)
	if !ok {
		return prev, ignored(ReasonUnknownEntry)
	}
	item, err := next.Placements.Place(entry, ev.Pointer)
	if err != nil {
		return prev, ignored(reasonFor(err))
	}
	if _, err := next.Palette.RemoveByName(entry.Name); err != nil {
		return prev, ignored(reasonFor(err))
	}
	return next, Result{Applied: true, Placed: &item}
}

func removeItem(prev, next State, ev RemoveItem) (State, Result) {
	entry, err := next.Placements.Remove(ev.ID)
	if err != nil {
		return prev, ignored(reasonFor(err))
	}
	if err := next.Palette.Append(entry); err != nil {
		return prev, ignored(reasonFor(err))
	}
	if next.DraggingItemID == ev.ID {
		next.DraggingItemID = ""
	}
	return next, Result{Applied: true, Removed: &entry}
}
