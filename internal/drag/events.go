package drag

import "github.com/javiermolinar/quadrant/internal/board"

// Event is an inbound notification from the rendering layer.
type Event interface {
	event() string
}

// Payload travels with a palette drag from its start to its drop.
type Payload struct {
	Name      string
	FromIndex int
}

// Mount reports that the canvas is laid out with its top-left corner at
// Origin in pointer space.
type Mount struct{ Origin board.Point }

// Unmount reports that the canvas geometry is no longer available.
type Unmount struct{}

// EntryDragStart begins dragging the palette entry in slot Index.
type EntryDragStart struct{ Index int }

// EntryDragEnd is the terminal event of a palette drag, accepted or not.
type EntryDragEnd struct{}

// SlotDragOver reports a palette drag hovering slot Index.
type SlotDragOver struct{ Index int }

// SlotDragLeave reports a palette drag leaving slot Index.
type SlotDragLeave struct{ Index int }

// SlotDrop drops a palette drag onto slot Index.
type SlotDrop struct {
	Index   int
	Payload Payload
}

// CanvasDrop drops a palette drag onto the canvas at a raw pointer position.
type CanvasDrop struct {
	Pointer board.Point
	Payload Payload
}

// ItemDragStart begins dragging a placed item.
type ItemDragStart struct{ ID string }

// ItemDragMove reports the pointer position while dragging a placed item.
type ItemDragMove struct {
	ID      string
	Pointer board.Point
}

// ItemDragEnd is the terminal event of an item drag.
type ItemDragEnd struct{ ID string }

// ItemClick is a click on a placed item.
type ItemClick struct{ ID string }

// RemoveItem activates the remove affordance of a placed item.
type RemoveItem struct{ ID string }

// CanvasPointerDown is a pointer-down on the canvas background.
type CanvasPointerDown struct{}

// PointerDownOutside is a pointer-down anywhere outside the canvas.
type PointerDownOutside struct{}

func (Mount) event() string              { return "mount" }
func (Unmount) event() string            { return "unmount" }
func (EntryDragStart) event() string     { return "entry_drag_start" }
func (EntryDragEnd) event() string       { return "entry_drag_end" }
func (SlotDragOver) event() string       { return "slot_drag_over" }
func (SlotDragLeave) event() string      { return "slot_drag_leave" }
func (SlotDrop) event() string           { return "slot_drop" }
func (CanvasDrop) event() string         { return "canvas_drop" }
func (ItemDragStart) event() string      { return "item_drag_start" }
func (ItemDragMove) event() string       { return "item_drag_move" }
func (ItemDragEnd) event() string        { return "item_drag_end" }
func (ItemClick) event() string          { return "item_click" }
func (RemoveItem) event() string         { return "remove_item" }
func (CanvasPointerDown) event() string  { return "canvas_pointer_down" }
func (PointerDownOutside) event() string { return "pointer_down_outside" }

// Name returns a stable identifier for ev, used in logs.
func Name(ev Event) string {
	if ev == nil {
		return "nil"
	}
	return ev.event()
}
