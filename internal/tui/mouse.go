package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/quadrant/internal/drag"
)

type gestureKind int

const (
	gestureNone  gestureKind = iota
	gestureEntry             // palette entry held under the pointer
	gestureItem              // placed item being moved
)

// gesture tracks a press until its release. The coordinator holds the
// board state; this only remembers what the press started.
type gesture struct {
	kind    gestureKind
	payload drag.Payload
	itemID  string
	hovered int // palette slot under the pointer during an entry drag
	moved   bool
}

// handleMouseMsg turns terminal mouse reports into drag events.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.layout.Fits {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.press(msg.X, msg.Y)
	case tea.MouseActionMotion:
		m.motion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.release(msg.X, msg.Y)
	}
	return m, nil
}

func (m *Model) press(x, y int) {
	// a release can get lost when the pointer leaves the window
	m.abandonGesture()

	snap := m.coord.Snapshot()
	h := m.layout.hitTest(x, y, snap.Items, len(snap.Palette), snap.Geometry.ItemSize)
	m.logger.Debug("press", "x", x, "y", y, "hit", h.kind, "id", h.id, "slot", h.slot)

	switch h.kind {
	case hitRemove:
		m.coord.Dispatch(drag.RemoveItem{ID: h.id})
	case hitItem:
		if m.coord.Dispatch(drag.ItemDragStart{ID: h.id}).Applied {
			m.gesture = gesture{kind: gestureItem, itemID: h.id, hovered: drag.NoSlot}
		}
	case hitCanvas:
		m.coord.Dispatch(drag.CanvasPointerDown{})
	case hitSlot:
		m.coord.Dispatch(drag.PointerDownOutside{})
		if p, ok := m.coord.BeginEntryDrag(h.slot); ok {
			m.gesture = gesture{kind: gestureEntry, payload: p, hovered: drag.NoSlot}
			m.hoverSlot(h.slot)
		}
	default:
		m.coord.Dispatch(drag.PointerDownOutside{})
	}
}

func (m *Model) motion(x, y int) {
	switch m.gesture.kind {
	case gestureEntry:
		slot, ok := m.layout.SlotAt(x, y, len(m.coord.Snapshot().Palette))
		if !ok {
			slot = drag.NoSlot
		}
		m.hoverSlot(slot)
	case gestureItem:
		m.gesture.moved = true
		m.coord.Dispatch(drag.ItemDragMove{ID: m.gesture.itemID, Pointer: m.layout.Pointer(x, y)})
	}
}

// hoverSlot moves the hover from the previous slot to slot, which may be
// NoSlot when the pointer left the palette.
func (m *Model) hoverSlot(slot int) {
	prev := m.gesture.hovered
	if prev == slot {
		return
	}
	if prev != drag.NoSlot {
		m.coord.Dispatch(drag.SlotDragLeave{Index: prev})
	}
	if slot != drag.NoSlot {
		m.coord.Dispatch(drag.SlotDragOver{Index: slot})
	}
	m.gesture.hovered = slot
}

func (m *Model) release(x, y int) {
	g := m.gesture
	m.gesture = gesture{}

	switch g.kind {
	case gestureEntry:
		if slot, ok := m.layout.SlotAt(x, y, len(m.coord.Snapshot().Palette)); ok {
			m.coord.Dispatch(drag.SlotDrop{Index: slot, Payload: g.payload})
		} else if m.layout.InCanvas(x, y) {
			m.coord.Dispatch(drag.CanvasDrop{Pointer: m.layout.Pointer(x, y), Payload: g.payload})
		}
		m.coord.Dispatch(drag.EntryDragEnd{})
	case gestureItem:
		if g.moved {
			m.coord.Dispatch(drag.ItemDragMove{ID: g.itemID, Pointer: m.layout.Pointer(x, y)})
		}
		m.coord.Dispatch(drag.ItemDragEnd{ID: g.itemID})
		if !g.moved {
			m.coord.Dispatch(drag.ItemClick{ID: g.itemID})
		}
	}
}

// abandonGesture ends whatever drag is in flight without dropping it.
func (m *Model) abandonGesture() {
	switch m.gesture.kind {
	case gestureEntry:
		m.coord.Dispatch(drag.EntryDragEnd{})
	case gestureItem:
		m.coord.Dispatch(drag.ItemDragEnd{ID: m.gesture.itemID})
	}
	m.gesture = gesture{}
}
