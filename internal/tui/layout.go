package tui

import (
	"math"

	"github.com/javiermolinar/quadrant/internal/board"
)

// Layout constants, in terminal cells.
const (
	minCanvasRows = 10
	maxCanvasRows = 28
	gutterWidth   = 3 // room for the vertical axis captions
	paletteWidth  = 14
	slotHeight    = 3
	chromeRows    = 5 // title, top caption, two borders, bottom caption
	canvasTopRow  = 3
	paletteTopRow = 2
)

// Layout maps terminal cells to canvas pixels. The canvas interior is
// Cols x Rows cells and each cell covers CellW x CellH pixels, so the
// whole terminal behaves like one pointer space.
type Layout struct {
	Width  int
	Height int

	CanvasCol int
	CanvasRow int
	Cols      int
	Rows      int

	PaletteCol int
	PaletteRow int
	Slots      int // palette slots that fit beside the canvas

	CellW float64
	CellH float64

	Fits bool
}

// NewLayout sizes the canvas to the terminal. Cells are about twice as tall
// as wide, so the canvas uses two columns per row. footerRows is the height
// of the footer under the bottom caption.
func NewLayout(width, height, footerRows int, g board.Geometry) Layout {
	l := Layout{Width: width, Height: height}

	fixedCols := 2*gutterWidth + 3 + paletteWidth
	rows := min(maxCanvasRows, height-chromeRows-max(footerRows, 1), (width-fixedCols)/2)
	if rows < minCanvasRows {
		return l
	}

	l.Rows = rows
	l.Cols = rows * 2
	l.CanvasCol = gutterWidth + 1
	l.CanvasRow = canvasTopRow
	l.PaletteCol = l.CanvasCol + l.Cols + 1 + gutterWidth + 1
	l.PaletteRow = paletteTopRow
	l.Slots = (rows + 2) / slotHeight
	l.CellW = g.Width / float64(l.Cols)
	l.CellH = g.Height / float64(l.Rows)
	l.Fits = true
	return l
}

// Origin is the canvas top-left corner in pointer space.
func (l Layout) Origin() board.Point {
	return board.Point{X: float64(l.CanvasCol) * l.CellW, Y: float64(l.CanvasRow) * l.CellH}
}

// Pointer converts a terminal cell into a raw pointer position at the
// middle of that cell.
func (l Layout) Pointer(x, y int) board.Point {
	return board.Point{X: (float64(x) + 0.5) * l.CellW, Y: (float64(y) + 0.5) * l.CellH}
}

// InCanvas reports whether the cell is inside the canvas interior.
func (l Layout) InCanvas(x, y int) bool {
	return l.Fits &&
		x >= l.CanvasCol && x < l.CanvasCol+l.Cols &&
		y >= l.CanvasRow && y < l.CanvasRow+l.Rows
}

// VisibleSlots is how many of n palette entries are drawn. When the palette
// is taller than the canvas frame, the last slot is given up to a "+N more"
// line.
func (l Layout) VisibleSlots(n int) int {
	if n <= l.Slots {
		return n
	}
	return l.Slots - 1
}

// SlotAt returns the palette slot under the cell. n is the palette length.
func (l Layout) SlotAt(x, y, n int) (int, bool) {
	if !l.Fits || x < l.PaletteCol || x >= l.PaletteCol+paletteWidth || y < l.PaletteRow {
		return 0, false
	}
	i := (y - l.PaletteRow) / slotHeight
	if i >= l.VisibleSlots(n) {
		return 0, false
	}
	return i, true
}

// Box is the cell rectangle of a placed item, relative to the canvas.
type Box struct {
	Col, Row   int
	Cols, Rows int
}

func (b Box) contains(col, row int) bool {
	return col >= b.Col && col < b.Col+b.Cols && row >= b.Row && row < b.Row+b.Rows
}

// ItemBox places an item of size itemSize on the cell grid. Items are at
// least three cells wide so short names stay readable.
func (l Layout) ItemBox(it board.PlacedItem, itemSize float64) Box {
	b := Box{
		Cols: max(3, int(math.Round(itemSize/l.CellW))),
		Rows: max(1, int(math.Round(itemSize/l.CellH))),
	}
	b.Cols = min(b.Cols, l.Cols)
	b.Rows = min(b.Rows, l.Rows)
	b.Col = min(int(it.X/l.CellW), l.Cols-b.Cols)
	b.Row = min(int(it.Y/l.CellH), l.Rows-b.Rows)
	return b
}

// RemoveCell is where the remove button of an item sits, relative to the
// canvas: right of the item's top row, or left of it at the right edge.
func (l Layout) RemoveCell(b Box) (int, int) {
	switch {
	case b.Col+b.Cols < l.Cols:
		return b.Col + b.Cols, b.Row
	case b.Col > 0:
		return b.Col - 1, b.Row
	default:
		return b.Col + b.Cols - 1, b.Row
	}
}

// hitKind says what a terminal cell landed on.
type hitKind int

const (
	hitNothing hitKind = iota
	hitCanvas
	hitItem
	hitRemove
	hitSlot
)

type hit struct {
	kind hitKind
	id   string // item id for hitItem and hitRemove
	slot int    // palette index for hitSlot
}

// hitTest resolves a cell against the current snapshot. Items are tested
// top-most first; the remove button only exists on the selected item.
func (l Layout) hitTest(x, y int, items []board.PlacedItem, paletteLen int, itemSize float64) hit {
	if l.InCanvas(x, y) {
		col, row := x-l.CanvasCol, y-l.CanvasRow
		for i := len(items) - 1; i >= 0; i-- {
			it := items[i]
			box := l.ItemBox(it, itemSize)
			if it.Selected {
				if rc, rr := l.RemoveCell(box); rc == col && rr == row {
					return hit{kind: hitRemove, id: it.ID}
				}
			}
			if box.contains(col, row) {
				return hit{kind: hitItem, id: it.ID}
			}
		}
		return hit{kind: hitCanvas}
	}
	if i, ok := l.SlotAt(x, y, paletteLen); ok {
		return hit{kind: hitSlot, slot: i}
	}
	return hit{kind: hitNothing}
}
