// Package board defines the placement model for the quadrant diagram: the
// ordered palette of entries waiting to be placed and the set of items that
// sit on the canvas.
package board

import "errors"

// Engine errors. Callers driving the board from user input treat every one
// of these as "nothing happened".
var (
	ErrInvalidPosition   = errors.New("canvas geometry unavailable")
	ErrUnknownItem       = errors.New("item not found")
	ErrUnknownEntry      = errors.New("entry not found")
	ErrIndexOutOfRange   = errors.New("palette index out of range")
	ErrDuplicateEntry    = errors.New("entry already present")
	ErrInvalidGeometry   = errors.New("invalid canvas geometry")
	ErrInvariantBreached = errors.New("board invariant breached")
)

// Entry is a catalog item that has not been placed yet.
type Entry struct {
	Name     string
	ImageURL string
}

// PlacedItem is an entry instance sitting on the canvas.
// X and Y are the top-left corner in canvas-local coordinates.
type PlacedItem struct {
	ID       string
	Name     string
	ImageURL string
	X        float64
	Y        float64
	Selected bool
}

// Entry rebuilds the palette entry this item was placed from.
func (p PlacedItem) Entry() Entry {
	return Entry{Name: p.Name, ImageURL: p.ImageURL}
}

// Position returns the item's top-left corner.
func (p PlacedItem) Position() Point {
	return Point{X: p.X, Y: p.Y}
}

// Center returns the point under the middle of an item of the given size.
func (p PlacedItem) Center(size float64) Point {
	return Point{X: p.X + size/2, Y: p.Y + size/2}
}
