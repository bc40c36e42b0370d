package board

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate. Raw pointer positions and canvas-local positions
// share this type; which space a Point lives in is up to the caller.
type Point struct {
	X float64
	Y float64
}

// Geometry holds the fixed canvas constants.
type Geometry struct {
	Width    float64
	Height   float64
	ItemSize float64
}

// Validate checks that an item fits on the canvas.
func (g Geometry) Validate() error {
	for _, v := range []float64{g.Width, g.Height, g.ItemSize} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: dimensions must be finite, got %vx%v item %v", ErrInvalidGeometry, g.Width, g.Height, g.ItemSize)
		}
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.ItemSize <= 0 {
		return fmt.Errorf("%w: item size must be positive, got %v", ErrInvalidGeometry, g.ItemSize)
	}
	if g.ItemSize > g.Width || g.ItemSize > g.Height {
		return fmt.Errorf("%w: item size %v exceeds canvas %vx%v", ErrInvalidGeometry, g.ItemSize, g.Width, g.Height)
	}
	return nil
}

// MaxX is the largest valid X for an item's top-left corner.
func (g Geometry) MaxX() float64 { return g.Width - g.ItemSize }

// MaxY is the largest valid Y for an item's top-left corner.
func (g Geometry) MaxY() float64 { return g.Height - g.ItemSize }

// Clamp converts a raw pointer position into a canvas-local top-left corner.
// origin is the container's top-left corner in pointer space. The item is
// centered under the pointer, then each axis is clamped to the canvas.
func (g Geometry) Clamp(raw, origin Point) Point {
	half := g.ItemSize / 2
	return Point{
		X: clamp(raw.X-origin.X-half, 0, g.MaxX()),
		Y: clamp(raw.Y-origin.Y-half, 0, g.MaxY()),
	}
}

// InBounds reports whether p is a valid top-left corner.
func (g Geometry) InBounds(p Point) bool {
	return p.X >= 0 && p.X <= g.MaxX() && p.Y >= 0 && p.Y <= g.MaxY()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
