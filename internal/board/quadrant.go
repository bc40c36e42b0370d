package board

// Quadrant identifies one of the four regions of the canvas.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

var quadrantNames = [...]string{"top-left", "top-right", "bottom-left", "bottom-right"}

func (q Quadrant) String() string {
	if q < TopLeft || q > BottomRight {
		return "unknown"
	}
	return quadrantNames[q]
}

// Classify reports the quadrant holding the item's center.
// A center exactly on a divider counts as right or bottom.
func (g Geometry) Classify(item PlacedItem) Quadrant {
	c := item.Center(g.ItemSize)
	right := c.X >= g.Width/2
	bottom := c.Y >= g.Height/2
	switch {
	case !right && !bottom:
		return TopLeft
	case right && !bottom:
		return TopRight
	case !right && bottom:
		return BottomLeft
	default:
		return BottomRight
	}
}
