package board

import (
	"fmt"
	"time"
)

// Placements owns the items on the canvas.
//
// Every method that fails leaves the store unchanged. Items keep placement
// order, which doubles as paint order.
type Placements struct {
	geometry Geometry
	origin   Point
	mounted  bool

	items []PlacedItem
	index map[string]int // id -> position in items

	now       func() time.Time
	lastStamp int64
}

// NewPlacements creates an empty, unmounted store.
// now supplies the timestamp used to mint item ids; nil means time.Now.
func NewPlacements(g Geometry, now func() time.Time) *Placements {
	if now == nil {
		now = time.Now
	}
	return &Placements{
		geometry: g,
		index:    make(map[string]int),
		now:      now,
	}
}

// Geometry returns the canvas constants.
func (p *Placements) Geometry() Geometry {
	return p.geometry
}

// Mount records the container's top-left corner in pointer space.
// Until Mount is called positions cannot be computed.
func (p *Placements) Mount(origin Point) {
	p.origin = origin
	p.mounted = true
}

// Unmount forgets the container geometry.
func (p *Placements) Unmount() {
	p.origin = Point{}
	p.mounted = false
}

// Origin returns the container origin and whether the canvas is mounted.
func (p *Placements) Origin() (Point, bool) {
	return p.origin, p.mounted
}

// Len returns the number of placed items.
func (p *Placements) Len() int {
	return len(p.items)
}

// Items returns a copy of the placed items in paint order.
func (p *Placements) Items() []PlacedItem {
	out := make([]PlacedItem, len(p.items))
	copy(out, p.items)
	return out
}

// Item returns the item with the given id.
func (p *Placements) Item(id string) (PlacedItem, bool) {
	i, ok := p.index[id]
	if !ok {
		return PlacedItem{}, false
	}
	return p.items[i], true
}

// ByName returns the item placed from the entry with the given name.
func (p *Placements) ByName(name string) (PlacedItem, bool) {
	for _, it := range p.items {
		if it.Name == name {
			return it, true
		}
	}
	return PlacedItem{}, false
}

// Selected returns the selected item, if any.
func (p *Placements) Selected() (PlacedItem, bool) {
	for _, it := range p.items {
		if it.Selected {
			return it, true
		}
	}
	return PlacedItem{}, false
}

// Place puts e on the canvas centered under raw, selects it, and deselects
// everything else. It fails with ErrInvalidPosition while unmounted.
func (p *Placements) Place(e Entry, raw Point) (PlacedItem, error) {
	if !p.mounted {
		return PlacedItem{}, ErrInvalidPosition
	}
	pos := p.geometry.Clamp(raw, p.origin)
	for i := range p.items {
		p.items[i].Selected = false
	}
	item := PlacedItem{
		ID:       p.mintID(e.Name),
		Name:     e.Name,
		ImageURL: e.ImageURL,
		X:        pos.X,
		Y:        pos.Y,
		Selected: true,
	}
	p.index[item.ID] = len(p.items)
	p.items = append(p.items, item)
	return item, nil
}

// MoveTo recenters the item under raw, clamped to the canvas.
func (p *Placements) MoveTo(id string, raw Point) error {
	i, ok := p.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	if !p.mounted {
		return ErrInvalidPosition
	}
	pos := p.geometry.Clamp(raw, p.origin)
	p.items[i].X = pos.X
	p.items[i].Y = pos.Y
	return nil
}

// Remove deletes the item and returns the entry it came from.
func (p *Placements) Remove(id string) (Entry, error) {
	i, ok := p.index[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	removed := p.items[i]
	p.items = append(p.items[:i], p.items[i+1:]...)
	delete(p.index, id)
	for j := i; j < len(p.items); j++ {
		p.index[p.items[j].ID] = j
	}
	return removed.Entry(), nil
}

// Select makes id the only selected item.
func (p *Placements) Select(id string) error {
	if _, ok := p.index[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	for i := range p.items {
		p.items[i].Selected = p.items[i].ID == id
	}
	return nil
}

// ClearSelection deselects every item.
func (p *Placements) ClearSelection() {
	for i := range p.items {
		p.items[i].Selected = false
	}
}

// Clone returns a deep copy sharing only the clock.
func (p *Placements) Clone() *Placements {
	c := *p
	c.items = p.Items()
	c.index = make(map[string]int, len(p.index))
	for id, i := range p.index {
		c.index[id] = i
	}
	return &c
}

// mintID builds "<name>-<unix millis>". Stamps never repeat within a store,
// so an entry placed, removed and placed again in the same millisecond still
// gets a fresh id.
func (p *Placements) mintID(name string) string {
	stamp := p.now().UnixMilli()
	if stamp <= p.lastStamp {
		stamp = p.lastStamp + 1
	}
	p.lastStamp = stamp
	return fmt.Sprintf("%s-%d", name, stamp)
}
