package board

import (
	"fmt"
	"slices"
)

// Palette is the ordered sequence of entries that are not on the canvas.
type Palette struct {
	entries []Entry
}

// NewPalette builds a palette from a catalog. Later duplicates of a name
// are dropped.
func NewPalette(catalog []Entry) *Palette {
	p := &Palette{entries: make([]Entry, 0, len(catalog))}
	for _, e := range catalog {
		_ = p.Append(e)
	}
	return p
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the sequence.
func (p *Palette) Entries() []Entry {
	return slices.Clone(p.entries)
}

// Names returns entry names in order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// At returns the entry at index i.
func (p *Palette) At(i int) (Entry, bool) {
	if i < 0 || i >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[i], true
}

// IndexOf returns the slot holding name, or -1.
func (p *Palette) IndexOf(name string) int {
	return slices.IndexFunc(p.entries, func(e Entry) bool { return e.Name == name })
}

// Lookup resolves a name to its entry.
func (p *Palette) Lookup(name string) (Entry, bool) {
	i := p.IndexOf(name)
	if i < 0 {
		return Entry{}, false
	}
	return p.entries[i], true
}

// RemoveByName extracts the named entry.
func (p *Palette) RemoveByName(name string) (Entry, error) {
	i := p.IndexOf(name)
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownEntry, name)
	}
	e := p.entries[i]
	p.entries = slices.Delete(p.entries, i, i+1)
	return e, nil
}

// Append adds e at the end of the sequence.
func (p *Palette) Append(e Entry) error {
	if p.IndexOf(e.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Name)
	}
	p.entries = append(p.entries, e)
	return nil
}

// Reorder moves the entry at from so that it ends up at index to.
// Both indices refer to the sequence as it is now.
func (p *Palette) Reorder(from, to int) error {
	n := len(p.entries)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: %d -> %d (len %d)", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}
	moved := p.entries[from]
	p.entries = slices.Delete(p.entries, from, from+1)
	p.entries = slices.Insert(p.entries, to, moved)
	return nil
}

// Clone returns an independent copy.
func (p *Palette) Clone() *Palette {
	return &Palette{entries: slices.Clone(p.entries)}
}
