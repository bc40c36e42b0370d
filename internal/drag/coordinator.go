package drag

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/javiermolinar/quadrant/internal/board"
)

// Coordinator owns the current State and feeds events through Reduce.
// It is not safe for concurrent use; events arrive on a single stream.
type Coordinator struct {
	catalog []board.Entry
	state   State
	logger  *log.Logger
	check   bool
}

// Option configures a Coordinator.
type Option func(*coordinatorOptions)

type coordinatorOptions struct {
	logger *log.Logger
	now    func() time.Time
	check  bool
}

// WithLogger routes transition logs to l.
func WithLogger(l *log.Logger) Option {
	return func(o *coordinatorOptions) { o.logger = l }
}

// WithClock sets the clock used to mint item ids.
func WithClock(now func() time.Time) Option {
	return func(o *coordinatorOptions) { o.now = now }
}

// WithInvariantChecks verifies the board after every event and logs any
// breach at error level.
func WithInvariantChecks() Option {
	return func(o *coordinatorOptions) { o.check = true }
}

// NewCoordinator starts with every catalog entry in the palette and an
// unmounted, empty canvas.
func NewCoordinator(catalog []board.Entry, g board.Geometry, opts ...Option) *Coordinator {
	o := coordinatorOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	// the palette drops duplicate names, so the catalog used for checks must too
	pal := board.NewPalette(catalog)
	return &Coordinator{
		catalog: pal.Entries(),
		state:   State{Palette: pal, Placements: board.NewPlacements(g, o.now), HoveredSlot: NoSlot},
		logger:  o.logger,
		check:   o.check,
	}
}

// Catalog returns the entries the coordinator was seeded with.
func (c *Coordinator) Catalog() []board.Entry {
	out := make([]board.Entry, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// Dispatch applies ev and returns what happened.
func (c *Coordinator) Dispatch(ev Event) Result {
	next, res := Reduce(c.state, ev)
	c.state = next

	if res.Applied {
		if _, hot := ev.(ItemDragMove); !hot {
			c.logger.Debug("drag event", "event", Name(ev))
		}
	} else {
		c.logger.Debug("drag event ignored", "event", Name(ev), "reason", res.Reason)
	}
	if res.Placed != nil {
		c.logger.Debug("placed", "id", res.Placed.ID, "x", res.Placed.X, "y", res.Placed.Y)
	}
	if res.Removed != nil {
		c.logger.Debug("returned to palette", "name", res.Removed.Name)
	}

	if c.check {
		if err := board.CheckInvariants(c.catalog, c.state.Palette, c.state.Placements); err != nil {
			c.logger.Error("board invariant", "event", Name(ev), "err", err)
		}
	}
	return res
}

// BeginEntryDrag starts dragging the palette entry in slot index and returns
// the payload the drop must carry back.
func (c *Coordinator) BeginEntryDrag(index int) (Payload, bool) {
	e, ok := c.state.Palette.At(index)
	if res := c.Dispatch(EntryDragStart{Index: index}); !res.Applied || !ok {
		return Payload{}, false
	}
	return Payload{Name: e.Name, FromIndex: index}, true
}

// Snapshot returns a copy of the current state for rendering.
func (c *Coordinator) Snapshot() Snapshot {
	return c.state.Snapshot()
}
