package selection

import (
	"github.com/DigitalPals/portal/internal/term"
)

// Mode is the granularity a selection grows with.
type Mode int

const (
	ModeCell Mode = iota
	ModeWord
	ModeLine
)

// Manager owns the selection state for one terminal viewport: the
// anchor set on pointer-down, the focus that follows the pointer, and
// the mode chosen by click count. It is driven from a single UI event
// loop and keeps no locking of its own; every touch of the shared
// grid goes through the grid's scoped lock.
type Manager struct {
	grid    *term.Grid
	metrics Metrics
	bounds  Bounds
	isWord  Classifier
	scroll  autoScroller
	bus     *EventBus

	mode      Mode
	anchor    BufferPos
	focus     BufferPos
	selecting bool
	active    bool
}

// NewManager creates a selection manager over the given grid. The
// metrics and bounds describe the rendered viewport so pointer pixels
// can be translated to cells.
func NewManager(grid *term.Grid, metrics Metrics, bounds Bounds) *Manager {
	return &Manager{
		grid:    grid,
		metrics: metrics,
		bounds:  bounds,
		isWord:  BoundaryClassifier(DefaultWordBoundaries),
		scroll:  autoScroller{cfg: DefaultAutoScrollConfig()},
		bus:     NewEventBus(),
	}
}

// SetBounds updates the viewport rectangle after a resize or move.
func (m *Manager) SetBounds(b Bounds) { m.bounds = b }

// SetClassifier replaces the word classifier used by double-click
// selection.
func (m *Manager) SetClassifier(c Classifier) {
	if c != nil {
		m.isWord = c
	}
}

// SetAutoScroll replaces the auto-scroll tuning.
func (m *Manager) SetAutoScroll(cfg AutoScrollConfig) {
	m.scroll = autoScroller{cfg: cfg}
}

// Events returns the bus selection notifications are emitted on.
func (m *Manager) Events() *EventBus { return m.bus }

// Begin starts a selection at the pointer position. Click count 1
// selects by cell, 2 by word, 3 by logical line; zero is treated as a
// single click and higher counts cycle the way repeated clicks do.
func (m *Manager) Begin(p Point, clickCount int) {
	if clickCount < 1 {
		clickCount = 1
	}
	switch (clickCount-1)%3 + 1 {
	case 2:
		m.mode = ModeWord
	case 3:
		m.mode = ModeLine
	default:
		m.mode = ModeCell
	}
	m.grid.Locked(func(v *term.View) {
		pos := m.metrics.PixelToBuffer(p, m.bounds, v.Cols(), v.Lines(), v.DisplayOffset())
		pos.Line = v.ClampLine(pos.Line)
		m.anchor = pos
		m.focus = pos
	})
	m.selecting = true
	m.active = true
	m.scroll.reset()
	m.bus.emitChanged()
}

// Extend moves the selection focus to the pointer position. When the
// pointer sits in an edge zone this first scrolls the grid, then
// re-translates the pointer against the post-scroll display offset to
// obtain the new focus. The focus is always recomputed from the
// pointer, never produced by shifting the previous focus by the
// scrolled delta; the anchor, being a buffer coordinate, needs no
// adjustment at all.
func (m *Manager) Extend(p Point) {
	if !m.selecting {
		return
	}
	m.grid.Locked(func(v *term.View) {
		if lines, ok := m.scroll.tick(p, m.bounds); ok && !v.AltScreen() {
			v.ScrollDisplay(lines)
			m.scroll.fired()
		}
		pos := m.metrics.PixelToBuffer(p, m.bounds, v.Cols(), v.Lines(), v.DisplayOffset())
		pos.Line = v.ClampLine(pos.Line)
		m.focus = pos
	})
	m.bus.emitChanged()
}

// End freezes the selection on pointer-up; the range stays readable
// until the next Begin or Clear.
func (m *Manager) End() {
	if !m.selecting {
		return
	}
	m.selecting = false
	m.scroll.reset()
	m.bus.emitChanged()
}

// Clear drops the selection entirely.
func (m *Manager) Clear() {
	m.selecting = false
	m.active = false
	m.scroll.reset()
	m.bus.emitCleared()
}

// IsSelecting reports whether a drag is in progress.
func (m *Manager) IsSelecting() bool { return m.selecting }

// HasSelection reports whether a range exists, frozen or live.
func (m *Manager) HasSelection() bool { return m.active }

// Range returns the materialized selection range in buffer
// coordinates, both ends inclusive, start before end in row-major
// order.
func (m *Manager) Range() (start, end BufferPos, ok bool) {
	m.grid.Locked(func(v *term.View) {
		start, end, ok = m.rangeLocked(v)
	})
	return start, end, ok
}

// rangeLocked computes the effective range from (anchor, focus, mode)
// under the grid lock. Word and line snapping are re-applied on every
// call, so the result re-snaps as the focus moves and the rendered
// highlight stays a pure function of the inputs.
func (m *Manager) rangeLocked(v *term.View) (start, end BufferPos, ok bool) {
	if !m.active {
		return BufferPos{}, BufferPos{}, false
	}
	start, end = m.anchor, m.focus
	if !start.Before(end) {
		start, end = end, start
	}
	lastCol := v.Cols() - 1
	start.Line = v.ClampLine(start.Line)
	end.Line = v.ClampLine(end.Line)
	start.Col = clamp(start.Col, 0, lastCol)
	end.Col = clamp(end.Col, 0, lastCol)

	switch m.mode {
	case ModeWord:
		if row := v.Row(start.Line); row != nil {
			start.Col, _ = wordSpan(row, start.Col, m.isWord)
		}
		if row := v.Row(end.Line); row != nil {
			_, end.Col = wordSpan(row, end.Col, m.isWord)
		}
	case ModeLine:
		first, _ := logicalLineSpan(v, start.Line)
		_, last := logicalLineSpan(v, end.Line)
		start = BufferPos{Col: 0, Line: first}
		end = BufferPos{Col: lastCol, Line: last}
	}
	return start, end, true
}
