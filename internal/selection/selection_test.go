package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalPals/portal/internal/selection"
	"github.com/DigitalPals/portal/internal/term"
)

func TestSelectionLifecycle(t *testing.T) {
	g := term.NewGrid(10, 2, 10)
	g.WriteLine("hello")
	m := newTestManager(g, 10, 2)

	assert.False(t, m.IsSelecting())
	assert.False(t, m.HasSelection())

	m.Begin(cellPoint(0, 1), 1)
	assert.True(t, m.IsSelecting())
	assert.True(t, m.HasSelection())

	m.Extend(cellPoint(4, 1))
	m.End()
	assert.False(t, m.IsSelecting())
	assert.True(t, m.HasSelection(), "range freezes on pointer-up")
	assert.Equal(t, "hello", m.Extract())

	m.Clear()
	assert.False(t, m.HasSelection())
	_, _, ok := m.Range()
	assert.False(t, ok)
}

func TestRangeNormalizesBackwardDrag(t *testing.T) {
	g := term.NewGrid(10, 3, 10)
	g.WriteLine("one")
	g.WriteLine("two")
	g.WriteLine("three")
	m := newTestManager(g, 10, 3)

	m.Begin(cellPoint(4, 2), 1)
	m.Extend(cellPoint(1, 0))
	m.End()

	start, end, ok := m.Range()
	require.True(t, ok)
	assert.True(t, start.Before(end))
	assert.Equal(t, selection.BufferPos{Col: 1, Line: 0}, start)
	assert.Equal(t, selection.BufferPos{Col: 4, Line: 2}, end)
}

func TestWordModeSnapsBothEnds(t *testing.T) {
	g := term.NewGrid(20, 1, 10)
	g.WriteLine("foo bar(baz)")
	m := newTestManager(g, 20, 1)

	// Double-click in the middle of "bar".
	m.Begin(cellPoint(5, 0), 2)
	assert.Equal(t, "bar", m.Extract())

	// Extending into "baz" re-snaps the far end to that word's
	// boundary on every move.
	m.Extend(cellPoint(9, 0))
	assert.Equal(t, "bar(baz", m.Extract())
	m.End()
	assert.Equal(t, "bar(baz", m.Extract())
}

func TestWordModeOnBoundaryRune(t *testing.T) {
	g := term.NewGrid(20, 1, 10)
	g.WriteLine("foo bar(baz)")
	m := newTestManager(g, 20, 1)

	// Double-click on the parenthesis selects just that cell.
	m.Begin(cellPoint(7, 0), 2)
	m.End()
	assert.Equal(t, "(", m.Extract())
}

func TestCustomClassifier(t *testing.T) {
	g := term.NewGrid(20, 1, 10)
	g.WriteLine("usr/local/bin")
	m := newTestManager(g, 20, 1)

	// Default classifier treats '/' as a boundary.
	m.Begin(cellPoint(5, 0), 2)
	assert.Equal(t, "local", m.Extract())
	m.Clear()

	// With '/' allowed in words the whole path is one word.
	m.SetClassifier(selection.BoundaryClassifier("()"))
	m.Begin(cellPoint(5, 0), 2)
	assert.Equal(t, "usr/local/bin", m.Extract())
}

func TestClickCountNormalization(t *testing.T) {
	g := term.NewGrid(20, 1, 10)
	g.WriteLine("foo bar")
	m := newTestManager(g, 20, 1)

	tests := []struct {
		clicks int
		want   string
	}{
		{0, "b"},       // defaulted to a single click
		{1, "b"},       // cell
		{2, "bar"},     // word
		{3, "foo bar"}, // line
		{4, "b"},       // cycles back to cell
		{5, "bar"},     // and to word
	}
	for _, tt := range tests {
		m.Begin(cellPoint(4, 0), tt.clicks)
		m.End()
		assert.Equal(t, tt.want, m.Extract(), "clickCount=%d", tt.clicks)
		m.Clear()
	}
}

func TestVisibleSegments(t *testing.T) {
	g := term.NewGrid(10, 3, 100)
	for i := 0; i < 10; i++ {
		g.WriteLine("xxxxxxxxxx")
	}
	m := newTestManager(g, 10, 3)

	// Select buffer lines -1..2 (line 2 exists; -1 is scrollback).
	g.Scroll(-1)
	m.Begin(cellPoint(2, 0), 1) // line -1, col 2
	g.Scroll(1000)              // back to live view
	m.Extend(cellPoint(5, 2))   // line 2, col 5
	m.End()

	segs := m.VisibleSegments()
	// At offset 0 the viewport shows lines 0..2; line -1 is off
	// screen, the middle rows run edge to edge, the focus row stops
	// at the focus column.
	require.Len(t, segs, 3)
	assert.Equal(t, selection.Segment{Row: 0, StartCol: 0, EndCol: 9}, segs[0])
	assert.Equal(t, selection.Segment{Row: 1, StartCol: 0, EndCol: 9}, segs[1])
	assert.Equal(t, selection.Segment{Row: 2, StartCol: 0, EndCol: 5}, segs[2])

	// Scrolled back one line, the anchor row enters the viewport and
	// the focus row leaves it.
	g.Scroll(-1)
	segs = m.VisibleSegments()
	require.Len(t, segs, 3)
	assert.Equal(t, selection.Segment{Row: 0, StartCol: 2, EndCol: 9}, segs[0])
	assert.Equal(t, selection.Segment{Row: 1, StartCol: 0, EndCol: 9}, segs[1])
	assert.Equal(t, selection.Segment{Row: 2, StartCol: 0, EndCol: 9}, segs[2])
}

func TestVisibleSegmentsEmptyWithoutSelection(t *testing.T) {
	g := term.NewGrid(10, 3, 10)
	m := newTestManager(g, 10, 3)
	assert.Empty(t, m.VisibleSegments())
}

func TestEventBusNotifications(t *testing.T) {
	g := term.NewGrid(10, 2, 10)
	g.WriteLine("hello")
	m := newTestManager(g, 10, 2)

	changed := 0
	cleared := 0
	id := m.Events().ConnectChanged(func() { changed++ })
	m.Events().ConnectCleared(func() { cleared++ })

	m.Begin(cellPoint(0, 1), 1)
	m.Extend(cellPoint(3, 1))
	m.End()
	assert.Equal(t, 3, changed)
	assert.Equal(t, 0, cleared)

	m.Clear()
	assert.Equal(t, 1, cleared)

	m.Events().Disconnect(id)
	m.Begin(cellPoint(0, 1), 1)
	assert.Equal(t, 3, changed, "disconnected handler stays quiet")
}

func TestSelectionSurvivesNewOutput(t *testing.T) {
	// Content scrolling into history moves rows to new buffer lines;
	// the selection keeps pointing at the coordinates it was made
	// with. This mirrors how scrolling the viewport leaves buffer
	// positions untouched.
	g := term.NewGrid(10, 2, 10)
	g.WriteLine("first")
	g.WriteLine("second")
	m := newTestManager(g, 10, 2)

	m.Begin(cellPoint(0, 0), 1)
	m.Extend(cellPoint(9, 0))
	m.End()
	assert.Equal(t, "first", m.Extract())

	g.WriteLine("third")
	assert.Equal(t, "second", m.Extract(), "line 0 now holds the next row")
}
