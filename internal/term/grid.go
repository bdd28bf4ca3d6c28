package term

import (
	"container/list"
	"sync"
)

// Grid is the terminal content model: a live screen of fixed height
// plus a scrollback history capped at a maximum line count. Lines are
// addressed by a signed index: 0..Lines()-1 is the live screen top to
// bottom, -1 is the most recent history line, and more negative values
// reach further back, down to -HistoryLen().
//
// The grid is shared between the UI event loop and whatever feeds it
// content, so all access goes through Locked; the *View handed to the
// callback is only valid inside that call.
type Grid struct {
	mu sync.Mutex

	cols  int
	lines int

	live    []Row
	history *list.List // of Row, oldest at the front

	maxHistory    int
	displayOffset int
	altScreen     bool
}

// NewGrid creates a grid with the given live size and history cap.
func NewGrid(cols, lines, maxHistory int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if lines < 1 {
		lines = 1
	}
	if maxHistory < 0 {
		maxHistory = 0
	}
	g := &Grid{
		cols:       cols,
		lines:      lines,
		history:    list.New(),
		maxHistory: maxHistory,
	}
	g.live = make([]Row, lines)
	for i := range g.live {
		g.live[i] = newRow(cols)
	}
	return g
}

// Locked runs fn while holding the grid mutex. This is the only way
// to reach rows, the display offset, or the alternate-screen flag;
// the view must not escape fn.
func (g *Grid) Locked(fn func(v *View)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&View{g: g})
}

// Scroll adjusts the display offset by delta lines. Positive delta
// moves toward the live bottom, negative toward history.
func (g *Grid) Scroll(delta int) {
	g.Locked(func(v *View) {
		v.ScrollDisplay(delta)
	})
}

// SetAltScreen flips the alternate-screen flag. Alternate screens
// have no scrollback; while set, scrolling is a no-op.
func (g *Grid) SetAltScreen(on bool) {
	g.Locked(func(v *View) {
		v.g.altScreen = on
		if on {
			v.g.displayOffset = 0
		}
	})
}

// View is scoped access to the grid contents, valid only inside a
// Locked callback.
type View struct {
	g *Grid
}

// Cols returns the grid width in cells.
func (v *View) Cols() int { return v.g.cols }

// Lines returns the live screen height.
func (v *View) Lines() int { return v.g.lines }

// HistoryLen returns the number of lines currently held in scrollback.
func (v *View) HistoryLen() int { return v.g.history.Len() }

// HistoryLimit returns the scrollback cap.
func (v *View) HistoryLimit() int { return v.g.maxHistory }

// DisplayOffset returns how many lines the viewport is scrolled back
// from the live bottom; 0 means viewing the most recent output.
func (v *View) DisplayOffset() int { return v.g.displayOffset }

// AltScreen reports whether the alternate screen is active.
func (v *View) AltScreen() bool { return v.g.altScreen }

// Row returns the row at the given signed line index, or nil when the
// index is outside [-HistoryLen(), Lines()-1]. Callers clamp indices
// before use; the nil return is a backstop, not an error channel.
func (v *View) Row(line int) *Row {
	if line >= 0 {
		if line >= v.g.lines {
			return nil
		}
		return &v.g.live[line]
	}
	idx := v.g.history.Len() + line // -1 is the back of the list
	if idx < 0 {
		return nil
	}
	elem := v.g.history.Back()
	for i := v.g.history.Len() - 1; elem != nil && i > idx; i-- {
		elem = elem.Prev()
	}
	if elem == nil {
		return nil
	}
	row := elem.Value.(Row)
	return &row
}

// ScrollDisplay adjusts the display offset by delta lines, clamped to
// [0, HistoryLen()]. Positive delta moves toward the live bottom,
// negative toward history. In alternate-screen mode there is no
// scrollback and the call does nothing.
func (v *View) ScrollDisplay(delta int) {
	if v.g.altScreen {
		return
	}
	off := v.g.displayOffset - delta
	if off < 0 {
		off = 0
	}
	if max := v.g.history.Len(); off > max {
		off = max
	}
	v.g.displayOffset = off
}

// ClampLine restricts a signed line index to the addressable range
// [-HistoryLen(), Lines()-1].
func (v *View) ClampLine(line int) int {
	if min := -v.g.history.Len(); line < min {
		return min
	}
	if max := v.g.lines - 1; line > max {
		return max
	}
	return line
}

// pushHistory appends a copy of the row to scrollback, trimming the
// oldest line once the cap is exceeded.
func (g *Grid) pushHistory(r Row) {
	if g.maxHistory == 0 {
		return
	}
	g.history.PushBack(r.clone())
	for g.history.Len() > g.maxHistory {
		g.history.Remove(g.history.Front())
	}
	if g.displayOffset > g.history.Len() {
		g.displayOffset = g.history.Len()
	}
}
