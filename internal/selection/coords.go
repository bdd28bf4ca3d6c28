package selection

// BufferPos is an absolute coordinate into the grid. Line is signed:
// 0..liveHeight-1 addresses the live screen, negative values address
// scrollback (more negative = further into history). Buffer positions
// do not move when the viewport scrolls, which is what makes selection
// anchoring survive scrolling.
type BufferPos struct {
	Col  int
	Line int
}

// Before reports whether p comes before q in row-major order.
func (p BufferPos) Before(q BufferPos) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col <= q.Col)
}

// ViewportPos is a cell coordinate inside the visible viewport; row 0
// is the top visible row.
type ViewportPos struct {
	Col int
	Row int
}

// Point is a pointer position in pixels.
type Point struct {
	X, Y float32
}

// Bounds is the widget rectangle the viewport occupies, in pixels.
type Bounds struct {
	X, Y, Width, Height float32
}

// Metrics holds the cell box size used to translate between pixels
// and cells.
type Metrics struct {
	CellWidth  float32
	CellHeight float32
}

// PixelToViewport converts a pointer position to a viewport cell,
// clamping into [0, cols-1] x [0, rows-1] first. A drag that leaves
// the widget bounds still yields a valid edge cell, never an error.
func (m Metrics) PixelToViewport(p Point, b Bounds, cols, rows int) ViewportPos {
	col := int((p.X - b.X) / m.CellWidth)
	row := int((p.Y - b.Y) / m.CellHeight)
	return ViewportPos{
		Col: clamp(col, 0, cols-1),
		Row: clamp(row, 0, rows-1),
	}
}

// ViewportToBuffer translates a viewport cell to an absolute buffer
// position at the given display offset: bufferLine = row - offset.
func ViewportToBuffer(v ViewportPos, displayOffset int) BufferPos {
	return BufferPos{Col: v.Col, Line: v.Row - displayOffset}
}

// BufferToViewportRow returns the viewport row a buffer line occupies
// at the given display offset, and whether it is visible at all. Used
// for highlight rendering only; selection logic works in buffer
// coordinates throughout.
func BufferToViewportRow(line, displayOffset, rows int) (int, bool) {
	row := line + displayOffset
	if row < 0 || row >= rows {
		return 0, false
	}
	return row, true
}

// PixelToBuffer clamps a pointer position into the viewport and
// translates it to an absolute buffer position.
func (m Metrics) PixelToBuffer(p Point, b Bounds, cols, rows, displayOffset int) BufferPos {
	return ViewportToBuffer(m.PixelToViewport(p, b, cols, rows), displayOffset)
}

// BufferToPixel returns the pixel center of a buffer position's cell,
// and false when the line is scrolled out of view.
func (m Metrics) BufferToPixel(pos BufferPos, b Bounds, displayOffset, rows int) (Point, bool) {
	row, ok := BufferToViewportRow(pos.Line, displayOffset, rows)
	if !ok {
		return Point{}, false
	}
	return Point{
		X: b.X + (float32(pos.Col)+0.5)*m.CellWidth,
		Y: b.Y + (float32(row)+0.5)*m.CellHeight,
	}, true
}

func clamp(n, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
