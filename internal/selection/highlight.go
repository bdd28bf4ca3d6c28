package selection

import (
	"github.com/DigitalPals/portal/internal/term"
)

// Segment is a highlighted column run on one visible viewport row.
// Columns are inclusive.
type Segment struct {
	Row      int
	StartCol int
	EndCol   int
}

// VisibleSegments enumerates the selection's intersection with the
// current viewport for highlight rendering. Rendering state is never
// cached; the segments are recomputed from (anchor, focus, mode,
// displayOffset) on every call.
func (m *Manager) VisibleSegments() []Segment {
	var segs []Segment
	m.grid.Locked(func(v *term.View) {
		start, end, ok := m.rangeLocked(v)
		if !ok {
			return
		}
		lastCol := v.Cols() - 1
		for row := 0; row < v.Lines(); row++ {
			line := row - v.DisplayOffset()
			if line < start.Line || line > end.Line {
				continue
			}
			seg := Segment{Row: row, StartCol: 0, EndCol: lastCol}
			if line == start.Line {
				seg.StartCol = start.Col
			}
			if line == end.Line {
				seg.EndCol = end.Col
			}
			segs = append(segs, seg)
		}
	})
	return segs
}
