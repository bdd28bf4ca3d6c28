package selection_test

import (
	"github.com/DigitalPals/portal/internal/selection"
	"github.com/DigitalPals/portal/internal/term"
)

// cellPoint returns the pixel center of a viewport cell under the
// 1px-per-cell metrics the tests use.
func cellPoint(col, row int) selection.Point {
	return selection.Point{X: float32(col) + 0.5, Y: float32(row) + 0.5}
}

// newTestManager builds a manager over the grid with 1px cells and
// edge auto-scroll disabled, so pointer math is direct and tests that
// are not about auto-scroll cannot trip it by dragging near an edge.
func newTestManager(g *term.Grid, cols, rows int) *selection.Manager {
	m := selection.NewManager(g,
		selection.Metrics{CellWidth: 1, CellHeight: 1},
		selection.Bounds{Width: float32(cols), Height: float32(rows)})
	cfg := selection.DefaultAutoScrollConfig()
	cfg.EdgeZonePx = 0
	m.SetAutoScroll(cfg)
	return m
}
