package selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalPals/portal/internal/selection"
)

func TestPixelBufferRoundTrip(t *testing.T) {
	m := selection.Metrics{CellWidth: 9, CellHeight: 18}
	b := selection.Bounds{X: 12, Y: 34, Width: 9 * 80, Height: 18 * 24}

	positions := []selection.BufferPos{
		{Col: 0, Line: 0},
		{Col: 79, Line: 23},
		{Col: 40, Line: 5},
		{Col: 3, Line: -2},
		{Col: 79, Line: -10},
	}
	for _, offset := range []int{0, 2, 10} {
		for _, pos := range positions {
			px, visible := m.BufferToPixel(pos, b, offset, 24)
			if !visible {
				continue
			}
			got := m.PixelToBuffer(px, b, 80, 24, offset)
			assert.Equal(t, pos, got, "offset %d", offset)
		}
	}
}

func TestPixelToBufferClampsOutOfBounds(t *testing.T) {
	m := selection.Metrics{CellWidth: 10, CellHeight: 10}
	b := selection.Bounds{Width: 100, Height: 50} // 10 cols, 5 rows

	tests := []struct {
		name string
		p    selection.Point
		want selection.BufferPos
	}{
		{"far left", selection.Point{X: -500, Y: 25}, selection.BufferPos{Col: 0, Line: 2}},
		{"far right", selection.Point{X: 9999, Y: 25}, selection.BufferPos{Col: 9, Line: 2}},
		{"above", selection.Point{X: 55, Y: -80}, selection.BufferPos{Col: 5, Line: 0}},
		{"below", selection.Point{X: 55, Y: 700}, selection.BufferPos{Col: 5, Line: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.PixelToBuffer(tt.p, b, 10, 5, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBufferToViewportRowVisibility(t *testing.T) {
	// With the viewport scrolled back 3 lines, lines -3..rows-4 are
	// on screen and the live bottom lines are not.
	row, ok := selection.BufferToViewportRow(-3, 3, 24)
	require.True(t, ok)
	assert.Equal(t, 0, row)

	row, ok = selection.BufferToViewportRow(20, 3, 24)
	require.True(t, ok)
	assert.Equal(t, 23, row)

	_, ok = selection.BufferToViewportRow(21, 3, 24)
	assert.False(t, ok, "line scrolled below the viewport")

	_, ok = selection.BufferToViewportRow(-4, 3, 24)
	assert.False(t, ok, "line scrolled above the viewport")
}
