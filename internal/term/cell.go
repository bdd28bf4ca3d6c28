package term

// Cell width markers (matching the 0/1/2 scheme used for cell width
// tracking: 0 = continuation of a wide glyph, 1 = normal, 2 = wide lead).
const (
	WidthSpacer = 0
	WidthNormal = 1
	WidthWide   = 2
)

// Cell is a single character cell in the grid.
type Cell struct {
	Rune  rune
	Width int

	// Spacer marks the trailing half of a wide glyph. Spacer cells
	// carry no character of their own and contribute nothing to
	// extracted text.
	Spacer bool

	// Combining holds zero-width code points (combining marks,
	// variation selectors) attached to this cell's base rune, in
	// input order.
	Combining []rune
}

// Blank reports whether the cell holds no visible character.
func (c Cell) Blank() bool {
	return c.Spacer || c.Rune == 0 || c.Rune == ' '
}

// Row is one fixed-width line of the grid.
type Row struct {
	Cells []Cell

	// Wrapped marks a row whose content continues onto the next row
	// without a line break.
	Wrapped bool
}

func newRow(cols int) Row {
	cells := make([]Cell, cols)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Width: WidthNormal}
	}
	return Row{Cells: cells}
}

// clone returns a deep copy of the row, so a line pushed into history
// cannot alias the live buffer.
func (r Row) clone() Row {
	out := Row{Cells: make([]Cell, len(r.Cells)), Wrapped: r.Wrapped}
	copy(out.Cells, r.Cells)
	for i, c := range r.Cells {
		if len(c.Combining) > 0 {
			out.Cells[i].Combining = append([]rune(nil), c.Combining...)
		}
	}
	return out
}
