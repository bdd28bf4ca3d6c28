package selection

import (
	"strings"

	"github.com/DigitalPals/portal/internal/term"
)

// Extract reconstructs the selected text straight from the grid by
// buffer coordinate, so the result is identical whether the rows are
// on screen or in scrollback. Wide glyphs appear once (their spacer
// cells are skipped), zero-width marks follow their base rune, and a
// row joined to its successor by a wrap flag contributes no line
// separator.
func (m *Manager) Extract() string {
	var out strings.Builder
	m.grid.Locked(func(v *term.View) {
		start, end, ok := m.rangeLocked(v)
		if !ok {
			return
		}
		for line := start.Line; line <= end.Line; line++ {
			row := v.Row(line)
			if row == nil {
				continue
			}
			startCol := 0
			endCol := len(row.Cells) - 1
			if line == start.Line {
				startCol = clamp(start.Col, 0, endCol)
			}
			if line == end.Line {
				endCol = clamp(end.Col, 0, endCol)
			}
			out.WriteString(extractSpan(row, startCol, endCol))
			if line < end.Line && !row.Wrapped {
				out.WriteByte('\n')
			}
		}
	})
	return out.String()
}

// extractSpan renders the inclusive cell span of one row, trimming
// the blank cells trailing the span but keeping interior blanks.
func extractSpan(row *term.Row, startCol, endCol int) string {
	var runes []rune
	keep := 0 // length of runes up to and including the last non-blank cell
	for col := startCol; col <= endCol && col < len(row.Cells); col++ {
		c := row.Cells[col]
		if c.Spacer {
			continue
		}
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		runes = append(runes, r)
		runes = append(runes, c.Combining...)
		if !c.Blank() {
			keep = len(runes)
		}
	}
	return string(runes[:keep])
}
