package selection

import (
	"strings"
	"unicode"

	"github.com/DigitalPals/portal/internal/term"
)

// Classifier reports whether a rune is part of a word. Double-click
// selection expands over the contiguous run of runes the classifier
// accepts; everything else is a boundary.
type Classifier func(r rune) bool

// DefaultWordBoundaries is the punctuation set that splits words when
// no custom classifier is installed.
const DefaultWordBoundaries = "()[]{}\"'<>,.;:!?`|&=+-*/\\@#$%^"

// BoundaryClassifier builds a classifier from a separator set:
// whitespace and every rune in boundaries end a word.
func BoundaryClassifier(boundaries string) Classifier {
	return func(r rune) bool {
		if r == 0 || unicode.IsSpace(r) {
			return false
		}
		return !strings.ContainsRune(boundaries, r)
	}
}

// baseRune resolves the rune a column displays; a spacer column
// resolves to the wide rune that owns it.
func baseRune(row *term.Row, col int) rune {
	if col < 0 || col >= len(row.Cells) {
		return 0
	}
	c := row.Cells[col]
	if c.Spacer && col > 0 {
		c = row.Cells[col-1]
	}
	return c.Rune
}

// wordSpan expands outward from col to the edges of the contiguous
// word run and returns the inclusive column range. A boundary rune at
// col yields the single-column span (col, col). Pure over the row.
func wordSpan(row *term.Row, col int, isWord Classifier) (start, end int) {
	if row == nil || len(row.Cells) == 0 {
		return col, col
	}
	col = clamp(col, 0, len(row.Cells)-1)
	start, end = col, col
	if !isWord(baseRune(row, col)) {
		return start, end
	}
	for start > 0 && isWord(baseRune(row, start-1)) {
		start--
	}
	for end < len(row.Cells)-1 && isWord(baseRune(row, end+1)) {
		end++
	}
	return start, end
}

// logicalLineSpan follows wrap-flag chains out from line in both
// directions and returns the first and last row of the logical line.
// A row's wrap flag means its content continues on the next row, so
// the chain runs backward while the previous row is wrapped and
// forward while the current row is wrapped.
func logicalLineSpan(v *term.View, line int) (first, last int) {
	first, last = line, line
	for first > -v.HistoryLen() {
		prev := v.Row(first - 1)
		if prev == nil || !prev.Wrapped {
			break
		}
		first--
	}
	for last < v.Lines()-1 {
		cur := v.Row(last)
		if cur == nil || !cur.Wrapped {
			break
		}
		last++
	}
	return first, last
}
