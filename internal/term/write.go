package term

import (
	runewidth "github.com/mattn/go-runewidth"
)

// WriteLine lays the text out at the bottom of the live screen as one
// logical line, soft-wrapping at the grid width. Every row except the
// last carries the wrap flag. The rows scrolled off the top of the
// live screen are captured into history.
func (g *Grid) WriteLine(s string) {
	g.Locked(func(v *View) {
		for _, row := range v.layout(s) {
			v.appendRow(row)
		}
	})
}

// layout splits text into grid rows with width-aware cell placement:
// wide runes occupy a lead cell plus a spacer cell, zero-width runes
// attach to the preceding cell's combining list.
func (v *View) layout(s string) []Row {
	cols := v.g.cols
	rows := []Row{}
	cur := newRow(cols)
	col := 0
	lastBase := -1

	flush := func(wrapped bool) {
		cur.Wrapped = wrapped
		rows = append(rows, cur)
		cur = newRow(cols)
		col = 0
		lastBase = -1
	}

	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			// Combining mark: belongs to the previous base cell.
			// With no base yet there is nothing to attach it to.
			if lastBase >= 0 {
				cur.Cells[lastBase].Combining = append(cur.Cells[lastBase].Combining, ch)
			}
			continue
		}
		if w > cols {
			// Cannot ever fit; dropping beats wrapping forever.
			continue
		}
		if col+w > cols {
			flush(true)
		}
		cur.Cells[col] = Cell{Rune: ch, Width: w}
		lastBase = col
		if w == WidthWide && col+1 < cols {
			cur.Cells[col+1] = Cell{Spacer: true}
		}
		col += w
	}
	flush(false)
	return rows
}

// appendRow scrolls the live screen up by one and places the row at
// the bottom, saving the departing top row to history.
func (v *View) appendRow(r Row) {
	g := v.g
	g.pushHistory(g.live[0])
	copy(g.live, g.live[1:])
	g.live[g.lines-1] = r
}
