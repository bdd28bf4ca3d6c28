// main.go - Interactive demo shell for the selection subsystem.
// Fills a grid with sample content and wires mouse events through the
// selection manager: drag to select, double-click for words,
// triple-click for logical lines, drag past the edges to auto-scroll
// through scrollback.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DigitalPals/portal/internal/selection"
	"github.com/DigitalPals/portal/internal/term"
)

// cellPx is the nominal pixel size of one cell. The terminal reports
// mouse positions in cells; the selection manager works in pixels, so
// cell coordinates are scaled up to cell centers.
const cellPx float32 = 10

var (
	highlightStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("24")).
			Foreground(lipgloss.Color("255"))
	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("250"))
)

type model struct {
	settings *AppSettings

	grid   *term.Grid
	sel    *selection.Manager
	clicks clickCounter

	width  int
	height int
	notice *string
}

func newModel(settings *AppSettings) model {
	return model{settings: settings, notice: new(string)}
}

func (m model) Init() tea.Cmd {
	return nil
}

// viewportLines returns the grid height: everything except the status bar.
func (m model) viewportLines() int {
	if m.height < 2 {
		return 1
	}
	return m.height - 1
}

func (m *model) rebuild() {
	cols := m.width
	lines := m.viewportLines()
	if cols < 1 {
		cols = 1
	}
	m.grid = term.NewGrid(cols, lines, m.settings.ScrollbackLines)
	fillSampleContent(m.grid, cols)

	bounds := selection.Bounds{
		Width:  float32(cols) * cellPx,
		Height: float32(lines) * cellPx,
	}
	m.sel = selection.NewManager(m.grid, selection.Metrics{CellWidth: cellPx, CellHeight: cellPx}, bounds)
	m.sel.SetAutoScroll(m.settings.AutoScrollConfig())
	m.sel.SetClassifier(selection.BoundaryClassifier(m.settings.WordSeparators))

	sel, notice, copyOnSelect := m.sel, m.notice, m.settings.CopyOnSelect
	m.sel.Events().ConnectChanged(func() {
		if copyOnSelect && !sel.IsSelecting() && sel.HasSelection() {
			copyText(sel.Extract(), notice)
		}
	})
	m.sel.Events().ConnectCleared(func() {
		*notice = "selection cleared"
	})
}

// mousePoint maps a cell coordinate to the pixel center of that cell.
func mousePoint(x, y int) selection.Point {
	return selection.Point{
		X: (float32(x) + 0.5) * cellPx,
		Y: (float32(y) + 0.5) * cellPx,
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuild()
		return m, nil

	case tea.MouseMsg:
		if m.sel == nil {
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionPress:
			switch msg.Button {
			case tea.MouseButtonLeft:
				count := m.clicks.press(msg.X, msg.Y)
				m.sel.Begin(mousePoint(msg.X, msg.Y), count)
			case tea.MouseButtonWheelUp:
				m.grid.Scroll(-3)
			case tea.MouseButtonWheelDown:
				m.grid.Scroll(3)
			}
		case tea.MouseActionMotion:
			if m.sel.IsSelecting() {
				m.sel.Extend(mousePoint(msg.X, msg.Y))
			}
		case tea.MouseActionRelease:
			m.sel.End()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.sel != nil {
				m.sel.Clear()
			}
		case "c", "enter":
			if m.sel != nil && m.sel.HasSelection() {
				copyText(m.sel.Extract(), m.notice)
			}
		case "a":
			// Toggle the alternate screen to show auto-scroll
			// suppression while fullscreen apps run.
			if m.grid == nil {
				return m, nil
			}
			var alt bool
			m.grid.Locked(func(v *term.View) { alt = v.AltScreen() })
			m.grid.SetAltScreen(!alt)
			if alt {
				*m.notice = "alternate screen off"
			} else {
				*m.notice = "alternate screen on"
			}
		}
		return m, nil
	}
	return m, nil
}

func copyText(text string, notice *string) {
	if text == "" {
		*notice = "nothing selected"
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		*notice = fmt.Sprintf("clipboard error: %v", err)
		return
	}
	*notice = fmt.Sprintf("copied %d chars", len(text))
}

func (m model) View() string {
	if m.grid == nil {
		return "starting..."
	}

	segs := make(map[int]selection.Segment)
	for _, s := range m.sel.VisibleSegments() {
		segs[s.Row] = s
	}

	var b strings.Builder
	var offset, history int
	m.grid.Locked(func(v *term.View) {
		offset = v.DisplayOffset()
		history = v.HistoryLen()
		for row := 0; row < v.Lines(); row++ {
			r := v.Row(row - offset)
			if r == nil {
				b.WriteByte('\n')
				continue
			}
			if seg, ok := segs[row]; ok {
				b.WriteString(renderCells(r, 0, seg.StartCol-1))
				b.WriteString(highlightStyle.Render(renderCells(r, seg.StartCol, seg.EndCol)))
				b.WriteString(renderCells(r, seg.EndCol+1, len(r.Cells)-1))
			} else {
				b.WriteString(renderCells(r, 0, len(r.Cells)-1))
			}
			b.WriteByte('\n')
		}
	})

	status := fmt.Sprintf(" scrollback %d/%d | drag: select  2x: word  3x: line  c: copy  esc: clear  a: alt  q: quit", offset, history)
	if *m.notice != "" {
		status += " | " + *m.notice
	}
	b.WriteString(statusStyle.Width(m.width).Render(status))
	return b.String()
}

// renderCells flattens an inclusive cell span to a string, skipping
// wide-glyph spacers and keeping combining marks with their base.
func renderCells(r *term.Row, from, to int) string {
	if from < 0 {
		from = 0
	}
	var out []rune
	for col := from; col <= to && col < len(r.Cells); col++ {
		c := r.Cells[col]
		if c.Spacer {
			continue
		}
		ch := c.Rune
		if ch == 0 {
			ch = ' '
		}
		out = append(out, ch)
		out = append(out, c.Combining...)
	}
	return string(out)
}

// fillSampleContent writes enough mixed-width content to leave a real
// scrollback behind the live screen.
func fillSampleContent(g *term.Grid, cols int) {
	for i := 1; i <= 120; i++ {
		switch {
		case i%17 == 0:
			g.WriteLine(fmt.Sprintf("%4d  wide glyphs: 世界 こんにちは 你好 ... and a café résumé", i))
		case i%23 == 0:
			g.WriteLine(fmt.Sprintf("%4d  %s", i, strings.Repeat("soft-wrapped payload ", cols/10)))
		default:
			g.WriteLine(fmt.Sprintf("%4d  lorem ipsum dolor sit amet, consectetur adipiscing elit", i))
		}
	}
}

func main() {
	settings := LoadSettings(GetSettingsPath())

	p := tea.NewProgram(newModel(settings),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
