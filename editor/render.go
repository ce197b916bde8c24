package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/mdpad/internal/grapheme"
)

func (m *Model) renderContent() string {
	lines := m.buf.Lines()
	caret := m.buf.Caret()
	caretRow := m.buf.CaretPos().Row
	selStart, selEnd, selOK := m.buf.Selection()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(lines))
	}

	left := maxInt(m.xOffset, 0)
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(len(lines)); w > 0 {
		right = left + w
	}

	out := make([]string, 0, len(lines))
	lineStart := 0
	for row, line := range lines {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == caretRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		ls := lineSpan{
			start:    lineStart,
			caret:    -1,
			selStart: -1,
			selEnd:   -1,
		}
		if m.focused && row == caretRow {
			ls.caret = caret
		}
		if selOK {
			ls.selStart, ls.selEnd = selStart, selEnd
		}
		sb.WriteString(m.renderLine(line, ls, left, right))

		out = append(out, sb.String())
		lineStart += utf8.RuneCountInString(line) + 1
	}
	return strings.Join(out, "\n")
}

type lineSpan struct {
	start            int // rune offset of the line start
	caret            int // -1 when the caret is not drawn on this line
	selStart, selEnd int
}

// renderLine draws the cells of one line that fall in [left, right).
func (m *Model) renderLine(line string, ls lineSpan, left, right int) string {
	st := m.cfg.Style
	var sb strings.Builder

	cell := 0
	off := ls.start
	for _, g := range grapheme.Split(line) {
		w := m.clusterWidth(g, cell)
		text := g
		if g == "\t" {
			text = strings.Repeat(" ", w)
		}

		if cell >= left && cell+w <= right {
			switch {
			case off == ls.caret:
				sb.WriteString(st.Cursor.Render(text))
			case off >= ls.selStart && off < ls.selEnd:
				sb.WriteString(st.Selection.Render(text))
			default:
				sb.WriteString(st.Text.Render(text))
			}
		}
		cell += w
		off += utf8.RuneCountInString(g)
	}

	// Caret at end of line.
	if off == ls.caret && cell >= left && cell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// clusterWidth returns the terminal cell width of a grapheme cluster starting
// at the given cell.
func (m *Model) clusterWidth(g string, cell int) int {
	if g == "\t" {
		tw := m.cfg.TabWidth
		return tw - cell%tw
	}
	w := runewidth.StringWidth(g)
	if w == 0 {
		w = uniseg.StringWidth(g)
	}
	if w == 0 {
		w = 1
	}
	return w
}

// cellOfCol returns the cell where the rune column col starts.
func (m *Model) cellOfCol(line string, col int) int {
	cell := 0
	off := 0
	for _, g := range grapheme.Split(line) {
		if off >= col {
			break
		}
		cell += m.clusterWidth(g, cell)
		off += utf8.RuneCountInString(g)
	}
	return cell
}

func (m *Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize()
	if m.cfg.ShowLineNums {
		w -= gutterDigits(lineCount) + 1
	}
	if w < 0 {
		return 0
	}
	return w
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprint(lineCount))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
