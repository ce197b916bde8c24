package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

type selectionState struct {
	active bool
	anchor int
}

// Buffer is the editor's single current document plus caret and selection.
// The caret is the moving end of the selection; anchor is the fixed end.
type Buffer struct {
	text    []rune
	version uint64

	caret int
	sel   selectionState

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		text: []rune(text),
		opt:  opt,
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Caret() int { return b.caret }

// CaretPos returns the caret as a row/column position.
func (b *Buffer) CaretPos() Pos {
	p, _ := b.PosFromOffset(b.caret, OffsetClamp)
	return p
}

// SetCaret moves the caret to off, clamped into the document, and clears
// any selection.
func (b *Buffer) SetCaret(off int) {
	next := clampInt(off, 0, len(b.text))
	if next == b.caret && !b.sel.active {
		return
	}
	b.caret = next
	b.sel = selectionState{}
	b.version++
}

// Selection returns the normalized non-empty selection.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if !b.sel.active || b.sel.anchor == b.caret {
		return 0, 0, false
	}
	start, end = OrderRange(b.sel.anchor, b.caret)
	return start, end, true
}

// SelectionRaw returns the selection anchor and caret without ordering them,
// so hosts can keep the selection direction.
func (b *Buffer) SelectionRaw() (anchor, caret int, ok bool) {
	if !b.sel.active || b.sel.anchor == b.caret {
		return 0, 0, false
	}
	return b.sel.anchor, b.caret, true
}

// Range returns the selection, or the collapsed caret when nothing is
// selected. Both offsets are always within [0, Len()].
func (b *Buffer) Range() (start, end int) {
	if s, e, ok := b.Selection(); ok {
		return s, e
	}
	return b.caret, b.caret
}

// SelectedText returns the text covered by the selection.
func (b *Buffer) SelectedText() string {
	s, e, ok := b.Selection()
	if !ok {
		return ""
	}
	return string(b.text[s:e])
}

func (b *Buffer) SetSelection(anchor, caret int) {
	anchor = clampInt(anchor, 0, len(b.text))
	caret = clampInt(caret, 0, len(b.text))

	next := selectionState{}
	if anchor != caret {
		next = selectionState{active: true, anchor: anchor}
	}
	if next == b.sel && caret == b.caret {
		return
	}
	b.sel = next
	b.caret = caret
	b.version++
}

func (b *Buffer) ClearSelection() {
	if _, _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

// LineCount returns the number of logical lines; an empty document has one.
func (b *Buffer) LineCount() int { return len(b.lineStarts()) }

// Lines returns the document split on '\n'.
func (b *Buffer) Lines() []string {
	return strings.Split(string(b.text), "\n")
}

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	starts := b.lineStarts()
	if row < 0 || row >= len(starts) {
		return ""
	}
	start, end := b.lineBounds(starts, row)
	return string(b.text[start:end])
}

func (b *Buffer) lineStarts() []int {
	starts := []int{0}
	for i, r := range b.text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineBounds returns the rune range of row, excluding its trailing '\n'.
func (b *Buffer) lineBounds(starts []int, row int) (start, end int) {
	row = clampInt(row, 0, len(starts)-1)
	start = starts[row]
	end = len(b.text)
	if row+1 < len(starts) {
		end = starts[row+1] - 1
	}
	return start, end
}

func rowOf(starts []int, off int) int {
	row := 0
	for i, s := range starts {
		if s > off {
			break
		}
		row = i
	}
	return row
}
