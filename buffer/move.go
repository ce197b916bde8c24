package buffer

import "github.com/iw2rmb/mdpad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, grows the selection from its anchor; if false clears it
}

func (b *Buffer) Move(m Move) {
	prevCaret := b.caret
	prevSel := b.sel

	next := clampInt(b.moveCaret(prevCaret, m), 0, len(b.text))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCaret
		if prevSel.active && prevSel.anchor != prevCaret {
			anchor = prevSel.anchor
		}
		if anchor != next {
			nextSel = selectionState{active: true, anchor: anchor}
		}
	}

	if prevCaret == next && prevSel == nextSel {
		return
	}

	b.caret = next
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCaret(off int, m Move) int {
	starts := b.lineStarts()
	row := rowOf(starts, off)
	lineStart, lineEnd := b.lineBounds(starts, row)
	col := off - lineStart

	switch m.Unit {
	case MoveGrapheme:
		line := string(b.text[lineStart:lineEnd])
		switch m.Dir {
		case DirLeft:
			if col == 0 {
				return off - 1
			}
			return lineStart + grapheme.Prev(line, col)
		case DirRight:
			if off == lineEnd {
				return off + 1
			}
			return lineStart + grapheme.Next(line, col)
		}
		return b.moveLine(starts, row, col, m.Dir, off)
	case MoveWord:
		line := string(b.text[lineStart:lineEnd])
		switch m.Dir {
		case DirLeft:
			return lineStart + prevWordBoundary(line, col)
		case DirRight:
			return lineStart + nextWordBoundary(line, col)
		}
		return b.moveLine(starts, row, col, m.Dir, off)
	case MoveLine:
		return b.moveLine(starts, row, col, m.Dir, off)
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp:
			return 0
		case DirEnd, DirDown:
			return len(b.text)
		}
	}
	return off
}

func (b *Buffer) moveLine(starts []int, row, col int, dir MoveDir, off int) int {
	switch dir {
	case DirHome:
		start, _ := b.lineBounds(starts, row)
		return start
	case DirEnd:
		_, end := b.lineBounds(starts, row)
		return end
	case DirUp:
		if row == 0 {
			return off
		}
		start, end := b.lineBounds(starts, row-1)
		return start + minInt(col, end-start)
	case DirDown:
		if row == len(starts)-1 {
			return off
		}
		start, end := b.lineBounds(starts, row+1)
		return start + minInt(col, end-start)
	default:
		return off
	}
}

// Word boundary rules (v0):
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line string, col int) int {
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	i := clusterIndex(bounds, col)
	for i > 0 && grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(clusters[i-1]) {
		i--
	}
	return bounds[i]
}

func nextWordBoundary(line string, col int) int {
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	i := clusterIndex(bounds, col)
	for i < len(clusters) && grapheme.IsSpace(clusters[i]) {
		i++
	}
	for i < len(clusters) && !grapheme.IsSpace(clusters[i]) {
		i++
	}
	return bounds[i]
}

// clusterIndex returns the index of the last boundary at or before col.
func clusterIndex(bounds []int, col int) int {
	i := 0
	for j, b := range bounds {
		if b > col {
			break
		}
		i = j
	}
	return i
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
