package buffer

import "github.com/iw2rmb/mdpad/internal/grapheme"

// InsertText inserts text at the caret, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	start, end := b.Range()
	b.edit(start, end, s)
}

// InsertNewline inserts a line break at the caret, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: the selection if any,
// otherwise the grapheme cluster or line break before the caret.
func (b *Buffer) DeleteBackward() {
	if _, _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.caret == 0 {
		return
	}

	starts := b.lineStarts()
	row := rowOf(starts, b.caret)
	lineStart, lineEnd := b.lineBounds(starts, row)
	col := b.caret - lineStart
	if col == 0 {
		// Join with the previous line.
		b.edit(b.caret-1, b.caret, "")
		return
	}
	line := string(b.text[lineStart:lineEnd])
	b.edit(lineStart+grapheme.Prev(line, col), b.caret, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.caret == len(b.text) {
		return
	}
	if b.text[b.caret] == '\n' {
		b.edit(b.caret, b.caret+1, "")
		return
	}

	starts := b.lineStarts()
	row := rowOf(starts, b.caret)
	lineStart, lineEnd := b.lineBounds(starts, row)
	line := string(b.text[lineStart:lineEnd])
	b.edit(b.caret, lineStart+grapheme.Next(line, b.caret-lineStart), "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	start, end, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(start, end, "")
}

// Replace commits a whole next document and caret, as computed by a pure
// transformation of the current state. The caret is clamped into text.
func (b *Buffer) Replace(text string, caret int) {
	next := []rune(text)
	caret = clampInt(caret, 0, len(next))
	if string(next) == string(b.text) && caret == b.caret {
		if b.sel.active {
			b.ClearSelection()
		}
		return
	}

	prev := b.snapshot()
	b.text = next
	b.caret = caret
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
}

func (b *Buffer) edit(start, end int, s string) {
	prev := b.snapshot()
	nextCaret, changed := b.replaceRange(start, end, s)
	if !changed {
		// Text is unchanged but the selection still collapses past the insert.
		if nextCaret != b.caret || b.sel.active {
			b.caret = nextCaret
			b.sel = selectionState{}
			b.version++
		}
		return
	}
	b.caret = nextCaret
	b.sel = selectionState{}
	b.version++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(start, end int, s string) (nextCaret int, changed bool) {
	start = clampInt(start, 0, len(b.text))
	end = clampInt(end, 0, len(b.text))
	start, end = OrderRange(start, end)
	if start == end && s == "" {
		return b.caret, false
	}

	ins := []rune(s)
	if string(b.text[start:end]) == s {
		return start + len(ins), false
	}

	out := make([]rune, 0, len(b.text)-(end-start)+len(ins))
	out = append(out, b.text[:start]...)
	out = append(out, ins...)
	out = append(out, b.text[end:]...)
	b.text = out
	return start + len(ins), true
}
