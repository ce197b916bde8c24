package buffer

type bufferSnapshot struct {
	text  string
	caret int
	sel   selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:  string(b.text),
		caret: b.caret,
		sel:   b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.text = []rune(s.text)
	b.caret = clampInt(s.caret, 0, len(b.text))

	anchor := clampInt(s.sel.anchor, 0, len(b.text))
	if !s.sel.active || anchor == b.caret {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{active: true, anchor: anchor}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = pushBounded(b.hist.undo, prev, limit)
	b.hist.redo = nil
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, b.snapshot())

	b.restore(prev)
	b.version++
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = pushBounded(b.hist.undo, b.snapshot(), limit)
	}

	b.restore(next)
	b.version++
	return true
}
