package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() || b.CanRedo() {
		t.Fatalf("expected empty history")
	}

	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Caret(), 0; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Caret(), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	b.SetCaret(1)
	v := b.Version()

	if ok := b.Undo(); ok {
		t.Fatalf("expected Undo=false")
	}
	if ok := b.Redo(); ok {
		t.Fatalf("expected Redo=false")
	}
	if got := b.Text(); got != "hi" {
		t.Fatalf("text=%q, want %q", got, "hi")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_Undo_RestoresCaretAndSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(4, 1)

	b.InsertText("X")
	if got, want := b.Text(), "hXo"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Undo()
	if got, want := b.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	anchor, caret, ok := b.SelectionRaw()
	if !ok || anchor != 4 || caret != 1 {
		t.Fatalf("raw selection=(%d,%d,%v), want (4,1,true)", anchor, caret, ok)
	}
}

func TestBuffer_Undo_AfterReplace(t *testing.T) {
	b := New("1. first", Options{})
	b.SetCaret(8)
	b.Replace("1. first\n2. ", 12)

	b.Undo()
	if got, want := b.Text(), "1. first"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Caret(), 8; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestBuffer_HistoryLimit_BoundsUndoDepth(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	undos := 0
	for b.Undo() {
		undos++
	}
	if undos != 2 {
		t.Fatalf("undos=%d, want 2", undos)
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_NegativeHistoryLimit_DisablesUndo(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected undo disabled")
	}
}

func TestBuffer_UndoThenNewEdit_ClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("expected redo cleared by new edit")
	}
}
