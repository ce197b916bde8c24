package buffer

import "testing"

func TestBuffer_SetCaret_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCaret(999)
	if got := b.Caret(); got != 4 {
		t.Fatalf("caret=%d, want 4", got)
	}
	if got := b.CaretPos(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("caret pos=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCaret(4)
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetCaret(-3)
	if got := b.Caret(); got != 0 {
		t.Fatalf("caret=%d, want 0", got)
	}
}

func TestBuffer_SetSelection_NormalizesClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})

	b.SetSelection(99, -1)
	start, end, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection active")
	}
	if start != 0 || end != 4 {
		t.Fatalf("selection=[%d,%d), want [0,4)", start, end)
	}
	if got := b.Caret(); got != 0 {
		t.Fatalf("caret=%d, want 0", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetSelection(4, 0)
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}

	b.SetSelection(2, 2)
	if _, _, ok := b.Selection(); ok {
		t.Fatalf("expected empty selection to be inactive")
	}
	if got := b.Caret(); got != 2 {
		t.Fatalf("caret=%d, want 2", got)
	}
}

func TestBuffer_SelectionRaw_PreservesDirection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(4, 1)

	anchor, caret, ok := b.SelectionRaw()
	if !ok || anchor != 4 || caret != 1 {
		t.Fatalf("raw=(%d,%d,%v), want (4,1,true)", anchor, caret, ok)
	}
	if got, want := b.SelectedText(), "ell"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	start, end := b.Range()
	if start != 1 || end != 4 {
		t.Fatalf("range=[%d,%d), want [1,4)", start, end)
	}
}

func TestBuffer_Range_CollapsedWithoutSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetCaret(3)
	start, end := b.Range()
	if start != 3 || end != 3 {
		t.Fatalf("range=[%d,%d), want [3,3)", start, end)
	}
}

func TestBuffer_Lines(t *testing.T) {
	b := New("ab\n\ncd", Options{})
	if got := b.LineCount(); got != 3 {
		t.Fatalf("line count=%d, want 3", got)
	}
	if got := b.Line(2); got != "cd" {
		t.Fatalf("line 2=%q, want %q", got, "cd")
	}
	if got := b.Line(1); got != "" {
		t.Fatalf("line 1=%q, want empty", got)
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("line 7=%q, want empty", got)
	}
	if got := New("", Options{}).LineCount(); got != 1 {
		t.Fatalf("empty line count=%d, want 1", got)
	}
}
