package buffer

import "testing"

func TestBuffer_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\ncd", Options{})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Caret(); got != 0 {
		t.Fatalf("caret=%d, want 0", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Caret(); got != 1 {
		t.Fatalf("caret=%d, want 1", got)
	}

	b.SetCaret(2)
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.CaretPos(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("caret pos=%v, want (1,0)", got)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.CaretPos(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("caret pos=%v, want (0,2)", got)
	}

	b.SetCaret(5)
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Caret(); got != 5 {
		t.Fatalf("caret=%d, want 5", got)
	}
}

func TestBuffer_MoveGrapheme_CombiningCluster(t *testing.T) {
	b := New("ae\u0301b", Options{})
	b.SetCaret(1)

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got := b.Caret(); got != 3 {
		t.Fatalf("caret=%d, want 3", got)
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Caret(); got != 1 {
		t.Fatalf("caret=%d, want 1", got)
	}
}

func TestBuffer_MoveLine_HomeEndAndVerticalClamp(t *testing.T) {
	b := New("hello\nw\nworld", Options{})

	b.SetCaret(3)
	b.Move(Move{Unit: MoveLine, Dir: DirEnd})
	if got := b.CaretPos(); got != (Pos{Row: 0, Col: 5}) {
		t.Fatalf("caret pos=%v, want (0,5)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if got := b.CaretPos(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("caret pos=%v, want (0,0)", got)
	}

	b.SetCaret(13) // end of "world"
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.CaretPos(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("caret pos=%v, want (1,1)", got)
	}

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.CaretPos(); got != (Pos{Row: 2, Col: 1}) {
		t.Fatalf("caret pos=%v, want (2,1)", got)
	}
}

func TestBuffer_MoveDoc_StartEnd(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCaret(1)

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got := b.Caret(); got != 5 {
		t.Fatalf("caret=%d, want 5", got)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Caret(); got != 0 {
		t.Fatalf("caret=%d, want 0", got)
	}
}

func TestBuffer_Move_ExtendSelectionAnchorStability(t *testing.T) {
	b := New("abcd", Options{})
	b.SetCaret(1)

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	start, end, ok := b.Selection()
	if !ok || start != 1 || end != 3 {
		t.Fatalf("selection=[%d,%d) ok=%v, want [1,3)", start, end, ok)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	if _, _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared when returning to anchor")
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true})
	anchor, caret, ok := b.SelectionRaw()
	if !ok || anchor != 1 || caret != 0 {
		t.Fatalf("raw=(%d,%d,%v), want (1,0,true)", anchor, caret, ok)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if _, _, ok := b.Selection(); ok {
		t.Fatalf("expected plain move to clear selection")
	}
}

func TestBuffer_MoveWord_PortableSemantics(t *testing.T) {
	b := New("foo  bar baz", Options{})

	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Caret(); got != 3 {
		t.Fatalf("caret=%d, want 3", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirRight})
	if got := b.Caret(); got != 8 {
		t.Fatalf("caret=%d, want 8", got)
	}
	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Caret(); got != 5 {
		t.Fatalf("caret=%d, want 5", got)
	}
}

func TestBuffer_MoveWord_StopsAtNewline(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCaret(3)

	b.Move(Move{Unit: MoveWord, Dir: DirLeft})
	if got := b.Caret(); got != 3 {
		t.Fatalf("caret=%d, want 3", got)
	}
}

func TestBuffer_Move_NoOpDoesNotBumpVersion(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}
