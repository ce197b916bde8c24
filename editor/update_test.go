package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdpad/buffer"
)

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) ReadText() (string, error) { return c.s, c.err }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func toEnd(m Model) Model {
	m, _ = m.Update(keyMsg(tea.KeyCtrlEnd))
	return m
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(keyMsg(tea.KeyRight))
	m, _ = m.Update(runes("X"))
	if got := m.buf.Text(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.CaretPos(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("caret after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m, _ = m.Update(keyMsg(tea.KeyBackspace))
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.buf.Caret(); got != 1 {
		t.Fatalf("caret after backspace: got %d, want %d", got, 1)
	}
}

func TestUpdate_EnterContinuesLists(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		wantText  string
		wantCaret int
	}{
		{name: "bullet", text: "- item", wantText: "- item\n- ", wantCaret: 9},
		{name: "star bullet indented", text: "  * a", wantText: "  * a\n  * ", wantCaret: 10},
		{name: "numbered", text: "9. nine", wantText: "9. nine\n10. ", wantCaret: 12},
		{name: "plain", text: "hello", wantText: "hello\n", wantCaret: 6},
		{name: "empty item repeats", text: "- ", wantText: "- \n- ", wantCaret: 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := toEnd(New(Config{Text: tc.text}))
			m, _ = m.Update(keyMsg(tea.KeyEnter))
			if got := m.buf.Text(); got != tc.wantText {
				t.Fatalf("text: got %q, want %q", got, tc.wantText)
			}
			if got := m.buf.Caret(); got != tc.wantCaret {
				t.Fatalf("caret: got %d, want %d", got, tc.wantCaret)
			}
		})
	}
}

func TestUpdate_EnterReplacesSelection(t *testing.T) {
	m := New(Config{Text: "- abc"})
	m.buf.SetSelection(3, 5)

	m, _ = m.Update(keyMsg(tea.KeyEnter))
	if got, want := m.buf.Text(), "- a\n- "; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if _, _, ok := m.buf.Selection(); ok {
		t.Fatalf("selection should be collapsed after enter")
	}
}

func TestUpdate_TabIndents(t *testing.T) {
	m := New(Config{Text: "- a"})

	m, _ = m.Update(keyMsg(tea.KeyTab))
	if got, want := m.buf.Text(), "  - a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := m.buf.Caret(); got != 2 {
		t.Fatalf("caret: got %d, want %d", got, 2)
	}

	m, _ = m.Update(keyMsg(tea.KeyCtrlZ))
	if got, want := m.buf.Text(), "- a"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{Text: "- ab", ReadOnly: true})

	m, _ = m.Update(keyMsg(tea.KeyRight))
	if got := m.buf.Caret(); got != 1 {
		t.Fatalf("caret after move: got %d, want %d", got, 1)
	}

	for _, msg := range []tea.KeyMsg{runes("X"), keyMsg(tea.KeyBackspace), keyMsg(tea.KeyEnter), keyMsg(tea.KeyTab), keyMsg(tea.KeyCtrlT)} {
		m, _ = m.Update(msg)
		if got := m.buf.Text(); got != "- ab" {
			t.Fatalf("text after %q in read-only: got %q, want %q", msg.String(), got, "- ab")
		}
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(runes("b"))
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(keyMsg(tea.KeyCtrlZ))
	if got := m.buf.Text(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}
	m, _ = m.Update(keyMsg(tea.KeyCtrlY))
	if got := m.buf.Text(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_CopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "hello world", Clipboard: cb})

	m.buf.SetSelection(0, 5)
	m, _ = m.Update(keyMsg(tea.KeyCtrlC))
	if cb.s != "hello" {
		t.Fatalf("clipboard after copy: got %q, want %q", cb.s, "hello")
	}

	m, _ = m.Update(keyMsg(tea.KeyCtrlX))
	if got := m.buf.Text(); got != " world" {
		t.Fatalf("text after cut: got %q, want %q", got, " world")
	}

	cb.s = "bye\r\nnow"
	m, _ = m.Update(keyMsg(tea.KeyCtrlV))
	if got, want := m.buf.Text(), "bye\nnow world"; got != want {
		t.Fatalf("text after paste: got %q, want %q", got, want)
	}

	cb.err = errors.New("no clipboard")
	m, _ = m.Update(keyMsg(tea.KeyCtrlV))
	if got, want := m.buf.Text(), "bye\nnow world"; got != want {
		t.Fatalf("failed paste changed text: got %q, want %q", got, want)
	}
}

func TestUpdate_PasteMarkdownConverts(t *testing.T) {
	cb := &memClipboard{s: "Getting Started\r\n\r\nInstall it\r\nRun it"}
	m := New(Config{Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v"), Alt: true})
	want := "## Getting Started\n\nInstall it\n- Run it"
	if got := m.buf.Text(); got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_ConvertMarkdown(t *testing.T) {
	t.Run("whole document", func(t *testing.T) {
		m := toEnd(New(Config{Text: "  Overview  \n\nplain text."}))
		m, _ = m.Update(keyMsg(tea.KeyCtrlT))
		want := "## Overview\n\nplain text."
		if got := m.buf.Text(); got != want {
			t.Fatalf("text: got %q, want %q", got, want)
		}
		if got, max := m.buf.Caret(), m.buf.Len(); got > max {
			t.Fatalf("caret %d out of range %d", got, max)
		}
	})

	t.Run("selection only", func(t *testing.T) {
		m := New(Config{Text: "keep\nTitle"})
		m.buf.SetSelection(5, 10)
		m, _ = m.Update(keyMsg(tea.KeyCtrlT))
		if got, want := m.buf.Text(), "keep\n## Title"; got != want {
			t.Fatalf("text: got %q, want %q", got, want)
		}
	})
}

func TestUpdate_BracketedPasteIsLiteral(t *testing.T) {
	m := toEnd(New(Config{Text: "- a"}))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("\nb"), Paste: true})
	if got, want := m.buf.Text(), "- a\nb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUpdate_OnChange(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "- a",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m = toEnd(m)
	m, _ = m.Update(keyMsg(tea.KeyEnter))
	m, _ = m.Update(keyMsg(tea.KeyRight)) // no-op at end of document

	if len(events) != 2 {
		t.Fatalf("events: got %d, want %d", len(events), 2)
	}
	last := events[1]
	if last.Text != "- a\n- " || last.Caret != 6 {
		t.Fatalf("last event: got text %q caret %d", last.Text, last.Caret)
	}
	if last.CaretPos != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("last event pos: got %v", last.CaretPos)
	}
	if last.Version <= events[0].Version {
		t.Fatalf("versions must increase: %d then %d", events[0].Version, last.Version)
	}
}

func TestSetText_DoesNotNotify(t *testing.T) {
	calls := 0
	m := New(Config{OnChange: func(ChangeEvent) { calls++ }})

	m = m.SetText("restored")
	m, _ = m.Update(nil)
	if calls != 0 {
		t.Fatalf("OnChange calls: got %d, want 0", calls)
	}
	if got := m.Value(); got != "restored" {
		t.Fatalf("value: got %q", got)
	}
	if got := m.buf.Caret(); got != len("restored") {
		t.Fatalf("caret: got %d", got)
	}
}

func TestUpdate_TypingOverIdenticalSelection(t *testing.T) {
	m := New(Config{Text: "abc"})
	m.buf.SetSelection(0, 1)

	m, _ = m.Update(runes("a"))
	if got := m.buf.Text(); got != "abc" {
		t.Fatalf("text: got %q, want %q", got, "abc")
	}
	if got := m.buf.Caret(); got != 1 {
		t.Fatalf("caret: got %d, want %d", got, 1)
	}
	if _, _, ok := m.buf.Selection(); ok {
		t.Fatalf("selection should be collapsed after typing over it")
	}
}
