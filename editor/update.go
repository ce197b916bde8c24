package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdpad/buffer"
	"github.com/iw2rmb/mdpad/listcont"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.movePage(buffer.DirUp)
	case key.Matches(msg, km.PageDown):
		m.movePage(buffer.DirDown)
	case key.Matches(msg, km.SelectAll):
		m.buf.SetSelection(0, m.buf.Len())

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.enter()
		}
	case key.Matches(msg, km.Indent):
		if !m.cfg.ReadOnly {
			m.indent()
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard(false)
		}
	case key.Matches(msg, km.PasteMarkdown):
		if !m.cfg.ReadOnly {
			m.pasteClipboard(true)
		}
	case key.Matches(msg, km.ConvertMarkdown):
		if !m.cfg.ReadOnly {
			m.convert()
		}

	default:
		if msg.Type == tea.KeySpace && !m.cfg.ReadOnly {
			m.buf.InsertText(" ")
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.buf.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// enter continues a list item when the caret line starts with a marker and
// falls back to a plain newline otherwise.
func (m Model) enter() {
	start, end := m.buf.Range()
	if res, ok := listcont.Enter(m.buf.Text(), start, end); ok {
		m.buf.Replace(res.Text, res.Caret)
		return
	}
	m.buf.InsertNewline()
}

func (m Model) indent() {
	start, end := m.buf.Range()
	res := listcont.Tab(m.buf.Text(), start, end)
	m.buf.Replace(res.Text, res.Caret)
}

// convert runs the selection through the markdown converter, or the whole
// document when nothing is selected.
func (m Model) convert() {
	if _, _, ok := m.buf.Selection(); ok {
		m.buf.InsertText(m.conv.Convert(m.buf.SelectedText()))
		return
	}
	out := m.conv.Convert(m.buf.Text())
	caret := m.buf.Caret()
	if n := len([]rune(out)); caret > n {
		caret = n
	}
	m.buf.Replace(out, caret)
}

func (m Model) movePage(dir buffer.MoveDir) {
	h := m.viewport.Height
	if h <= 0 {
		h = 1
	}
	for i := 0; i < h; i++ {
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: dir})
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if _, _, ok := m.buf.Selection(); !ok {
		return
	}
	if s := m.buf.SelectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard(asMarkdown bool) {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	s = normalizeNewlines(s)
	if asMarkdown {
		s = m.conv.Convert(s)
		if s == "" {
			return
		}
	}
	m.buf.InsertText(s)
}

// normalizeNewlines converts newlines from external sources to "\n".
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
