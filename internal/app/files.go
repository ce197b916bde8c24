package app

import (
	"bytes"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdpad"
	"github.com/iw2rmb/mdpad/export"
)

type writtenMsg struct {
	what string
	path string
	err  error
}

func writeCmd(what, dir, name string, render func(*bytes.Buffer) error) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return writtenMsg{what: what, err: err}
		}
		path, err := export.WriteFile(dir, name, buf.Bytes())
		return writtenMsg{what: what, path: path, err: err}
	}
}

// saveFileCmd writes the opened file, or exports markdown when there is none.
func (m Model) saveFileCmd() tea.Cmd {
	if m.filePath == "" {
		return m.exportMarkdownCmd()
	}
	text := m.editor.Value()
	return writeCmd("saved", filepath.Dir(m.filePath), filepath.Base(m.filePath), func(b *bytes.Buffer) error {
		return export.Markdown(b, text)
	})
}

func (m Model) exportMarkdownCmd() tea.Cmd {
	text := m.editor.Value()
	return writeCmd("exported", m.cfg.Export.Dir, export.MarkdownFile, func(b *bytes.Buffer) error {
		return export.Markdown(b, text)
	})
}

func (m Model) exportHTMLCmd() tea.Cmd {
	text := m.editor.Value()
	opt := export.HTMLOptions{
		Dark:       m.dark,
		Standalone: m.cfg.Export.Standalone,
		Generator:  mdpad.UserAgent(),
	}
	return writeCmd("exported", m.cfg.Export.Dir, export.HTMLFile, func(b *bytes.Buffer) error {
		return export.HTML(b, text, opt)
	})
}

func (m Model) handleWritten(msg writtenMsg) Model {
	if msg.err != nil {
		m.logger.Error("write failed", "what", msg.what, "err", msg.err)
		m.message = msg.what + " failed: " + msg.err.Error()
		return m
	}
	m.logger.Info("document written", "what", msg.what, "path", msg.path)
	m.message = msg.what + " " + msg.path
	return m
}
