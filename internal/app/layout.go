package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewMode selects which panes are visible.
type ViewMode int

const (
	ViewSplit ViewMode = iota
	ViewEditor
	ViewPreview
)

func (v ViewMode) String() string {
	switch v {
	case ViewEditor:
		return "editor"
	case ViewPreview:
		return "preview"
	default:
		return "split"
	}
}

func (v ViewMode) next() ViewMode { return (v + 1) % 3 }

// Split ratio bounds, in percent of the width given to the editor.
const (
	MinSplit  = 30
	MaxSplit  = 70
	SplitStep = 5
)

const statusHeight = 1

func clampSplit(p int) int {
	switch {
	case p < MinSplit:
		return MinSplit
	case p > MaxSplit:
		return MaxSplit
	}
	return p
}

// paneWidths returns the editor and preview widths for the current mode.
// In split mode one column between them holds the separator.
func (m Model) paneWidths() (editorW, previewW int) {
	switch m.mode {
	case ViewEditor:
		return m.width, 0
	case ViewPreview:
		return 0, m.width
	}
	if m.width < 3 {
		return m.width, 0
	}
	editorW = m.width * m.split / 100
	previewW = m.width - editorW - 1
	return editorW, previewW
}

func (m Model) bodyHeight() int {
	if h := m.height - statusHeight; h > 0 {
		return h
	}
	return 0
}

// layout resizes both panes after a size, mode, split or theme change.
func (m Model) layout() Model {
	edW, pvW := m.paneWidths()
	h := m.bodyHeight()

	m.editor = m.editor.SetSize(edW, h)
	if m.mode == ViewPreview {
		m.editor = m.editor.Blur()
	} else {
		m.editor = m.editor.Focus()
	}

	m.previewVP.Width = pvW
	m.previewVP.Height = h
	m.configurePreview(pvW)
	m.previewStale = true
	m.refreshPreview()
	return m
}

func (m Model) separator() string {
	h := m.bodyHeight()
	if h == 0 {
		return ""
	}
	return m.styles.Separator.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
}

func (m Model) body() string {
	switch m.mode {
	case ViewEditor:
		return m.editor.View()
	case ViewPreview:
		return m.previewVP.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), m.separator(), m.previewVP.View())
}
