package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WordCount counts whitespace-separated words.
func WordCount(text string) int { return len(strings.Fields(text)) }

func (m Model) docName() string {
	if m.filePath == "" {
		return "untitled"
	}
	return filepath.Base(m.filePath)
}

func (m Model) statusView() string {
	left := " " + m.styles.StatusKey.Render(m.mode.String()) + " │ " + m.docName()
	if m.message != "" {
		left += " │ " + m.message
	}

	right := fmt.Sprintf("%d words", WordCount(m.editor.Value()))
	if s := m.saveState.String(); s != "" {
		right += " │ " + s
	}
	right += " │ f1 help "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return m.styles.Status.Render(line)
}
