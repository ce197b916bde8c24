package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdpad/buffer"
	"github.com/iw2rmb/mdpad/mdconvert"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	conv mdconvert.Converter

	focused bool

	viewport viewport.Model
	xOffset  int

	lastBufVersion uint64
	lastCaret      int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		conv:     mdconvert.New(cfg.Convert),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCaret = m.buf.Caret()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the current document text.
func (m Model) Value() string { return m.buf.Text() }

// SetText replaces the document as a single undoable edit and moves the
// caret to the end. OnChange is not called.
func (m Model) SetText(s string) Model {
	m.buf.Replace(s, len([]rune(s)))
	m.lastBufVersion = m.buf.Version()
	m.lastCaret = m.buf.Caret()
	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't force-follow the caret here; allow manual scrolling via mouse wheel.
		m.syncFromBuffer()
		return m, cmd
	case tea.KeyMsg:
		m, cmd := m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCaret()
		}
		return m, cmd
	default:
		// Hosts may drive edits by mutating the buffer directly.
		if m.syncFromBuffer() {
			m.followCaret()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after a buffer change and notifies OnChange.
// It reports whether anything changed.
func (m *Model) syncFromBuffer() bool {
	ver := m.buf.Version()
	caret := m.buf.Caret()
	if ver == m.lastBufVersion && caret == m.lastCaret {
		return false
	}
	m.lastBufVersion = ver
	m.lastCaret = caret
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCaret() {
	pos := m.buf.CaretPos()

	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case pos.Row < y:
			m.viewport.SetYOffset(pos.Row)
		case pos.Row >= y+h:
			m.viewport.SetYOffset(pos.Row - h + 1)
		}
	}

	w := m.contentWidth(m.buf.LineCount())
	if w <= 0 {
		return
	}
	cell := m.cellOfCol(m.buf.Line(pos.Row), pos.Col)
	prev := m.xOffset
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
	if m.xOffset != prev {
		m.rebuildContent()
	}
}
