package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/mdpad/editor"
	"github.com/iw2rmb/mdpad/internal/config"
	"github.com/iw2rmb/mdpad/internal/logging"
	"github.com/iw2rmb/mdpad/preview"
	"github.com/iw2rmb/mdpad/store"
)

type Options struct {
	Config config.Config

	// Text is the initial document.
	Text string
	// FilePath is the file being edited. When empty the last autosaved
	// document is restored and ctrl+s exports markdown instead.
	FilePath string

	// Store receives autosaves. Nil disables autosave and restore.
	Store     store.Store
	Clipboard editor.Clipboard
	Logger    *log.Logger

	// DetectDark reports a dark terminal background for the auto theme.
	DetectDark func() bool
}

// changeState collects editor change events between updates.
type changeState struct {
	text    string
	changed bool
}

func (s *changeState) observe(ev editor.ChangeEvent) {
	if ev.Text != s.text {
		s.text = ev.Text
		s.changed = true
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg      config.Config
	filePath string
	store    store.Store
	logger   *log.Logger

	keys    KeyMap
	styles  styles
	editor  editor.Model
	changes *changeState
	// buffer version at startup; a restore only lands before the first edit
	initialVersion uint64

	preview      *preview.Renderer
	previewVP    viewport.Model
	previewStale bool

	help     help.Model
	showHelp bool

	mode   ViewMode
	split  int
	dark   bool
	width  int
	height int

	saveSeq   int
	saveState saveState
	message   string
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	changes := &changeState{text: opts.Text}
	dark := ResolveDark(opts.Config.Theme, opts.DetectDark)
	lipgloss.SetHasDarkBackground(dark)

	ed := editor.New(editor.Config{
		Text:         opts.Text,
		ShowLineNums: opts.Config.Editor.LineNumbers,
		Style:        editor.DefaultStyle(),
		TabWidth:     opts.Config.Editor.TabWidth,
		HistoryLimit: opts.Config.Editor.HistoryLimit,
		Clipboard:    opts.Clipboard,
		OnChange:     changes.observe,
		Convert:      opts.Config.Convert.Options(),
	})

	m := Model{
		cfg:       opts.Config,
		filePath:  opts.FilePath,
		store:     opts.Store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		styles:    defaultStyles(),
		editor:    ed,
		changes:   changes,
		previewVP: viewport.New(0, 0),
		help:      help.New(),
		split:     clampSplit(opts.Config.Editor.SplitPercent),
		dark:      dark,
	}
	m.initialVersion = ed.Buffer().Version()
	m.help.ShowAll = true
	if !m.autosaveEnabled() {
		m.saveState = saveOff
	}

	r, err := preview.New(preview.Options{Style: previewStyle(dark)})
	if err != nil {
		logger.Error("preview unavailable", "err", err)
	}
	m.preview = r
	m.previewStale = true

	logger.Debug("app started", "file", opts.FilePath, "theme", opts.Config.Theme, "dark", dark, "autosave", m.autosaveEnabled())
	return m
}

// Init restores the autosaved document when no file was opened.
func (m Model) Init() tea.Cmd {
	if m.store == nil || m.filePath != "" {
		return nil
	}
	return restoreCmd(m.store)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width - 6
		return m.layout(), nil

	case restoredMsg:
		return m.handleRestored(msg), nil
	case autosaveTickMsg:
		return m.handleAutosaveTick(msg)
	case savedMsg:
		return m.handleSaved(msg), nil
	case writtenMsg:
		return m.handleWritten(msg), nil

	case tea.KeyMsg:
		if next, cmd, ok := m.handleKey(msg); ok {
			return next, cmd
		}
		if m.mode == ViewPreview {
			var cmd tea.Cmd
			m.previewVP, cmd = m.previewVP.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		if m.mode == ViewPreview {
			var cmd tea.Cmd
			m.previewVP, cmd = m.previewVP.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	after := m.afterEdit()
	return m, tea.Batch(cmd, after)
}

// handleKey applies shell bindings. ok is false when the key belongs to the
// editor.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit, true
		}
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleView):
		m = m.setMode(m.mode.next())
	case key.Matches(msg, m.keys.SplitView):
		m = m.setMode(ViewSplit)
	case key.Matches(msg, m.keys.EditorView):
		m = m.setMode(ViewEditor)
	case key.Matches(msg, m.keys.PreviewView):
		m = m.setMode(ViewPreview)
	case key.Matches(msg, m.keys.Wider):
		m.split = clampSplit(m.split + SplitStep)
		m = m.layout()
	case key.Matches(msg, m.keys.Narrower):
		m.split = clampSplit(m.split - SplitStep)
		m = m.layout()
	case key.Matches(msg, m.keys.ToggleTheme):
		m.dark = !m.dark
		lipgloss.SetHasDarkBackground(m.dark)
		m = m.layout()
	case key.Matches(msg, m.keys.Save):
		return m, m.saveFileCmd(), true
	case key.Matches(msg, m.keys.ExportMarkdown):
		return m, m.exportMarkdownCmd(), true
	case key.Matches(msg, m.keys.ExportHTML):
		return m, m.exportHTMLCmd(), true
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m Model) setMode(mode ViewMode) Model {
	if mode == m.mode {
		return m
	}
	m.mode = mode
	return m.layout()
}

// afterEdit refreshes the preview and schedules an autosave when the text
// changed.
func (m *Model) afterEdit() tea.Cmd {
	if !m.changes.changed {
		return nil
	}
	m.changes.changed = false
	m.message = ""
	m.previewStale = true
	m.refreshPreview()
	return m.scheduleAutosave()
}

func (m *Model) configurePreview(width int) {
	if m.preview == nil || width <= 0 {
		return
	}
	wrap := width - 2
	if wrap < 1 {
		wrap = 1
	}
	if err := m.preview.Configure(preview.Options{Style: previewStyle(m.dark), Width: wrap}); err != nil {
		m.logger.Error("preview configure failed", "err", err)
	}
}

// refreshPreview re-renders the preview when it is stale and visible.
func (m *Model) refreshPreview() {
	if !m.previewStale || m.previewVP.Width == 0 || m.preview == nil {
		return
	}
	text := m.editor.Value()
	out, err := m.preview.Render(text)
	if err != nil {
		m.logger.Warn("preview render failed", "err", err)
		out = text
	}
	m.previewVP.SetContent(out)
	m.previewStale = false
}

func (m Model) View() string {
	view := lipgloss.JoinVertical(lipgloss.Left, m.body(), m.statusView())
	if m.showHelp {
		box := m.styles.HelpBox.Render(m.help.View(helpKeys{app: m.keys, editor: m.editor.KeyMap()}))
		view = overlay.Composite(box, view, overlay.Center, overlay.Center, 0, 0)
	}
	return view
}

// Value returns the current document.
func (m Model) Value() string { return m.editor.Value() }

func (m Model) Mode() ViewMode { return m.mode }

func (m Model) Split() int { return m.split }
