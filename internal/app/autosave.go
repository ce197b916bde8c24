package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mdpad/store"
)

const storeTimeout = 5 * time.Second

type saveState int

const (
	saveIdle saveState = iota
	savePending
	saveSaving
	saveDone
	saveFailed
	saveOff
)

func (s saveState) String() string {
	switch s {
	case savePending:
		return "unsaved"
	case saveSaving:
		return "saving"
	case saveDone:
		return "saved"
	case saveFailed:
		return "save failed"
	case saveOff:
		return "autosave off"
	}
	return ""
}

type autosaveTickMsg struct{ seq int }

type savedMsg struct {
	seq int
	err error
}

type restoredMsg struct {
	text string
	ok   bool
	err  error
}

func (m Model) autosaveEnabled() bool {
	return m.store != nil && m.cfg.Autosave.Enabled && m.cfg.Autosave.Delay.Duration > 0
}

// scheduleAutosave starts a new debounce window. Ticks from earlier windows
// carry an older sequence number and are dropped.
func (m *Model) scheduleAutosave() tea.Cmd {
	if !m.autosaveEnabled() {
		return nil
	}
	m.saveSeq++
	m.saveState = savePending
	seq := m.saveSeq
	return tea.Tick(m.cfg.Autosave.Delay.Duration, func(time.Time) tea.Msg {
		return autosaveTickMsg{seq: seq}
	})
}

func (m Model) handleAutosaveTick(msg autosaveTickMsg) (Model, tea.Cmd) {
	if msg.seq != m.saveSeq || m.store == nil {
		return m, nil
	}
	m.saveState = saveSaving
	st, seq, text := m.store, msg.seq, m.editor.Value()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return savedMsg{seq: seq, err: st.Save(ctx, store.ContentKey, text)}
	}
}

func (m Model) handleSaved(msg savedMsg) Model {
	if msg.err != nil {
		m.logger.Error("autosave failed", "err", msg.err)
	} else {
		m.logger.Debug("autosaved", "seq", msg.seq)
	}
	if msg.seq != m.saveSeq {
		return m
	}
	if msg.err != nil {
		m.saveState = saveFailed
	} else {
		m.saveState = saveDone
	}
	return m
}

func restoreCmd(st store.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		text, ok, err := st.Load(ctx, store.ContentKey)
		return restoredMsg{text: text, ok: ok, err: err}
	}
}

// handleRestored replaces the initial document with the autosaved one. It
// does not schedule a new autosave. An empty saved value, or a buffer the
// user already touched, is left alone.
func (m Model) handleRestored(msg restoredMsg) Model {
	if msg.err != nil {
		m.logger.Warn("restore failed", "err", msg.err)
		return m
	}
	if !msg.ok || msg.text == "" || msg.text == m.editor.Value() {
		return m
	}
	if m.editor.Buffer().Version() != m.initialVersion {
		m.logger.Debug("restore skipped, buffer already edited")
		return m
	}
	m.editor = m.editor.SetText(msg.text)
	m.changes.text = msg.text
	m.changes.changed = false
	m.previewStale = true
	m.refreshPreview()
	m.message = "restored autosave"
	m.logger.Info("restored autosaved document", "bytes", len(msg.text))
	return m
}
