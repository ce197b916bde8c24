package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/mdpad/editor"
)

// KeyMap holds the shell bindings. They are matched before the editor's.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	CycleView   key.Binding
	SplitView   key.Binding
	EditorView  key.Binding
	PreviewView key.Binding
	Wider       key.Binding
	Narrower    key.Binding

	Save           key.Binding
	ExportMarkdown key.Binding
	ExportHTML     key.Binding
	ToggleTheme    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle help")),

		CycleView:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "cycle view")),
		SplitView:   key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "split view")),
		EditorView:  key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "editor only")),
		PreviewView: key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "preview only")),
		Wider:       key.NewBinding(key.WithKeys("alt+="), key.WithHelp("alt+=", "widen editor")),
		Narrower:    key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "narrow editor")),

		Save:           key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		ExportMarkdown: key.NewBinding(key.WithKeys("alt+m"), key.WithHelp("alt+m", "export markdown")),
		ExportHTML:     key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "export html")),
		ToggleTheme:    key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "toggle theme")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.CycleView, k.Save, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleView, k.SplitView, k.EditorView, k.PreviewView, k.Wider, k.Narrower},
		{k.Save, k.ExportMarkdown, k.ExportHTML, k.ToggleTheme, k.Help, k.Quit},
	}
}

// helpKeys lists shell and editor bindings together.
type helpKeys struct {
	app    KeyMap
	editor editor.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding { return h.app.ShortHelp() }

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.app.FullHelp(), h.editor.FullHelp()...)
}
