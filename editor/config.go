package editor

import "github.com/iw2rmb/mdpad/mdconvert"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// TabWidth is the cell width of a literal tab character. Default: 4.
	TabWidth int

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly  bool
	Clipboard Clipboard

	// OnChange is called after every update that changed the buffer version.
	OnChange func(ChangeEvent)

	// Convert tunes the paste-as-markdown and convert bindings.
	Convert mdconvert.Options
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
