// Package preview renders markdown for display in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Standard glamour style names accepted by Options.Style.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

type Options struct {
	// Style is a glamour standard style name. Default: StyleDark.
	Style string
	// Width is the word-wrap column. Zero disables wrapping.
	Width int
}

// Renderer wraps a glamour TermRenderer and rebuilds it only when the style
// or width changes.
type Renderer struct {
	opt Options
	tr  *glamour.TermRenderer
}

func New(opt Options) (*Renderer, error) {
	r := &Renderer{}
	if err := r.Configure(opt); err != nil {
		return nil, err
	}
	return r, nil
}

// Configure switches style or width. It is a no-op when nothing changed.
func (r *Renderer) Configure(opt Options) error {
	if opt.Style == "" {
		opt.Style = StyleDark
	}
	if opt.Width < 0 {
		opt.Width = 0
	}
	if r.tr != nil && opt == r.opt {
		return nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opt.Style),
		glamour.WithWordWrap(opt.Width),
	)
	if err != nil {
		return fmt.Errorf("preview: new renderer: %w", err)
	}
	r.tr = tr
	r.opt = opt
	return nil
}

func (r *Renderer) Options() Options { return r.opt }

// Render returns the terminal rendering of markdown with surrounding blank
// lines trimmed.
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	out, err := r.tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("preview: render: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
