package app

import (
	"github.com/iw2rmb/mdpad/internal/config"
	"github.com/iw2rmb/mdpad/preview"
)

// ResolveDark maps a configured theme to dark or light. detect is consulted
// only for the auto theme.
func ResolveDark(theme string, detect func() bool) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return detect != nil && detect()
	}
}

func previewStyle(dark bool) string {
	if dark {
		return preview.StyleDark
	}
	return preview.StyleLight
}
