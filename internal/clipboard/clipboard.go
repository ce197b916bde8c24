// Package clipboard adapts the system clipboard to the editor.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/mdpad/editor"
)

var ErrUnsupported = errors.New("clipboard: no system clipboard available")

var (
	_ editor.Clipboard = System{}
	_ editor.Clipboard = (*Memory)(nil)
)

// System reads and writes the OS clipboard.
type System struct{}

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

func (System) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(s)
}

// Memory is a process-local clipboard.
type Memory struct {
	mu sync.Mutex
	s  string
}

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	m.s = s
	m.mu.Unlock()
	return nil
}

// Default returns the system clipboard when one is available and a Memory
// clipboard otherwise.
func Default() editor.Clipboard {
	if clipboard.Unsupported {
		return &Memory{}
	}
	return System{}
}
