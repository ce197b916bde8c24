// Package store persists editor documents under string keys.
//
// Two backends are provided: FileStore keeps one file per key in a
// directory, SQLiteStore keeps a single kv table.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// ContentKey is the key the editor autosaves its document under.
const ContentKey = "markdown-editor-content"

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var (
	ErrInvalidKey     = errors.New("store: invalid key")
	ErrUnknownBackend = errors.New("store: unknown backend")
	ErrClosed         = errors.New("store: closed")
)

// Store is a string key-value store.
type Store interface {
	// Load returns the value for key; ok is false when the key is absent.
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
	Close() error
}

type Config struct {
	// Backend is BackendFile or BackendSQLite.
	Backend string
	// Path is the directory for BackendFile and the database file for
	// BackendSQLite.
	Path string
}

func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return NewFileStore(cfg.Path)
	case BackendSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

var keyRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

func validateKey(key string) error {
	if len(key) > 200 || !keyRE.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
