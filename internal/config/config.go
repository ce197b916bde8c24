// Package config loads mdpad settings.
//
// Settings are layered: built-in defaults, then the TOML file, then MDPAD_*
// environment variables. Command-line flags are applied by the caller on the
// returned Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/mdpad/mdconvert"
)

var (
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrUnknownStore    = errors.New("unknown store backend")
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrInvalidValue    = errors.New("invalid value")
)

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	Theme    string         `toml:"theme"`
	Editor   EditorConfig   `toml:"editor"`
	Autosave AutosaveConfig `toml:"autosave"`
	Store    StoreConfig    `toml:"store"`
	Export   ExportConfig   `toml:"export"`
	Convert  ConvertConfig  `toml:"convert"`
	Log      LogConfig      `toml:"log"`
}

type EditorConfig struct {
	LineNumbers  bool `toml:"line_numbers"`
	TabWidth     int  `toml:"tab_width"`
	HistoryLimit int  `toml:"history_limit"`
	// SplitPercent is the editor's share of the width in split view.
	SplitPercent int `toml:"split_percent"`
}

type AutosaveConfig struct {
	Enabled bool     `toml:"enabled"`
	Delay   Duration `toml:"delay"`
}

type StoreConfig struct {
	Backend string `toml:"backend"` // file | sqlite
	Path    string `toml:"path"`
}

type ExportConfig struct {
	Dir        string `toml:"dir"`
	Standalone bool   `toml:"standalone"`
}

type ConvertConfig struct {
	HeadingMaxLen      int    `toml:"heading_max_len"`
	BulletMaxLen       int    `toml:"bullet_max_len"`
	HeadingTerminators string `toml:"heading_terminators"`
}

// Options maps the section onto converter options.
func (c ConvertConfig) Options() mdconvert.Options {
	return mdconvert.Options{
		HeadingMaxLen:      c.HeadingMaxLen,
		BulletMaxLen:       c.BulletMaxLen,
		HeadingTerminators: c.HeadingTerminators,
	}
}

type LogConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
	File  string `toml:"file"`
}

// Duration is a time.Duration written as a Go duration string ("750ms").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	data := DataDir()
	conv := mdconvert.DefaultOptions()
	return Config{
		Theme: ThemeAuto,
		Editor: EditorConfig{
			LineNumbers:  true,
			TabWidth:     4,
			HistoryLimit: 1000,
			SplitPercent: 50,
		},
		Autosave: AutosaveConfig{
			Enabled: true,
			Delay:   Duration{time.Second},
		},
		Store: StoreConfig{
			Backend: "file",
			Path:    filepath.Join(data, "documents"),
		},
		Export: ExportConfig{
			Dir:        ".",
			Standalone: true,
		},
		Convert: ConvertConfig{
			HeadingMaxLen:      conv.HeadingMaxLen,
			BulletMaxLen:       conv.BulletMaxLen,
			HeadingTerminators: conv.HeadingTerminators,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(data, "mdpad.log"),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mdpad/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mdpad", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "mdpad", "config.toml")
}

// DataDir returns $XDG_DATA_HOME/mdpad.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "mdpad")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "mdpad")
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path means DefaultPath, which may be missing; an
// explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MDPAD_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"MDPAD_THEME":      &c.Theme,
		"MDPAD_STORE":      &c.Store.Backend,
		"MDPAD_STORE_PATH": &c.Store.Path,
		"MDPAD_LOG_LEVEL":  &c.Log.Level,
		"MDPAD_LOG_FILE":   &c.Log.File,
		"MDPAD_EXPORT_DIR": &c.Export.Dir,
	}
	for env, dst := range str {
		if v, ok := lookup(env); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("MDPAD_AUTOSAVE_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("MDPAD_AUTOSAVE_DELAY: %w: %v", ErrInvalidValue, err)
		}
		c.Autosave.Delay = Duration{d}
	}
	if v, ok := lookup("MDPAD_AUTOSAVE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("MDPAD_AUTOSAVE: %w: %v", ErrInvalidValue, err)
		}
		c.Autosave.Enabled = b
	}
	return nil
}

// Validate rejects unknown names and non-positive limits.
func (c Config) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("theme %q: %w", c.Theme, ErrUnknownTheme)
	}
	switch c.Store.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("store %q: %w", c.Store.Backend, ErrUnknownStore)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: %w", c.Log.Level, ErrUnknownLogLevel)
	}

	positive := []struct {
		name string
		v    int64
	}{
		{"editor.tab_width", int64(c.Editor.TabWidth)},
		{"editor.history_limit", int64(c.Editor.HistoryLimit)},
		{"autosave.delay", int64(c.Autosave.Delay.Duration)},
		{"convert.heading_max_len", int64(c.Convert.HeadingMaxLen)},
		{"convert.bullet_max_len", int64(c.Convert.BulletMaxLen)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%s must be positive: %w", p.name, ErrInvalidValue)
		}
	}
	if c.Editor.SplitPercent < 30 || c.Editor.SplitPercent > 70 {
		return fmt.Errorf("editor.split_percent must be within [30, 70]: %w", ErrInvalidValue)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is empty: %w", ErrInvalidValue)
	}
	return nil
}
