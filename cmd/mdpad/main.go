// Package main is the entry point for mdpad.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/mdpad"
	"github.com/iw2rmb/mdpad/export"
	"github.com/iw2rmb/mdpad/internal/app"
	"github.com/iw2rmb/mdpad/internal/clipboard"
	"github.com/iw2rmb/mdpad/internal/config"
	"github.com/iw2rmb/mdpad/internal/logging"
	"github.com/iw2rmb/mdpad/mdconvert"
	"github.com/iw2rmb/mdpad/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type globalOptions struct {
	configPath string
	logLevel   string
	logFile    string
	theme      string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var g globalOptions
	flags := flag.NewFlagSet("mdpad", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&g.configPath, "config", "", "Path to configuration file")
	flags.StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&g.logFile, "log-file", "", "Log file for the interactive editor")
	flags.StringVar(&g.theme, "theme", "", "Theme (auto, dark, light)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "mdpad - terminal markdown editor\n\n")
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  mdpad [options] [file]             Edit a file, or the autosaved draft\n")
		fmt.Fprintf(stderr, "  mdpad [options] convert [file]     Convert plain text to markdown\n")
		fmt.Fprintf(stderr, "  mdpad [options] export [-html] [-o out] file\n")
		fmt.Fprintf(stderr, "  mdpad version\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	rest := flags.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case "version":
			fmt.Fprintf(stdout, "mdpad %s\n", mdpad.Version())
			return 0
		case "convert":
			return withConfig(g, stderr, func(cfg config.Config, logger *log.Logger) error {
				return runConvert(cfg, rest[1:], stdin, stdout)
			})
		case "export":
			return withConfig(g, stderr, func(cfg config.Config, logger *log.Logger) error {
				return runExport(cfg, logger, rest[1:], stdin, stdout, stderr)
			})
		}
	}
	if len(rest) > 1 {
		fmt.Fprintf(stderr, "Error: too many arguments\n")
		return 2
	}

	cfg, err := loadConfig(g)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	var file string
	if len(rest) == 1 {
		file = rest[0]
	}
	if err := runEditor(cfg, file); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(g globalOptions) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFile != "" {
		cfg.Log.File = g.logFile
	}
	if g.theme != "" {
		cfg.Theme = g.theme
	}
	return cfg, cfg.Validate()
}

// withConfig runs a subcommand that logs to stderr.
func withConfig(g globalOptions, stderr io.Writer, fn func(config.Config, *log.Logger) error) int {
	cfg, err := loadConfig(g)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger, err := logging.New(stderr, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := fn(cfg, logger); err != nil {
		var uerr usageError
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.As(err, &uerr):
			if uerr.msg != "" {
				fmt.Fprintf(stderr, "Error: %s\n", uerr.msg)
			}
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// usageError reports bad subcommand arguments. An empty msg means the
// flag package already printed the problem.
type usageError struct{ msg string }

func (e usageError) Error() string {
	if e.msg == "" {
		return "usage error"
	}
	return e.msg
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func runConvert(cfg config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) > 1 {
		return usageError{msg: "convert: too many arguments"}
	}
	text, err := readInput(args, stdin)
	if err != nil {
		return err
	}
	out := mdconvert.New(cfg.Convert.Options()).Convert(text)
	return export.Markdown(stdout, out)
}

func runExport(cfg config.Config, logger *log.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	flags.SetOutput(stderr)
	asHTML := flags.Bool("html", false, "Render HTML instead of markdown")
	out := flags.String("o", "", "Output file (default: stdout)")
	dark := flags.Bool("dark", false, "Use the dark code highlighting style")
	standalone := flags.Bool("standalone", cfg.Export.Standalone, "Wrap HTML in a complete document")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{}
	}
	if flags.NArg() != 1 {
		return usageError{msg: "export: expected exactly one input file"}
	}

	text, err := readInput(flags.Args(), stdin)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if *asHTML {
		err = export.HTML(&buf, text, export.HTMLOptions{
			Dark:       *dark,
			Standalone: *standalone,
			Generator:  mdpad.UserAgent(),
		})
	} else {
		err = export.Markdown(&buf, text)
	}
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	path, err := export.WriteFile(filepath.Dir(*out), filepath.Base(*out), buf.Bytes())
	if err != nil {
		return err
	}
	logger.Info("exported", "path", path)
	return nil
}

func runEditor(cfg config.Config, file string) error {
	logger, closer, err := logging.NewFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	text, err := initialText(file, logger)
	if err != nil {
		return err
	}

	var st store.Store
	if cfg.Autosave.Enabled {
		st, err = store.Open(store.Config{Backend: cfg.Store.Backend, Path: cfg.Store.Path})
		if err != nil {
			logger.Warn("autosave disabled", "err", err)
			st = nil
		} else {
			defer st.Close()
			logger.Info("store opened", "backend", cfg.Store.Backend, "path", cfg.Store.Path)
		}
	}

	m := app.New(app.Options{
		Config:     cfg,
		Text:       text,
		FilePath:   file,
		Store:      st,
		Clipboard:  clipboard.Default(),
		Logger:     logger,
		DetectDark: termenv.HasDarkBackground,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// initialText returns the document the editor opens with. Without a file
// argument it is the welcome document; a missing file starts empty.
func initialText(file string, logger *log.Logger) (string, error) {
	if file == "" {
		return app.WelcomeText, nil
	}
	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("new file", "path", file)
		return "", nil
	default:
		return "", fmt.Errorf("open %s: %w", file, err)
	}
}
