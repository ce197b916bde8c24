// Package export writes documents as markdown or HTML files.
package export

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Default file names used by the editor's export commands.
const (
	MarkdownFile = "document.md"
	HTMLFile     = "document.html"
)

type HTMLOptions struct {
	// Dark selects the dark code highlighting style.
	Dark bool
	// Standalone wraps the fragment in a complete HTML document.
	Standalone bool
	// Title of a standalone document. Default: the first heading, or "document".
	Title string
	// Generator, when set, is written to a generator meta tag.
	Generator string
}

var (
	lightEngine = newEngine("github")
	darkEngine  = newEngine("monokai")
)

func newEngine(style string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(chromahtml.TabWidth(4)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

// Markdown writes text unchanged, ensuring a trailing newline.
func Markdown(w io.Writer, text string) error {
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("export markdown: %w", err)
	}
	return nil
}

// HTML renders text with GitHub-flavored markdown and highlighted code blocks.
func HTML(w io.Writer, text string, opt HTMLOptions) error {
	engine := lightEngine
	if opt.Dark {
		engine = darkEngine
	}

	var body bytes.Buffer
	if err := engine.Convert([]byte(text), &body); err != nil {
		return fmt.Errorf("export html: %w", err)
	}

	var err error
	if opt.Standalone {
		title := opt.Title
		if title == "" {
			title = firstHeading(text)
		}
		meta := ""
		if opt.Generator != "" {
			meta = fmt.Sprintf("<meta name=\"generator\" content=\"%s\">\n", html.EscapeString(opt.Generator))
		}
		_, err = fmt.Fprintf(w, standaloneTemplate, meta, html.EscapeString(title), body.String())
	} else {
		_, err = w.Write(body.Bytes())
	}
	if err != nil {
		return fmt.Errorf("export html: %w", err)
	}
	return nil
}

const standaloneTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
%s<title>%s</title>
</head>
<body>
%s</body>
</html>
`

func firstHeading(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		if t := strings.TrimSpace(strings.TrimLeft(line, "#")); t != "" {
			return t
		}
	}
	return "document"
}

// WriteFile writes data to dir/name, creating dir when needed, and returns
// the written path.
func WriteFile(dir, name string, data []byte) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("export: invalid file name %q", name)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}
