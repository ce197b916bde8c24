package mdconvert

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/mdpad/internal/grapheme"
)

const (
	DefaultHeadingMaxLen      = 80
	DefaultBulletMaxLen       = 80
	DefaultHeadingTerminators = ".!?"
	blockSeparator            = "\n\n"
	headingPrefix             = "## "
	bulletPrefix              = "- "
)

// Options tunes the conversion heuristics. Zero fields take the defaults.
type Options struct {
	// HeadingMaxLen is the exclusive upper bound, in characters, for a
	// single-line block to become a heading.
	HeadingMaxLen int
	// BulletMaxLen is the exclusive upper bound for a sub-line to be bulleted.
	BulletMaxLen int
	// HeadingTerminators lists the runes that, ending a block, keep it from
	// becoming a heading.
	HeadingTerminators string
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		HeadingMaxLen:      DefaultHeadingMaxLen,
		BulletMaxLen:       DefaultBulletMaxLen,
		HeadingTerminators: DefaultHeadingTerminators,
	}
}

func normalizeOptions(o Options) Options {
	d := DefaultOptions()
	if o.HeadingMaxLen <= 0 {
		o.HeadingMaxLen = d.HeadingMaxLen
	}
	if o.BulletMaxLen <= 0 {
		o.BulletMaxLen = d.BulletMaxLen
	}
	if o.HeadingTerminators == "" {
		o.HeadingTerminators = d.HeadingTerminators
	}
	return o
}

// Converter converts text with a fixed set of Options. The zero value uses
// the defaults.
type Converter struct {
	opt Options
}

func New(opt Options) Converter {
	return Converter{opt: normalizeOptions(opt)}
}

// Options returns the effective options.
func (c Converter) Options() Options { return normalizeOptions(c.opt) }

// Convert converts text using the default options.
func Convert(text string) string {
	return New(Options{}).Convert(text)
}

var listLineRE = regexp.MustCompile(`^(- |\d+\. )`)

// Convert splits text into blank-line separated blocks and rewrites each one.
// Empty or all-whitespace input yields "".
func (c Converter) Convert(text string) string {
	opt := c.Options()

	blocks := strings.Split(text, blockSeparator)
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		out = append(out, convertBlock(block, opt))
	}
	return strings.Join(out, blockSeparator)
}

func convertBlock(block string, opt Options) string {
	if !strings.Contains(block, "\n") {
		if isHeading(block, opt) {
			return headingPrefix + block
		}
		return block
	}

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		switch {
		case listLineRE.MatchString(line):
		case i > 0 && startsUpper(line) && grapheme.Count(line) < opt.BulletMaxLen:
			line = bulletPrefix + line
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func isHeading(line string, opt Options) bool {
	if grapheme.Count(line) >= opt.HeadingMaxLen || !startsUpper(line) {
		return false
	}
	last := []rune(line)
	return !strings.ContainsRune(opt.HeadingTerminators, last[len(last)-1])
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
