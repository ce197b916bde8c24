package listcont

import (
	"math/big"
	"strings"
	"unicode/utf8"
)

// TabIndent is the text Tab inserts.
const TabIndent = "  "

// Result is the document and caret after an assist fires.
type Result struct {
	Text  string
	Caret int
}

// Tab replaces [start, end) with two spaces. It always applies.
func Tab(doc string, start, end int) Result {
	return replace(doc, start, end, TabIndent)
}

// Enter continues the list item the caret sits on. It reports false when
// the line up to the caret carries no list marker; the host then inserts a
// plain newline itself.
//
// Only text before the caret is inspected. Numbers increment by exactly one
// and an empty item is continued like any other.
func Enter(doc string, start, end int) (Result, bool) {
	m, ok := Match(currentLine(doc, start))
	if !ok {
		return Result{}, false
	}
	return replace(doc, start, end, Continuation(m)), true
}

// Continuation returns the text inserted after a line carrying m.
func Continuation(m Marker) string {
	switch m.Kind {
	case MarkerNumbered:
		return "\n" + m.Indent + nextNumber(m.Digits) + ". "
	default:
		return "\n" + m.Indent + m.Bullet + " "
	}
}

func currentLine(doc string, off int) string {
	before := doc[:byteOffset(doc, off)]
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		return before[i+1:]
	}
	return before
}

func nextNumber(digits string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return "1"
	}
	return n.Add(n, big.NewInt(1)).String()
}

func replace(doc string, start, end int, ins string) Result {
	bs := byteOffset(doc, start)
	be := bs + byteOffset(doc[bs:], end-start)
	var sb strings.Builder
	sb.Grow(len(doc) - (be - bs) + len(ins))
	sb.WriteString(doc[:bs])
	sb.WriteString(ins)
	sb.WriteString(doc[be:])
	return Result{
		Text:  sb.String(),
		Caret: start + utf8.RuneCountInString(ins),
	}
}

// byteOffset maps a rune offset in s to a byte offset. It panics when off
// lies outside [0, rune length of s].
func byteOffset(s string, off int) int {
	if off < 0 {
		panic("listcont: negative offset")
	}
	i := 0
	for n := 0; n < off; n++ {
		if i >= len(s) {
			panic("listcont: offset past end of document")
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
