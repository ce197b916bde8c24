// Package grapheme wraps uniseg for the grapheme-cluster questions the
// document model and converter ask: how many user-perceived characters a
// string holds and where cluster boundaries fall in rune offsets.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the rune offsets at which clusters of text start,
// followed by the total rune length. An empty text yields [0].
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the rune offset of the cluster boundary strictly before off
// within line. Offsets at or below zero return 0.
func Prev(line string, off int) int {
	if off <= 0 {
		return 0
	}
	bounds := Boundaries(line)
	prev := 0
	for _, b := range bounds {
		if b >= off {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the rune offset of the cluster boundary strictly after off
// within line, or the line's rune length at the end.
func Next(line string, off int) int {
	bounds := Boundaries(line)
	for _, b := range bounds {
		if b > off {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
