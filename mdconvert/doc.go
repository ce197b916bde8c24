// Package mdconvert turns plain text into best-effort markdown.
//
// The conversion is line-oriented and purely syntactic: paragraph blocks
// separated by a blank line become headings, bulleted lines or stay as they
// are based on line count, length, leading case and trailing punctuation.
// It never fails and never inspects word meaning.
package mdconvert
