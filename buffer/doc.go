// Package buffer implements the document state the markdown editor mutates:
// the text, a caret and an optional selection, plus undo/redo history.
//
// Offsets are 0-based rune offsets into the document, with '\n' counting as
// one rune. Selections are half-open ranges [start, end). Row/column
// positions (Pos) exist only for rendering and are derived on demand.
package buffer
