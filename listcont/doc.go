// Package listcont decides what a markdown editor inserts when the user
// presses Tab or Enter, and where the caret lands afterwards.
//
// Both operations are pure: they take the current document and the
// selection as rune offsets [start, end) and return the next document and
// caret. Callers must pass 0 <= start <= end <= rune length of the document.
package listcont
