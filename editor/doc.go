// Package editor provides the Bubble Tea markdown editing pane backed by the
// buffer package.
//
// The package owns key handling, caret-following scrolling and rendering of
// the line-number gutter, caret and selection. Tab and Enter are routed
// through listcont so list items continue as the user types; the convert
// bindings run text through mdconvert.
package editor
