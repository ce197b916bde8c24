// Package app is the mdpad terminal shell.
//
// It lays out the editor pane next to a rendered preview, shows a status bar,
// persists the document after a debounce delay and exports it to markdown or
// HTML files.
package app
