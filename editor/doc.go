// Package editor provides the caret and viewport controller for a buffer,
// usable directly or as a Bubble Tea component.
//
// The controller applies abstract commands (insert, delete, line break,
// caret moves, resize, save, quit), keeps the caret clamped to the document,
// scrolls the viewport just enough to keep the caret visible, and renders
// each screen row as plain text ready for drawing.
package editor
