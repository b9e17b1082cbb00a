// Package buffer implements the grapheme-accurate document model for quill.
//
// A Buffer is an ordered sequence of Lines. Each Line keeps its text as a
// sequence of grapheme fragments, each classified as half (1 cell) or full
// (2 cells) width, with an optional replacement glyph for clusters that
// cannot be printed as-is.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
package buffer
