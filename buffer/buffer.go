package buffer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidText reports input bytes that are not valid UTF-8 text.
var ErrInvalidText = errors.New("text is not valid UTF-8")

// Buffer is the document: an ordered sequence of Lines, the source it was
// loaded from or saved to, and whether it changed since the last save.
type Buffer struct {
	lines    []*Line
	source   string
	modified bool
}

// New returns an empty, unnamed buffer.
func New() *Buffer {
	return &Buffer{}
}

// Load builds an unnamed buffer from raw bytes.
//
// The text is split on "\n"; a single trailing terminator does not produce
// an extra empty line, and a "\r" before a terminator is dropped. Empty input
// yields a buffer with no lines.
func Load(data []byte) (*Buffer, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidText
	}
	return &Buffer{lines: splitLines(string(data))}, nil
}

// Open loads the file at path and records path as the buffer's source.
func Open(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: open %s: %w", path, err)
	}
	b, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("buffer: open %s: %w", path, err)
	}
	b.source = path
	return b, nil
}

// Source returns the path the buffer is bound to, or "" when unnamed.
func (b *Buffer) Source() string { return b.source }

// Modified reports whether the buffer changed since it was loaded or saved.
func (b *Buffer) Modified() bool { return b.modified }

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// IsEmpty reports whether the buffer has no lines at all.
func (b *Buffer) IsEmpty() bool { return len(b.lines) == 0 }

// Line returns the line at row. The Line stays owned by the buffer; mutate it
// only through the Buffer edit methods.
func (b *Buffer) Line(row int) (*Line, bool) {
	if row < 0 || row >= len(b.lines) {
		return nil, false
	}
	return b.lines[row], true
}

// LineLen returns the grapheme count of row, or 0 when row does not exist.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return b.lines[row].Len()
}

// ClampPos clamps p into the buffer's bounds.
func (b *Buffer) ClampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

// Text returns the document joined with "\n" and no trailing terminator.
func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.String())
	}
	return sb.String()
}

// Bytes serializes the buffer with every line terminated by "\n".
func (b *Buffer) Bytes() []byte {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line.String())
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Save writes the buffer to its source and clears the modified flag.
//
// An unnamed buffer has nowhere to go; Save returns nil and writes nothing.
func (b *Buffer) Save() error {
	if b.source == "" {
		return nil
	}
	return b.SaveAs(b.source)
}

// SaveAs writes the buffer to path. On success path becomes the buffer's
// source and the modified flag is cleared; on failure nothing changes.
func (b *Buffer) SaveAs(path string) error {
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("buffer: save %s: %w", path, err)
	}
	b.source = path
	b.modified = false
	return nil
}

func splitLines(text string) []*Line {
	if text == "" {
		return nil
	}
	terminated := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([]*Line, 0, len(parts))
	for i, s := range parts {
		if i < len(parts)-1 || terminated {
			s = strings.TrimSuffix(s, "\r")
		}
		lines = append(lines, NewLine(s))
	}
	return lines
}
