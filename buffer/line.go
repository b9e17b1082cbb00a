package buffer

import "strings"

// Line is one logical line of the document, held as grapheme fragments.
//
// The fragments are always a full segmentation of the line's current text;
// every mutation rebuilds them from the resulting text.
type Line struct {
	fragments []Fragment
}

// NewLine segments text into a Line. text must not contain line terminators.
func NewLine(text string) *Line {
	return &Line{fragments: fragmentsOf(text)}
}

// String returns the line's original text.
func (l *Line) String() string {
	return joinFragments(l.fragments)
}

// Len returns the number of grapheme clusters in the line.
func (l *Line) Len() int { return len(l.fragments) }

// Fragments returns a copy of the line's fragments.
func (l *Line) Fragments() []Fragment {
	return append([]Fragment(nil), l.fragments...)
}

// Insert splices r before the grapheme at index at (clamped to the line end).
//
// The line is re-segmented afterwards, so r may join an existing cluster
// (a combining mark, for example) instead of adding one.
func (l *Line) Insert(r rune, at int) {
	at = clampInt(at, 0, len(l.fragments))
	var sb strings.Builder
	for _, f := range l.fragments[:at] {
		sb.WriteString(f.Text)
	}
	sb.WriteRune(r)
	for _, f := range l.fragments[at:] {
		sb.WriteString(f.Text)
	}
	l.fragments = fragmentsOf(sb.String())
}

// Delete removes the grapheme at index at. Out of range indices are ignored.
func (l *Line) Delete(at int) {
	if at < 0 || at >= len(l.fragments) {
		return
	}
	var sb strings.Builder
	for i, f := range l.fragments {
		if i != at {
			sb.WriteString(f.Text)
		}
	}
	l.fragments = fragmentsOf(sb.String())
}

// Split truncates l before grapheme index at and returns the remainder as a
// new Line. If at is outside [0, Len()], l is left alone and an empty Line is
// returned.
func (l *Line) Split(at int) *Line {
	if at < 0 || at > len(l.fragments) {
		return &Line{}
	}
	head := joinFragments(l.fragments[:at])
	tail := joinFragments(l.fragments[at:])
	l.fragments = fragmentsOf(head)
	return NewLine(tail)
}

// Append concatenates other's text onto l and re-segments the result.
func (l *Line) Append(other *Line) {
	if other == nil || len(other.fragments) == 0 {
		return
	}
	l.fragments = fragmentsOf(l.String() + other.String())
}

// PrefixWidth returns the rendered cell width of all graphemes before index
// at. This is the column at which a caret before grapheme at is drawn.
func (l *Line) PrefixWidth(at int) int {
	at = clampInt(at, 0, len(l.fragments))
	w := 0
	for _, f := range l.fragments[:at] {
		w += f.Width.Cells()
	}
	return w
}

// Width returns the rendered cell width of the whole line.
func (l *Line) Width() int {
	return l.PrefixWidth(len(l.fragments))
}

// Visible returns the text to draw for the cell range [left, right).
//
// Fragments fully inside the range are drawn (replacement glyphs
// substituted); a fragment crossing either edge is drawn as a single
// TruncationGlyph so wide clusters are never cut in half. An empty or
// inverted range yields "".
func (l *Line) Visible(left, right int) string {
	if left < 0 || left >= right {
		return ""
	}
	var sb strings.Builder
	pos := 0
	for _, f := range l.fragments {
		if pos >= right {
			break
		}
		end := pos + f.Width.Cells()
		if end > left {
			if pos < left || end > right {
				sb.WriteRune(TruncationGlyph)
			} else {
				sb.WriteString(f.Glyph())
			}
		}
		pos = end
	}
	return sb.String()
}

func joinFragments(fragments []Fragment) string {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(f.Text)
	}
	return sb.String()
}
