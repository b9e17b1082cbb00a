package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Row returns the plain text drawn at screen row r: the visible slice of the
// document line under it, the banner in an empty document, or the filler.
// The text never exceeds the viewport width.
func (m Model) Row(r int) string {
	if r < 0 || r >= m.size.Height || m.size.Width <= 0 {
		return ""
	}
	if line, ok := m.buf.Line(r + m.offset.Row); ok {
		return line.Visible(m.offset.Col, m.offset.Col+m.size.Width)
	}
	if m.buf.IsEmpty() && r == m.size.Height/3 {
		return m.banner()
	}
	return m.filler()
}

// Rows returns Row for every screen row of the viewport.
func (m Model) Rows() []string {
	out := make([]string, 0, m.size.Height)
	for r := 0; r < m.size.Height; r++ {
		out = append(out, m.Row(r))
	}
	return out
}

// Render hands every row to draw when something changed since the last
// render, then marks the viewport clean. It reports whether it drew.
func (m *Model) Render(draw func(row int, text string)) bool {
	if !m.dirty {
		return false
	}
	for r, text := range m.Rows() {
		draw(r, text)
	}
	m.dirty = false
	return true
}

func (m Model) filler() string {
	return runewidth.Truncate(m.cfg.Filler, m.size.Width, "")
}

func (m Model) banner() string {
	width := m.size.Width
	msg := m.cfg.Banner
	n := runewidth.StringWidth(msg)
	if width <= n {
		return m.filler()
	}
	padding := (width - n - 1) / 2
	full := m.cfg.Filler + strings.Repeat(" ", padding) + msg
	return runewidth.Truncate(full, width, "")
}

// refreshFrame rebuilds the styled rows returned by View when the rows or
// the caret cell changed.
func (m *Model) refreshFrame() {
	caret := m.CaretPosition()
	if !m.stale && caret == m.frameCaret {
		return
	}
	frame := make([]string, 0, m.size.Height)
	for r := 0; r < m.size.Height; r++ {
		if r+m.offset.Row == m.caret.Row {
			frame = append(frame, m.caretRow(r, caret.Col))
			continue
		}
		frame = append(frame, m.rowStyle(r).Render(m.Row(r)))
	}
	m.frame = frame
	m.frameCaret = caret
	m.stale = false
}

func (m Model) rowStyle(r int) lipgloss.Style {
	st := m.cfg.Style
	switch {
	case r+m.offset.Row < m.buf.LineCount():
		return st.Text
	case m.buf.IsEmpty() && r == m.size.Height/3:
		return st.Banner
	default:
		return st.Filler
	}
}

// caretRow renders screen row r with the grapheme under the caret (or a
// blank cell at line end) drawn in the caret style. Past the end of the
// document the caret covers the first cell of the filler.
func (m Model) caretRow(r, col int) string {
	st := m.cfg.Style
	if m.size.Width <= 0 {
		return ""
	}
	line, ok := m.buf.Line(m.caret.Row)
	if !ok {
		text := m.Row(r)
		_, size := utf8.DecodeRuneInString(text)
		if size == 0 {
			return st.Caret.Render(" ")
		}
		return st.Caret.Render(text[:size]) + m.rowStyle(r).Render(text[size:])
	}
	left := m.offset.Col
	right := left + m.size.Width
	at := left + col
	next := minInt(line.PrefixWidth(m.caret.GraphemeCol+1), right)

	var sb strings.Builder
	sb.WriteString(st.Text.Render(line.Visible(left, at)))
	under := line.Visible(at, next)
	if under == "" || m.caret.GraphemeCol >= line.Len() {
		under = " "
		next = at + 1
	}
	sb.WriteString(st.Caret.Render(under))
	sb.WriteString(st.Text.Render(line.Visible(next, right)))
	return sb.String()
}
