package editor

// caretCell returns the caret's cell in document coordinates.
func (m Model) caretCell() Position {
	col := 0
	if line, ok := m.buf.Line(m.caret.Row); ok {
		col = line.PrefixWidth(m.caret.GraphemeCol)
	}
	return Position{Col: col, Row: m.caret.Row}
}

// CaretPosition returns the caret's cell relative to the viewport's top left.
func (m Model) CaretPosition() Position {
	return m.caretCell().Sub(m.offset)
}

// scrollIntoView moves the scroll offset by the smallest amount that puts the
// caret cell inside the viewport, independently on each axis.
func (m *Model) scrollIntoView() bool {
	cell := m.caretCell()
	next := Position{
		Col: scrollAxis(cell.Col, m.offset.Col, m.size.Width),
		Row: scrollAxis(cell.Row, m.offset.Row, m.size.Height),
	}
	if next == m.offset {
		return false
	}
	m.offset = next
	m.markDirty()
	return true
}

// scrollAxis returns the offset closest to offset for which
// offset <= coord < offset+extent. An empty extent keeps offset.
func scrollAxis(coord, offset, extent int) int {
	if extent <= 0 {
		return offset
	}
	if coord < offset {
		return coord
	}
	if coord >= offset+extent {
		return coord - extent + 1
	}
	return offset
}
