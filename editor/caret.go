package editor

import "github.com/iw2rmb/quill/buffer"

func (m *Model) move(dir Direction) {
	row, col := m.caret.Row, m.caret.GraphemeCol
	switch dir {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	case DirPageUp:
		row = 0
	case DirPageDown:
		row = m.size.Height - 1
	case DirHome:
		col = 0
	case DirEnd:
		col = m.buf.LineLen(row)
	}
	// Clamping keeps Left at column 0 and Right at line end in place; the
	// caret never wraps to a neighbouring line.
	m.caret = m.buf.ClampPos(buffer.Pos{Row: row, GraphemeCol: col})
	m.scrollIntoView()
}

func (m *Model) insertChar(r rune) {
	switch r {
	case '\r':
		return
	case '\n':
		m.lineBreak()
		return
	}
	row, col := m.caret.Row, m.caret.GraphemeCol
	before := m.buf.LineLen(row)
	m.buf.InsertChar(row, col, r)
	if m.buf.LineLen(row) > before {
		m.caret.GraphemeCol++
	}
	m.afterEdit()
}

func (m *Model) backspace() {
	row, col := m.caret.Row, m.caret.GraphemeCol
	switch {
	case col > 0:
		m.caret.GraphemeCol--
		m.buf.DeleteAt(row, col-1)
	case row > 0:
		m.caret = buffer.Pos{Row: row - 1, GraphemeCol: m.buf.LineLen(row - 1)}
		m.buf.MergeLines(row-1, row)
	default:
		return
	}
	m.afterEdit()
}

func (m *Model) deleteForward() {
	row, col := m.caret.Row, m.caret.GraphemeCol
	switch {
	case col < m.buf.LineLen(row):
		m.buf.DeleteAt(row, col)
	case row+1 < m.buf.LineCount():
		m.buf.MergeLines(row, row+1)
	default:
		return
	}
	m.afterEdit()
}

func (m *Model) lineBreak() {
	m.buf.BreakLine(m.caret.Row, m.caret.GraphemeCol)
	m.caret = buffer.Pos{Row: m.caret.Row + 1}
	m.afterEdit()
}

func (m *Model) resize(to Size) {
	m.size = Size{Width: maxInt(to.Width, 0), Height: maxInt(to.Height, 0)}
	m.markDirty()
	m.scrollIntoView()
}

func (m *Model) afterEdit() {
	m.markDirty()
	m.caret = m.buf.ClampPos(m.caret)
	m.scrollIntoView()
}
