package buffer

// InsertChar inserts r into row before grapheme col. A row at or past the
// end of the document is created first, padding with empty lines.
func (b *Buffer) InsertChar(row, col int, r rune) {
	if row < 0 {
		return
	}
	b.extendTo(row)
	b.lines[row].Insert(r, col)
	b.modified = true
}

// DeleteAt removes the grapheme at (row, col). Missing rows and columns are
// ignored.
func (b *Buffer) DeleteAt(row, col int) {
	line, ok := b.Line(row)
	if !ok || col < 0 || col >= line.Len() {
		return
	}
	line.Delete(col)
	b.modified = true
}

// BreakLine splits row at grapheme col.
//
// At col 0 an empty line is inserted before row; inside the line the
// remainder moves to a new line after row; at or past the line end an empty
// line is inserted after row.
func (b *Buffer) BreakLine(row, col int) {
	if row < 0 {
		return
	}
	b.extendTo(row)
	line := b.lines[row]
	switch {
	case col <= 0:
		b.insertLine(row, &Line{})
	case col < line.Len():
		b.insertLine(row+1, line.Split(col))
	default:
		b.insertLine(row+1, &Line{})
	}
	b.modified = true
}

// MergeLines removes row from and appends its text to row into.
//
// Adjacency is the caller's concern; only the existence of both rows is
// checked.
func (b *Buffer) MergeLines(into, from int) {
	dst, ok := b.Line(into)
	if !ok || into == from {
		return
	}
	src, ok := b.Line(from)
	if !ok {
		return
	}
	b.lines = append(b.lines[:from], b.lines[from+1:]...)
	dst.Append(src)
	b.modified = true
}

// extendTo appends empty lines until row exists.
func (b *Buffer) extendTo(row int) {
	for len(b.lines) <= row {
		b.lines = append(b.lines, &Line{})
	}
}

func (b *Buffer) insertLine(at int, line *Line) {
	b.lines = append(b.lines, nil)
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = line
}
