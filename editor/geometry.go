package editor

// Size is a viewport extent in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Position is a cell coordinate: Col from the left, Row from the top.
type Position struct {
	Col int
	Row int
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return Position{Col: p.Col - o.Col, Row: p.Row - o.Row}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
