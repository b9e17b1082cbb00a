package editor

import "fmt"

// NoName is shown for a buffer without a source.
const NoName = "[No Name]"

// DocumentStatus summarizes the document for status displays.
type DocumentStatus struct {
	TotalLines int
	CaretLine  int // 0-based
	FileName   string
	Modified   bool
}

// Status returns the current document status.
func (m Model) Status() DocumentStatus {
	name := m.buf.Source()
	if name == "" {
		name = NoName
	}
	return DocumentStatus{
		TotalLines: m.buf.LineCount(),
		CaretLine:  m.caret.Row,
		FileName:   name,
		Modified:   m.buf.Modified(),
	}
}

func (s DocumentStatus) LinesString() string {
	return fmt.Sprintf("%d lines", s.TotalLines)
}

func (s DocumentStatus) ModifiedString() string {
	if s.Modified {
		return "(modified)"
	}
	return ""
}

// CaretString returns "<caret line>/<total lines>" with a 1-based caret line.
func (s DocumentStatus) CaretString() string {
	return fmt.Sprintf("%d/%d", s.CaretLine+1, s.TotalLines)
}
