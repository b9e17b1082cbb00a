package buffer

import "github.com/iw2rmb/quill/internal/grapheme"

// WidthClass is the number of terminal cells a fragment occupies.
type WidthClass uint8

const (
	Half WidthClass = iota // 1 cell
	Full                   // 2 cells
)

// Cells returns the cell count of w.
func (w WidthClass) Cells() int {
	if w == Full {
		return 2
	}
	return 1
}

// Replacement glyphs drawn instead of clusters that cannot be printed as-is.
const (
	TabGlyph        = ' '
	BlankGlyph      = '␣'
	ControlGlyph    = '▯'
	ZeroWidthGlyph  = '·'
	TruncationGlyph = '⋯'
)

// Fragment is one grapheme cluster of a Line.
type Fragment struct {
	Text  string
	Width WidthClass
	// Replacement is drawn instead of Text when non-zero. A fragment with a
	// replacement is always Half width.
	Replacement rune
}

// Glyph returns what the renderer draws for f.
func (f Fragment) Glyph() string {
	if f.Replacement != 0 {
		return string(f.Replacement)
	}
	return f.Text
}

func newFragment(cluster string) Fragment {
	if r, ok := replacementFor(cluster); ok {
		return Fragment{Text: cluster, Width: Half, Replacement: r}
	}
	w := Half
	if grapheme.Width(cluster) >= 2 {
		w = Full
	}
	return Fragment{Text: cluster, Width: w}
}

// replacementFor applies the rules in order: a plain space is drawn as is,
// a tab becomes a space, visible-width whitespace becomes a blank marker,
// a lone zero-width control becomes a control marker, and any other
// zero-width cluster becomes a dot.
func replacementFor(cluster string) (rune, bool) {
	if cluster == " " {
		return 0, false
	}
	if cluster == "\t" {
		return TabGlyph, true
	}
	w := grapheme.Width(cluster)
	switch {
	case w > 0 && grapheme.IsSpace(cluster):
		return BlankGlyph, true
	case w == 0 && grapheme.IsControl(cluster):
		return ControlGlyph, true
	case w == 0:
		return ZeroWidthGlyph, true
	}
	return 0, false
}

func fragmentsOf(text string) []Fragment {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}
	out := make([]Fragment, 0, len(clusters))
	for _, c := range clusters {
		out = append(out, newFragment(c))
	}
	return out
}
