package buffer

import "testing"

func TestInsertChar_AppendsLineAtEnd(t *testing.T) {
	b := New()
	b.InsertChar(0, 0, 'a')
	if got := bufferLines(b); !equalStrings(got, []string{"a"}) {
		t.Fatalf("insert into empty: got %q", got)
	}
	if !b.Modified() {
		t.Fatalf("expected modified")
	}

	b.InsertChar(3, 0, 'z')
	if got := bufferLines(b); !equalStrings(got, []string{"a", "", "", "z"}) {
		t.Fatalf("insert past end: got %q", got)
	}
}

func TestInsertChar_NegativeRowIsNoop(t *testing.T) {
	b := mustLoad(t, "a")
	b.InsertChar(-1, 0, 'x')
	if b.Modified() || b.LineCount() != 1 {
		t.Fatalf("negative row must be ignored")
	}
}

func TestDeleteAt(t *testing.T) {
	b := mustLoad(t, "abc\ndef")
	b.DeleteAt(1, 1)
	if got := bufferLines(b); !equalStrings(got, []string{"abc", "df"}) {
		t.Fatalf("delete: got %q", got)
	}
}

func TestDeleteAt_OutOfRangeLeavesUnmodified(t *testing.T) {
	b := mustLoad(t, "abc")
	b.DeleteAt(0, 3)
	b.DeleteAt(5, 0)
	b.DeleteAt(0, -1)
	if b.Modified() {
		t.Fatalf("out of range deletes must not mark the buffer modified")
	}
	if got := bufferLines(b); !equalStrings(got, []string{"abc"}) {
		t.Fatalf("lines: got %q", got)
	}
}

func TestBreakLine(t *testing.T) {
	cases := []struct {
		name string
		text string
		row  int
		col  int
		want []string
	}{
		{name: "start", text: "abc\ndef", row: 1, col: 0, want: []string{"abc", "", "def"}},
		{name: "middle", text: "line one", row: 0, col: 4, want: []string{"line", " one"}},
		{name: "end", text: "abc\ndef", row: 0, col: 3, want: []string{"abc", "", "def"}},
		{name: "past end", text: "abc", row: 0, col: 9, want: []string{"abc", ""}},
		{name: "empty document", text: "", row: 0, col: 0, want: []string{"", ""}},
		{name: "row past end", text: "abc", row: 1, col: 0, want: []string{"abc", "", ""}},
	}
	for _, tc := range cases {
		b := mustLoad(t, tc.text)
		b.BreakLine(tc.row, tc.col)
		if got := bufferLines(b); !equalStrings(got, tc.want) {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
		if !b.Modified() {
			t.Fatalf("%s: expected modified", tc.name)
		}
	}
}

func TestMergeLines(t *testing.T) {
	b := mustLoad(t, "abc\ndef\nghi")
	b.MergeLines(0, 1)
	if got := bufferLines(b); !equalStrings(got, []string{"abcdef", "ghi"}) {
		t.Fatalf("merge: got %q", got)
	}
	if !b.Modified() {
		t.Fatalf("expected modified")
	}
}

func TestMergeLines_InvalidIsNoop(t *testing.T) {
	b := mustLoad(t, "abc\ndef")
	b.MergeLines(1, 2)
	b.MergeLines(-1, 0)
	b.MergeLines(1, 1)
	if b.Modified() {
		t.Fatalf("invalid merges must not mark the buffer modified")
	}
	if got := bufferLines(b); !equalStrings(got, []string{"abc", "def"}) {
		t.Fatalf("lines: got %q", got)
	}
}

func TestMergeLines_ResegmentsAcrossJoin(t *testing.T) {
	b := mustLoad(t, "e\n\u0301x")
	b.MergeLines(0, 1)
	l, _ := b.Line(0)
	if got := l.Len(); got != 2 {
		t.Fatalf("merged len: got %d, want 2", got)
	}
	if got := l.Fragments()[0].Text; got != "e\u0301" {
		t.Fatalf("merged first cluster: got %q", got)
	}
}
