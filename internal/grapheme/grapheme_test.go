package grapheme

import (
	"strings"
	"testing"
)

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplit_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if j := strings.Join(got, ""); j != text {
		t.Fatalf("join=%q, want %q", j, text)
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split empty: got %q, want nil", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		cluster string
		want    int
	}{
		{cluster: "a", want: 1},
		{cluster: "e\u0301", want: 1},
		{cluster: "世", want: 2},
		{cluster: "\t", want: 0},
		{cluster: "\x01", want: 0},
	}
	for _, tc := range cases {
		if got := Width(tc.cluster); got != tc.want {
			t.Fatalf("Width(%q): got %d, want %d", tc.cluster, got, tc.want)
		}
	}
	if got := Width(family); got < 2 {
		t.Fatalf("Width(family): got %d, want >= 2", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if !IsSpace("\u3000") {
		t.Fatalf("ideographic space should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty should not be space")
	}
	if !IsControl("\x01") {
		t.Fatalf("SOH should be control")
	}
	if IsControl("\x01\x02") {
		t.Fatalf("two controls are not a single control")
	}
	if IsControl("a") || IsControl("") {
		t.Fatalf("letter and empty should not be control")
	}
}
