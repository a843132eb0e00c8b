package grapheme

import (
	"reflect"
	"testing"
)

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
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
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if j := Join(got); j != text {
		t.Fatalf("join=%q, want %q", j, text)
	}
}

func TestBoundaries_RuneOffsets(t *testing.T) {
	text := "a" + "e\u0301" + "b"
	if got, want := Boundaries(text), []int{0, 1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("boundaries=%v, want %v", got, want)
	}
	if got, want := Boundaries(""), []int{0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("empty boundaries=%v, want %v", got, want)
	}
}

func TestPrevNextSnap(t *testing.T) {
	text := "a" + "e\u0301" + "b"

	cases := []struct {
		col              int
		prev, next, snap int
	}{
		{col: 0, prev: 0, next: 1, snap: 0},
		{col: 1, prev: 0, next: 3, snap: 1},
		{col: 2, prev: 1, next: 3, snap: 1},
		{col: 3, prev: 1, next: 4, snap: 3},
		{col: 4, prev: 3, next: 4, snap: 4},
	}
	for _, tc := range cases {
		if got := Prev(text, tc.col); got != tc.prev {
			t.Fatalf("Prev(%d)=%d, want %d", tc.col, got, tc.prev)
		}
		if got := Next(text, tc.col); got != tc.next {
			t.Fatalf("Next(%d)=%d, want %d", tc.col, got, tc.next)
		}
		if got := Snap(text, tc.col); got != tc.snap {
			t.Fatalf("Snap(%d)=%d, want %d", tc.col, got, tc.snap)
		}
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty should not be space")
	}
}
