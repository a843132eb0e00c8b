package buffer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iw2rmb/richtext/style"
)

func TestBuffer_Insert_SplitsRun(t *testing.T) {
	b := NewText("abcd", style.Plain)
	v := b.Version()

	if err := b.Insert(2, "XY", bold); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := b.Text(), "abXYcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	want := []Run{
		{0, 2, style.Plain},
		{2, 4, bold},
		{4, 6, style.Plain},
	}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestBuffer_Insert_MergesWithEqualNeighbour(t *testing.T) {
	b := NewText("ab", bold)
	if err := b.Insert(2, "c", bold); err != nil {
		t.Fatalf("insert: %v", err)
	}
	want := []Run{{0, 3, bold}}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
}

func TestBuffer_Insert_UsesGivenAttributesOnly(t *testing.T) {
	b := NewText("ab", h1)
	if err := b.Insert(1, "x", style.Plain); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, _ := b.AttributesAt(1)
	if got != style.Plain {
		t.Fatalf("inserted attrs=%v, want plain", got)
	}
}

func TestBuffer_Insert_EmptyIsNoop(t *testing.T) {
	b := NewText("ab", style.Plain)
	v := b.Version()
	if err := b.Insert(1, "", bold); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_Insert_OutOfRange(t *testing.T) {
	b := NewText("ab", style.Plain)
	err := b.Insert(3, "x", style.Plain)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("err=%v, want *RangeError", err)
	}
	if re.Op != "insert" || re.Start != 3 || re.Len != 2 {
		t.Fatalf("range error=%+v", re)
	}
	if got := b.Text(); got != "ab" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}

func TestBuffer_Delete_AcrossRuns(t *testing.T) {
	b := NewText("ab", style.Plain)
	_ = b.Insert(2, "cd", bold)
	_ = b.Insert(4, "ef", h1)

	if err := b.Delete(Span(1, 5)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, want := b.Text(), "af"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	want := []Run{{0, 1, style.Plain}, {1, 2, h1}}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
}

func TestBuffer_Delete_MergesSurvivors(t *testing.T) {
	b := NewText("ab", style.Plain)
	_ = b.Insert(1, "X", bold)

	if err := b.Delete(Span(1, 2)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	want := []Run{{0, 2, style.Plain}}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
}

func TestBuffer_Delete_Everything(t *testing.T) {
	b := NewText("abc", bold)
	if err := b.Delete(Span(0, 3)); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if b.Len() != 0 || len(b.Runs()) != 0 {
		t.Fatalf("text=%q runs=%v, want empty", b.Text(), b.Runs())
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestBuffer_Replace(t *testing.T) {
	b := NewText("hello world", style.Plain)
	if err := b.Replace(Span(6, 11), "there", bold); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := b.Text(), "hello there"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	want := []Run{{0, 6, style.Plain}, {6, 11, bold}}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
}

func TestBuffer_Replace_InvalidRangeLeavesBufferUntouched(t *testing.T) {
	b := NewText("abc", style.Plain)
	v := b.Version()
	for _, r := range []Range{Span(-1, 1), Span(2, 1), Span(0, 4)} {
		if err := b.Replace(r, "x", bold); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("replace %v: err=%v, want ErrOutOfRange", r, err)
		}
	}
	if got := b.Text(); got != "abc" {
		t.Fatalf("text=%q, want unchanged", got)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_SetAttributes_SplitsAndMerges(t *testing.T) {
	b := NewText("abcdef", style.Plain)

	if err := b.SetAttributes(Span(2, 4), bold); err != nil {
		t.Fatalf("set attributes: %v", err)
	}
	want := []Run{{0, 2, style.Plain}, {2, 4, bold}, {4, 6, style.Plain}}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}

	if err := b.SetAttributes(Span(2, 4), style.Plain); err != nil {
		t.Fatalf("set attributes: %v", err)
	}
	want = []Run{{0, 6, style.Plain}}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
	if got := b.Text(); got != "abcdef" {
		t.Fatalf("text=%q, want unchanged", got)
	}
}

func TestBuffer_SetAttributes_UnchangedDoesNotBumpVersion(t *testing.T) {
	b := NewText("abc", bold)
	v := b.Version()
	if err := b.SetAttributes(Span(0, 2), bold); err != nil {
		t.Fatalf("set attributes: %v", err)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_UpdateAttributes_PreservesOtherFields(t *testing.T) {
	b := NewText("ab", h1)
	_ = b.Insert(2, "cd", bold)

	err := b.UpdateAttributes(Span(1, 3), func(a style.Attributes) style.Attributes {
		return a.ToggleFormat(style.Italic)
	})
	if err != nil {
		t.Fatalf("update attributes: %v", err)
	}

	italic := func(a style.Attributes) style.Attributes { return a.WithFormat(style.Italic, true) }
	want := []Run{
		{0, 1, h1},
		{1, 2, italic(h1)},
		{2, 3, italic(bold)},
		{3, 4, bold},
	}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
}

func TestBuffer_Sub_RebasesRuns(t *testing.T) {
	b := NewText("ab", style.Plain)
	_ = b.Insert(2, "cd", bold)

	sub, err := b.Sub(Span(1, 3))
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if got := sub.Text(); got != "bc" {
		t.Fatalf("text=%q, want %q", got, "bc")
	}
	want := []Run{{0, 1, style.Plain}, {1, 2, bold}}
	if got := sub.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
	if _, err := b.Sub(Span(3, 9)); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err=%v, want ErrOutOfRange", err)
	}
}

func TestBuffer_ReplaceWith_KeepsFragmentRuns(t *testing.T) {
	b := NewText("hello world", style.Plain)
	frag := NewText("> ", quote)
	_ = frag.Insert(2, "big", h1)

	if err := b.ReplaceWith(Span(5, 6), frag); err != nil {
		t.Fatalf("replace with: %v", err)
	}
	if got, want := b.Text(), "hello> bigworld"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	want := []Run{
		{0, 5, style.Plain},
		{5, 7, quote},
		{7, 10, h1},
		{10, 15, style.Plain},
	}
	if got := b.Runs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("runs=%v, want %v", got, want)
	}
	ch, _ := b.LastChange()
	if e := ch.AppliedEdits[0]; e.InsertText != "> big" || e.DeletedText != " " {
		t.Fatalf("edit=%+v", e)
	}
}
