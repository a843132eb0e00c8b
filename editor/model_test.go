package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/style"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	if err := m.Session().SetCursor(0); err != nil {
		t.Fatalf("SetCursor: %v", err)
	}
	m = m.SetSize(8, 3)

	got := strings.Split(m.View(), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	for i := range got {
		got[i] = strings.TrimRight(stripANSI(got[i]), " ")
	}

	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestNew_UsesHostBuffer(t *testing.T) {
	buf := buffer.NewText("# a", style.Plain.WithHeader(style.H1))
	m := New(Config{Buffer: buf, Text: "ignored"})
	if m.Buffer() != buf {
		t.Fatalf("Buffer() is not the host buffer")
	}
	if got := m.Session().Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
}

func TestNew_TypingAppliesToInitialText(t *testing.T) {
	m := New(Config{Text: "ab", Typing: style.Plain.WithFormat(style.Bold, true)})
	a, err := m.Buffer().AttributesAt(0)
	if err != nil {
		t.Fatalf("AttributesAt: %v", err)
	}
	if !a.Has(style.Bold) {
		t.Fatalf("initial text attrs=%v, want bold", a)
	}
	if got := m.Session().TypingAttributes(); !got.Has(style.Bold) {
		t.Fatalf("typing=%v, want bold", got)
	}
}

func TestUpdate_PicksUpHostEdits(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{Text: "ab", OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	m = m.Blur()
	m = m.SetSize(10, 2)

	if _, err := m.Session().InsertText("c"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	m, _ = m.Update(struct{}{})
	if len(events) != 1 || events[0].Text != "abc" {
		t.Fatalf("events=%+v, want one event with text %q", events, "abc")
	}
	if got := strings.TrimRight(stripANSI(m.View()), " \n"); got != "abc" {
		t.Fatalf("view=%q, want %q", got, "abc")
	}
}
