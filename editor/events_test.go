package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/engine"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Pos; got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("event pos after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m = press(t, m, runes("X"))
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if got := events[2].Rule; got != engine.RuleOther {
		t.Fatalf("event rule after insert: got %q, want %q", got, engine.RuleOther)
	}
	if got := len(events[2].Runs); got != 1 {
		t.Fatalf("event runs after insert: got %d, want 1", got)
	}

	_ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	if len(events) != 4 || !events[3].Selection.Active || events[3].Selection.Range != buffer.Span(2, 3) {
		t.Fatalf("selection event: got %+v", events[len(events)-1])
	}
}
