package editor

import (
	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/engine"
	"github.com/iw2rmb/richtext/session"
)

type ChangeEvent struct {
	Version uint64
	Cursor  int
	Pos     buffer.Pos

	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Rule names the continuation rule behind a keystroke edit. Commands
	// and clipboard cuts leave it empty.
	Rule engine.Rule

	// v0: simplest payload; host can diff if needed.
	Text string
	Runs []buffer.Run
}

func buildChangeEvent(s *session.Session, rule engine.Rule) ChangeEvent {
	b := s.Buffer()
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  s.Cursor(),
		Rule:    rule,
		Text:    b.Text(),
		Runs:    b.Runs(),
	}
	ev.Pos, _ = b.PosFromOffset(ev.Cursor, buffer.ConvertPolicy{ClampMode: buffer.OffsetClamp})
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
