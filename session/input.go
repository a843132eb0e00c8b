package session

import (
	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/engine"
)

// The helpers below turn editing keys into pending edits over the current
// cursor or selection.

// InsertText replaces the selection, or inserts at the cursor.
func (s *Session) InsertText(text string) (Result, error) {
	r, _ := s.Selection()
	return s.SubmitEdit(engine.PendingEdit{Range: r, Replacement: text})
}

// Enter inserts a newline.
func (s *Session) Enter() (Result, error) { return s.InsertText("\n") }

// Backspace deletes the selection or the grapheme before the cursor. At the
// start of the text it is a no-op.
func (s *Session) Backspace() (Result, error) {
	if r, ok := s.Selection(); ok {
		return s.SubmitEdit(engine.PendingEdit{Range: r})
	}
	cur := s.Cursor()
	if cur == 0 {
		return s.Snapshot(), nil
	}
	return s.SubmitEdit(engine.PendingEdit{Range: buffer.Span(s.buf.PrevGrapheme(cur), cur)})
}

// DeleteForward deletes the selection or the grapheme after the cursor. At
// the end of the text it is a no-op.
func (s *Session) DeleteForward() (Result, error) {
	if r, ok := s.Selection(); ok {
		return s.SubmitEdit(engine.PendingEdit{Range: r})
	}
	cur := s.Cursor()
	if cur == s.buf.Len() {
		return s.Snapshot(), nil
	}
	return s.SubmitEdit(engine.PendingEdit{Range: buffer.Span(cur, s.buf.NextGrapheme(cur))})
}

// Move moves the cursor. With extend the selection grows from its anchor
// (or from the current cursor when nothing is selected).
func (s *Session) Move(m buffer.Move, extend bool) {
	cur := s.Cursor()
	head := s.buf.MoveOffset(cur, m)
	if extend {
		anchor := cur
		if s.hasAnchor {
			anchor = s.anchor
		}
		_ = s.Select(anchor, head)
		return
	}
	_ = s.SetCursor(head)
}
