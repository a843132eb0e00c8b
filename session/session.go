// Package session owns one editing session: the attributed buffer, the
// cursor, the typing attributes and the continuation engine's state.
//
// Hosts report every keystroke as an engine.PendingEdit through SubmitEdit
// and read back the authoritative text, runs and cursor.
package session

import (
	"log/slog"
	"unicode/utf8"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/engine"
	"github.com/iw2rmb/richtext/style"
)

// Options configures a Session. The zero value is usable.
type Options struct {
	// Typing is the initial typing attributes.
	Typing style.Attributes

	// Logger receives debug records for every decision. Nil discards.
	Logger *slog.Logger
}

// Session is not safe for concurrent use.
type Session struct {
	buf    *buffer.Buffer
	typing style.Attributes
	state  engine.State
	cursor CursorPolicy

	anchor    int
	hasAnchor bool

	log *slog.Logger
}

// Result is the state after a submitted edit.
type Result struct {
	Text    string
	Runs    []buffer.Run
	Cursor  int
	Version uint64
	Action  engine.Action
	Rule    engine.Rule
}

// New starts a session on buf, which the session then owns. A nil buf starts
// from an empty buffer. The cursor starts at the end of the text.
func New(buf *buffer.Buffer, opts Options) *Session {
	if buf == nil {
		buf = buffer.New()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		buf:    buf,
		typing: opts.Typing,
		cursor: NewCursorPolicy(buf),
		log:    log,
	}
	s.cursor.Restore(buf.Len())
	return s
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// State returns the engine's blank-line bookkeeping.
func (s *Session) State() engine.State { return s.state }

func (s *Session) Cursor() int { return s.cursor.Capture() }

// SetCursor moves the cursor, clears the selection and picks up the
// attributes of the character before pos as typing attributes.
func (s *Session) SetCursor(pos int) error {
	if err := buffer.CheckRange("set cursor", buffer.Point(pos), s.buf.Len()); err != nil {
		return err
	}
	s.cursor.Restore(pos)
	s.hasAnchor = false
	s.typing = s.attributesBefore(pos)
	return nil
}

// Select sets the selection to [anchor, head) in either order, with the
// cursor at head.
func (s *Session) Select(anchor, head int) error {
	r := buffer.Span(min(anchor, head), max(anchor, head))
	if err := buffer.CheckRange("select", r, s.buf.Len()); err != nil {
		return err
	}
	s.anchor, s.hasAnchor = anchor, anchor != head
	s.cursor.Restore(head)
	return nil
}

// Selection returns the selected range, if any.
func (s *Session) Selection() (buffer.Range, bool) {
	if !s.hasAnchor {
		return buffer.Point(s.Cursor()), false
	}
	head := s.Cursor()
	return buffer.Span(min(s.anchor, head), max(s.anchor, head)), true
}

func (s *Session) TypingAttributes() style.Attributes { return s.typing }

func (s *Session) SetTypingAttributes(a style.Attributes) { s.typing = a }

// AttributesAtCursor returns what a toolbar should show: the attributes at
// the selection start, or the typing attributes when nothing is selected.
func (s *Session) AttributesAtCursor() style.Attributes {
	if r, ok := s.Selection(); ok {
		a, _ := s.buf.AttributesAt(r.Start)
		return a
	}
	return s.typing
}

func (s *Session) attributesBefore(pos int) style.Attributes {
	if pos > 0 {
		pos--
	}
	a, _ := s.buf.AttributesAt(pos)
	return a
}

// SubmitEdit runs e through the continuation engine and applies the outcome.
// Out-of-range edits return a *buffer.RangeError and change nothing.
func (s *Session) SubmitEdit(e engine.PendingEdit) (Result, error) {
	next, out, err := engine.Decide(s.state, s.buf, e)
	if err != nil {
		s.log.Debug("edit rejected", "edit", e.String(), "error", err)
		return Result{}, err
	}

	var host int
	switch out.Action {
	case engine.ActionRewrite:
		if err := s.buf.ReplaceWith(out.Rewrite.Range, out.Rewrite.Fragment); err != nil {
			return Result{}, err
		}
		host = out.Rewrite.Range.Start + out.Rewrite.Fragment.Len()
	default:
		if err := s.buf.Replace(e.Range, e.Replacement, s.typing); err != nil {
			return Result{}, err
		}
		host = e.Range.Start + utf8.RuneCountInString(e.Replacement)
	}
	s.state = next
	s.hasAnchor = false

	// Where the host's own mutation leaves the cursor, then the correction.
	s.cursor.Restore(host)
	if out.Cursor.Set {
		s.cursor.Restore(out.Cursor.Position)
	}
	if out.Action == engine.ActionRewrite {
		s.typing = s.attributesBefore(s.Cursor())
	}

	s.log.Debug("edit applied",
		"edit", e.String(),
		"line", out.Line.String(),
		"rule", string(out.Rule),
		"action", out.Action.String(),
		"cursor", s.Cursor(),
		"armed", s.state.WasOnEmptyLine,
		"version", s.buf.Version(),
	)
	return s.result(out), nil
}

func (s *Session) result(out engine.Outcome) Result {
	return Result{
		Text:    s.buf.Text(),
		Runs:    s.buf.Runs(),
		Cursor:  s.Cursor(),
		Version: s.buf.Version(),
		Action:  out.Action,
		Rule:    out.Rule,
	}
}

// Snapshot returns the current state without editing.
func (s *Session) Snapshot() Result {
	return s.result(engine.Outcome{})
}
