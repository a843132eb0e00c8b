package session

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/engine"
	"github.com/iw2rmb/richtext/line"
	"github.com/iw2rmb/richtext/style"
)

// QuotePlaceholder fills a blockquote inserted without a selection. It is
// left selected so typing replaces it.
const QuotePlaceholder = "Quote"

// ApplyStyle stamps attrs over r. An empty r sets the typing attributes
// instead.
func (s *Session) ApplyStyle(r buffer.Range, attrs style.Attributes) error {
	if err := buffer.CheckRange("apply style", r, s.buf.Len()); err != nil {
		return err
	}
	s.state = engine.State{}
	if r.IsEmpty() {
		s.typing = attrs
		return nil
	}
	return s.buf.SetAttributes(r, attrs)
}

// ToggleHeader selects level over r, or clears the header when the first
// character of r already has it.
func (s *Session) ToggleHeader(r buffer.Range, level style.HeaderLevel) error {
	return s.toggle("toggle header", r, func(cur style.Attributes) func(style.Attributes) style.Attributes {
		target := cur.ToggleHeader(level).Header
		return func(a style.Attributes) style.Attributes { return a.WithHeader(target) }
	})
}

// ToggleFormat sets or clears flag over r, depending on whether the first
// character of r has it.
func (s *Session) ToggleFormat(r buffer.Range, flag style.FormatFlag) error {
	return s.toggle("toggle format", r, func(cur style.Attributes) func(style.Attributes) style.Attributes {
		on := !cur.Has(flag)
		return func(a style.Attributes) style.Attributes { return a.WithFormat(flag, on) }
	})
}

func (s *Session) ToggleBlockquote(r buffer.Range) error {
	return s.toggle("toggle blockquote", r, func(cur style.Attributes) func(style.Attributes) style.Attributes {
		on := !cur.Blockquote
		return func(a style.Attributes) style.Attributes { return a.WithBlockquote(on) }
	})
}

// toggle derives the update from the attributes at r.Start, or from the
// typing attributes when r is empty, and applies it to every run in r.
func (s *Session) toggle(op string, r buffer.Range, mk func(style.Attributes) func(style.Attributes) style.Attributes) error {
	if err := buffer.CheckRange(op, r, s.buf.Len()); err != nil {
		return err
	}
	s.state = engine.State{}
	if r.IsEmpty() {
		s.typing = mk(s.typing)(s.typing)
		return nil
	}
	cur, err := s.buf.AttributesAt(r.Start)
	if err != nil {
		return err
	}
	return s.buf.UpdateAttributes(r, mk(cur))
}

// InsertOrderedList starts a numbered list at sel. An empty selection
// inserts a new "1. " item on the next line; otherwise every non-empty
// selected line becomes an item numbered from 1 and the result is selected.
func (s *Session) InsertOrderedList(sel buffer.Range) error {
	return s.insertList("insert ordered list", sel, func(i int) string {
		return strconv.Itoa(i+1) + ". "
	})
}

// InsertUnorderedList is InsertOrderedList with "• " markers.
func (s *Session) InsertUnorderedList(sel buffer.Range) error {
	return s.insertList("insert unordered list", sel, func(int) string { return "• " })
}

func (s *Session) insertList(op string, sel buffer.Range, marker func(i int) string) error {
	if err := buffer.CheckRange(op, sel, s.buf.Len()); err != nil {
		return err
	}
	s.state = engine.State{}

	_, _, current := s.buf.LineAt(sel.Start)
	indent := leadingSpace(current)

	if sel.IsEmpty() {
		text := "\n" + indent + marker(0)
		if err := s.buf.Insert(sel.Start, text, s.typing); err != nil {
			return err
		}
		s.hasAnchor = false
		s.cursor.Restore(sel.Start + utf8.RuneCountInString(text))
		s.log.Debug("list inserted", "op", op, "at", sel.Start)
		return nil
	}

	selected, err := s.buf.Slice(sel)
	if err != nil {
		return err
	}
	var items []string
	for _, l := range strings.Split(selected, "\n") {
		if l == "" {
			continue
		}
		items = append(items, indent+marker(len(items))+strings.TrimSpace(l))
	}
	text := strings.Join(items, "\n")

	attrs, err := s.buf.AttributesAt(sel.Start)
	if err != nil {
		return err
	}
	if err := s.buf.Replace(sel, text, attrs); err != nil {
		return err
	}
	s.log.Debug("list inserted", "op", op, "range", sel.String(), "items", len(items))
	return s.Select(sel.Start, sel.Start+utf8.RuneCountInString(text))
}

// InsertBlockquote replaces sel with "\n> " + content + "\n" stamped as a
// blockquote, where content is the selected text or QuotePlaceholder. The
// placeholder is left selected; selected content leaves the cursor after it.
func (s *Session) InsertBlockquote(sel buffer.Range) error {
	if err := buffer.CheckRange("insert blockquote", sel, s.buf.Len()); err != nil {
		return err
	}
	s.state = engine.State{}

	content := QuotePlaceholder
	if !sel.IsEmpty() {
		c, err := s.buf.Slice(sel)
		if err != nil {
			return err
		}
		content = c
	}

	attrs := s.typing.WithBlockquote(true)
	text := "\n" + line.BlockquotePrefix + content + "\n"
	if err := s.buf.Replace(sel, text, attrs); err != nil {
		return err
	}
	s.typing = attrs
	s.log.Debug("blockquote inserted", "range", sel.String(), "placeholder", sel.IsEmpty())

	start := sel.Start + 1 + utf8.RuneCountInString(line.BlockquotePrefix)
	end := start + utf8.RuneCountInString(content)
	if sel.IsEmpty() {
		return s.Select(start, end)
	}
	s.hasAnchor = false
	s.cursor.Restore(end)
	return nil
}

func leadingSpace(text string) string {
	i := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return text
	}
	return text[:i]
}
