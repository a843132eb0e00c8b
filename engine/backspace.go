package engine

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/line"
)

func decideBackspace(st State, b *buffer.Buffer, e PendingEdit) (State, Outcome) {
	loc := e.Range.Start
	l := line.Classify(b, loc)
	out := Outcome{Action: ActionDefault, Rule: RuleBackspace, Cursor: Intent(loc), Line: l.Kind}

	if l.IsList() && l.InPrefix(loc) {
		out.Rule = RuleBackspacePrefix
		return State{}, out
	}

	if st.WasOnEmptyLine && loc == st.EmptyLineLocation {
		if loc > 0 {
			out.Cursor = Intent(previousLineEnd(b, loc))
		}
		out.Rule = RuleBackspaceJumpBack
		return State{}, out
	}

	if loc == 0 {
		return State{}, out
	}

	next := State{}
	r, _ := b.RuneAt(loc)
	if r == '\n' {
		// The newline ends the line it terminates; arm when that line is blank.
		_, _, text := b.LineAt(loc)
		if isBlank(text) {
			next = armedAt(loc)
		}
	} else if n, ok := b.RuneAt(e.Range.End); ok && n == '\n' {
		// Deleting the last character of a line may leave it blank.
		if l.IsList() {
			return State{}, out
		}
		before, _ := b.Slice(buffer.Span(l.Start, loc))
		if isBlank(before) {
			next = armedAt(loc)
		}
	}
	if next.WasOnEmptyLine {
		out.Rule = RuleBackspaceBlank
	}
	return next, out
}

// previousLineEnd returns the offset of the last character of the line
// holding loc-1: its newline when it has one.
func previousLineEnd(b *buffer.Buffer, loc int) int {
	_, end, _ := b.LineAt(loc - 1)
	if end == b.Len() {
		end--
	}
	return max(end, 0)
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
