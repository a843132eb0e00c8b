package engine

import (
	"math"
	"unicode/utf8"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/line"
	"github.com/iw2rmb/richtext/style"
)

func decideEnter(b *buffer.Buffer, e PendingEdit) (Outcome, error) {
	start := e.Range.Start
	l := line.Classify(b, start)

	plain := Outcome{Action: ActionDefault, Rule: RulePlainEnter, Cursor: Intent(start + 1), Line: l.Kind}
	if l.Kind == line.Plain || e.Range.End > l.End {
		return plain, nil
	}

	// New markers take the attributes of the line's first character.
	attrs, err := b.AttributesAt(l.Start)
	if err != nil {
		return Outcome{}, err
	}
	k := start - l.Content.Start

	switch l.Kind {
	case line.OrderedItem, line.UnorderedItem:
		if k < 0 {
			return plain, nil
		}
		return listEnter(e, l, attrs, k), nil
	case line.Blockquote:
		return quoteEnter(b, e, l, attrs, k, plain)
	default:
		return plain, nil
	}
}

func listEnter(e PendingEdit, l line.Line, attrs style.Attributes, k int) Outcome {
	start := e.Range.Start

	var rule Rule
	var text string
	switch {
	case l.Content.IsEmpty() && k == 0:
		rule, text = RuleListExit, "\n"+l.Indent
	case e.Range.End < l.End:
		rule, text = RuleListSplit, "\n"+l.Marker(l.Number)
	default:
		rule, text = RuleListContinue, "\n"+l.Marker(nextNumber(l.Number))
	}
	return rewrite(rule, l.Kind, e.Range, buffer.NewText(text, attrs), start+utf8.RuneCountInString(text))
}

func quoteEnter(b *buffer.Buffer, e PendingEdit, l line.Line, attrs style.Attributes, k int, plain Outcome) (Outcome, error) {
	start := e.Range.Start
	switch {
	case k <= 0 && l.IsBlank():
		frag := buffer.NewText("\n", attrs.WithBlockquote(false))
		return rewrite(RuleQuoteExit, l.Kind, e.Range, frag, start+1), nil
	case k < 0:
		return plain, nil
	case e.Range.End < l.End:
		// The remainder keeps its inline formatting; only the blockquote
		// marker is carried from the first character.
		tail, err := b.Sub(buffer.Span(e.Range.End, l.End))
		if err != nil {
			return Outcome{}, err
		}
		quoted := attrs.Blockquote
		if err := tail.UpdateAttributes(buffer.Span(0, tail.Len()), func(a style.Attributes) style.Attributes {
			return a.WithBlockquote(quoted)
		}); err != nil {
			return Outcome{}, err
		}
		frag := buffer.NewText("\n"+line.BlockquotePrefix, attrs)
		if err := frag.ReplaceWith(buffer.Point(frag.Len()), tail); err != nil {
			return Outcome{}, err
		}
		return rewrite(RuleQuoteSplit, l.Kind, buffer.Span(start, l.End), frag, start+1+len(line.BlockquotePrefix)), nil
	default:
		frag := buffer.NewText("\n"+line.BlockquotePrefix, attrs)
		return rewrite(RuleQuoteContinue, l.Kind, e.Range, frag, start+1+len(line.BlockquotePrefix)), nil
	}
}

func rewrite(rule Rule, kind line.Kind, r buffer.Range, frag *buffer.Buffer, cursor int) Outcome {
	return Outcome{
		Action:  ActionRewrite,
		Rule:    rule,
		Rewrite: Rewrite{Range: r, Fragment: frag},
		Cursor:  Intent(cursor),
		Line:    kind,
	}
}

// nextNumber returns n+1, saturating at math.MaxInt.
func nextNumber(n int) int {
	if n == math.MaxInt {
		return n
	}
	return n + 1
}
