package engine

import (
	"fmt"

	"github.com/iw2rmb/richtext/buffer"
	"github.com/iw2rmb/richtext/line"
)

// PendingEdit is an edit reported by the host before it is applied: replace
// Range with Replacement.
type PendingEdit struct {
	Range       buffer.Range
	Replacement string
}

// IsEnter reports whether e inserts a single newline.
func (e PendingEdit) IsEnter() bool { return e.Replacement == "\n" }

// IsBackspace reports whether e deletes exactly one character of b: a single
// rune or a whole grapheme cluster.
func (e PendingEdit) IsBackspace(b *buffer.Buffer) bool {
	if e.Replacement != "" || e.Range.Len() == 0 {
		return false
	}
	return e.Range.Len() == 1 || b.NextGrapheme(e.Range.Start) == e.Range.End
}

func (e PendingEdit) String() string { return fmt.Sprintf("%v<-%q", e.Range, e.Replacement) }

// State is the blank-line bookkeeping carried between edits. The zero value
// is the initial state.
type State struct {
	WasOnEmptyLine    bool
	EmptyLineLocation int
}

func armedAt(loc int) State { return State{WasOnEmptyLine: true, EmptyLineLocation: loc} }

type Action uint8

const (
	// ActionDefault applies the pending edit unchanged.
	ActionDefault Action = iota
	// ActionRewrite applies Outcome.Rewrite instead of the pending edit.
	ActionRewrite
)

func (a Action) String() string {
	if a == ActionRewrite {
		return "rewrite"
	}
	return "default"
}

// Rule names the branch that produced an outcome.
type Rule string

const (
	RuleOther             Rule = "other"
	RulePlainEnter        Rule = "plain-enter"
	RuleListContinue      Rule = "list-continue"
	RuleListSplit         Rule = "list-split"
	RuleListExit          Rule = "list-exit"
	RuleQuoteContinue     Rule = "quote-continue"
	RuleQuoteSplit        Rule = "quote-split"
	RuleQuoteExit         Rule = "quote-exit"
	RuleBackspace         Rule = "backspace"
	RuleBackspacePrefix   Rule = "backspace-prefix"
	RuleBackspaceBlank    Rule = "backspace-blank"
	RuleBackspaceJumpBack Rule = "backspace-jump-back"
)

// Rewrite replaces Range with Fragment, text and runs together.
type Rewrite struct {
	Range    buffer.Range
	Fragment *buffer.Buffer
}

// Text returns the replacement text.
func (r Rewrite) Text() string {
	if r.Fragment == nil {
		return ""
	}
	return r.Fragment.Text()
}

// CursorIntent overrides the host's post-edit cursor placement when Set.
type CursorIntent struct {
	Position int
	Set      bool
}

// Intent returns a set CursorIntent at pos.
func Intent(pos int) CursorIntent { return CursorIntent{Position: pos, Set: true} }

// Outcome is the decision for one pending edit.
type Outcome struct {
	Action  Action
	Rule    Rule
	Rewrite Rewrite // ActionRewrite only
	Cursor  CursorIntent
	Line    line.Kind
}

// Decide evaluates e against b. It returns a *buffer.RangeError, and the
// unchanged state, when e.Range lies outside b.
func Decide(st State, b *buffer.Buffer, e PendingEdit) (State, Outcome, error) {
	if err := buffer.CheckRange("decide", e.Range, b.Len()); err != nil {
		return st, Outcome{}, err
	}

	switch {
	case e.IsEnter():
		out, err := decideEnter(b, e)
		if err != nil {
			return st, Outcome{}, err
		}
		return State{}, out, nil
	case e.IsBackspace(b):
		next, out := decideBackspace(st, b, e)
		return next, out, nil
	default:
		return State{}, Outcome{Action: ActionDefault, Rule: RuleOther}, nil
	}
}
