// Package line classifies a single line of text as a plain line, an ordered
// or unordered list item, or a blockquote.
//
// Classification is total: every line gets a definite Kind, and "no match"
// is reported as Plain rather than as an error.
package line

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/richtext/buffer"
)

type Kind uint8

const (
	Plain Kind = iota
	OrderedItem
	UnorderedItem
	Blockquote
)

func (k Kind) String() string {
	switch k {
	case OrderedItem:
		return "ordered"
	case UnorderedItem:
		return "unordered"
	case Blockquote:
		return "blockquote"
	default:
		return "plain"
	}
}

// BlockquotePrefix is the literal marker that opens a blockquote line.
const BlockquotePrefix = "> "

var (
	// RE2's \s is ASCII only; \p{Zs} adds ideographic and no-break spaces.
	orderedRe   = regexp.MustCompile(`^([\s\p{Zs}]*)(\d+)\.([\s\p{Zs}]+)(.*)$`)
	unorderedRe = regexp.MustCompile(`^([\s\p{Zs}]*)([•\-*])([\s\p{Zs}]+)(.*)$`)
)

// Source is anything that can report the line around an offset.
// *buffer.Buffer implements it.
type Source interface {
	LineAt(pos int) (start, end int, text string)
}

// Line is the classification of one line. Offsets are rune offsets in the
// source; Start/End exclude the terminating newline.
type Line struct {
	Kind  Kind
	Start int
	End   int
	Text  string

	Indent    string
	Number    int  // OrderedItem only
	Bullet    rune // UnorderedItem only
	Separator string
	Content   buffer.Range
}

// Classify classifies the line of src containing pos.
func Classify(src Source, pos int) Line {
	start, _, text := src.LineAt(pos)
	l := Parse(text)
	l.Start += start
	l.End += start
	l.Content.Start += start
	l.Content.End += start
	return l
}

// Parse classifies a standalone line. Offsets are relative to the start of
// text, which must not contain a newline.
func Parse(text string) Line {
	n := utf8.RuneCountInString(text)
	l := Line{Kind: Plain, End: n, Text: text, Content: buffer.Span(0, n)}

	if m := orderedRe.FindStringSubmatchIndex(text); m != nil {
		if num, err := strconv.Atoi(text[m[4]:m[5]]); err == nil {
			l.Kind = OrderedItem
			l.Indent = text[m[2]:m[3]]
			l.Number = num
			l.Separator = text[m[6]:m[7]]
			l.Content = buffer.Span(runeCount(text, m[8]), n)
			return l
		}
	}
	if m := unorderedRe.FindStringSubmatchIndex(text); m != nil {
		bullet, _ := utf8.DecodeRuneInString(text[m[4]:m[5]])
		l.Kind = UnorderedItem
		l.Indent = text[m[2]:m[3]]
		l.Bullet = bullet
		l.Separator = text[m[6]:m[7]]
		l.Content = buffer.Span(runeCount(text, m[8]), n)
		return l
	}
	if strings.HasPrefix(text, BlockquotePrefix) {
		l.Kind = Blockquote
		l.Content = buffer.Span(len(BlockquotePrefix), n)
	}
	return l
}

func runeCount(text string, byteOff int) int {
	return utf8.RuneCountInString(text[:byteOff])
}

// IsList reports whether l is an ordered or unordered list item.
func (l Line) IsList() bool {
	return l.Kind == OrderedItem || l.Kind == UnorderedItem
}

// PrefixSpan returns the range taken by indent, marker and separator. It is
// empty for plain lines.
func (l Line) PrefixSpan() buffer.Range {
	if l.Kind == Plain {
		return buffer.Point(l.Start)
	}
	return buffer.Span(l.Start, l.Content.Start)
}

// InPrefix reports whether the character at pos lies inside the prefix span.
func (l Line) InPrefix(pos int) bool {
	return l.PrefixSpan().Contains(pos)
}

// ContentText returns the text after the prefix.
func (l Line) ContentText() string {
	runes := []rune(l.Text)
	return string(runes[l.Content.Start-l.Start:])
}

// IsBlank reports whether the content is empty or whitespace only.
func (l Line) IsBlank() bool {
	return strings.TrimFunc(l.ContentText(), unicode.IsSpace) == ""
}

// Marker renders the list marker, "> " for blockquotes, or "" for plain
// lines. Ordered markers use number instead of l.Number.
func (l Line) Marker(number int) string {
	switch l.Kind {
	case OrderedItem:
		return l.Indent + strconv.Itoa(number) + "." + l.Separator
	case UnorderedItem:
		return l.Indent + string(l.Bullet) + l.Separator
	case Blockquote:
		return BlockquotePrefix
	default:
		return ""
	}
}
