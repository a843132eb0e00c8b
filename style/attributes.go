package style

import (
	"fmt"
	"strings"
)

// HeaderLevel is the active header, if any. The zero value is no header.
type HeaderLevel uint8

const (
	HeaderNone HeaderLevel = iota
	H1
	H2
	H3
	H4
	H5
	H6
)

// HeaderLevels lists every selectable header in toolbar order.
var HeaderLevels = []HeaderLevel{H1, H2, H3, H4, H5, H6}

func (h HeaderLevel) Valid() bool { return h <= H6 }

func (h HeaderLevel) String() string {
	if h == HeaderNone || !h.Valid() {
		return ""
	}
	return fmt.Sprintf("H%d", int(h))
}

// ParseHeaderLevel parses the serialized name ("H1".."H6"). The empty string
// parses as HeaderNone.
func ParseHeaderLevel(s string) (HeaderLevel, error) {
	if s == "" {
		return HeaderNone, nil
	}
	for _, h := range HeaderLevels {
		if h.String() == s {
			return h, nil
		}
	}
	return HeaderNone, fmt.Errorf("unknown header level %q", s)
}

// FormatFlag is one inline format. Flags combine freely as a bit set.
type FormatFlag uint8

const (
	Bold FormatFlag = 1 << iota
	Italic
	Underline
	Strikethrough
)

// FormatFlags lists every flag in toolbar order.
var FormatFlags = []FormatFlag{Bold, Italic, Underline, Strikethrough}

const allFormats = Bold | Italic | Underline | Strikethrough

func (f FormatFlag) Valid() bool { return f&^allFormats == 0 }

func (f FormatFlag) String() string {
	return strings.Join(f.Names(), "|")
}

// Names returns the serialized name of every set flag, in toolbar order.
func (f FormatFlag) Names() []string {
	names := []string{}
	for _, flag := range FormatFlags {
		if f&flag == 0 {
			continue
		}
		names = append(names, flagName(flag))
	}
	return names
}

func flagName(f FormatFlag) string {
	switch f {
	case Bold:
		return "B"
	case Italic:
		return "I"
	case Underline:
		return "U"
	case Strikethrough:
		return "S"
	default:
		return ""
	}
}

// ParseFormatFlag parses a single serialized flag name ("B", "I", "U", "S").
func ParseFormatFlag(s string) (FormatFlag, error) {
	switch s {
	case "B":
		return Bold, nil
	case "I":
		return Italic, nil
	case "U":
		return Underline, nil
	case "S":
		return Strikethrough, nil
	default:
		return 0, fmt.Errorf("unknown format flag %q", s)
	}
}

// Attributes is the formatting at a point. Two values are equal iff all
// fields are equal, so == is the style equality used for run coalescing.
type Attributes struct {
	Header     HeaderLevel
	Formats    FormatFlag
	Blockquote bool
}

// Plain is the zero formatting.
var Plain = Attributes{}

func (a Attributes) Has(f FormatFlag) bool { return a.Formats&f == f && f != 0 }

func (a Attributes) IsPlain() bool { return a == Plain }

func (a Attributes) String() string {
	var parts []string
	if a.Header != HeaderNone {
		parts = append(parts, a.Header.String())
	}
	if a.Formats != 0 {
		parts = append(parts, a.Formats.String())
	}
	if a.Blockquote {
		parts = append(parts, "quote")
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, ",")
}

// Merge layers overlay on top of base. Blockquote always comes from the
// overlay and the header does when the overlay sets one; format flags are
// unioned.
func Merge(base, overlay Attributes) Attributes {
	out := base
	if overlay.Header != HeaderNone {
		out.Header = overlay.Header
	}
	out.Formats |= overlay.Formats
	out.Blockquote = overlay.Blockquote
	return out
}

// WithHeader returns a with the header replaced.
func (a Attributes) WithHeader(h HeaderLevel) Attributes {
	a.Header = h
	return a
}

// WithFormat returns a with flag set or cleared.
func (a Attributes) WithFormat(f FormatFlag, on bool) Attributes {
	if on {
		a.Formats |= f
	} else {
		a.Formats &^= f
	}
	return a
}

// WithBlockquote returns a with the blockquote marker replaced.
func (a Attributes) WithBlockquote(on bool) Attributes {
	a.Blockquote = on
	return a
}

// ToggleHeader selects h, or clears the header when h is already active.
func (a Attributes) ToggleHeader(h HeaderLevel) Attributes {
	if a.Header == h {
		a.Header = HeaderNone
		return a
	}
	a.Header = h
	return a
}

func (a Attributes) ToggleFormat(f FormatFlag) Attributes {
	a.Formats ^= f
	return a
}

func (a Attributes) ToggleBlockquote() Attributes {
	a.Blockquote = !a.Blockquote
	return a
}
