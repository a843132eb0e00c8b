package buffer

import (
	"fmt"

	"github.com/iw2rmb/richtext/style"
)

// Range is a half-open rune range: [Start, End).
type Range struct {
	Start int
	End   int
}

// Span returns the range [start, end).
func Span(start, end int) Range { return Range{Start: start, End: end} }

// Point returns the empty range at off.
func Point(off int) Range { return Range{Start: off, End: off} }

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether off lies inside [Start, End).
func (r Range) Contains(off int) bool { return off >= r.Start && off < r.End }

func (r Range) String() string { return fmt.Sprintf("[%d:%d)", r.Start, r.End) }

// Pos points into the buffer by (row, col) in runes. Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Run is a maximal span of text sharing identical attributes.
type Run struct {
	Start int
	End   int
	Attrs style.Attributes
}

func (r Run) Len() int { return r.End - r.Start }

func (r Run) Range() Range { return Range{Start: r.Start, End: r.End} }

func (r Run) String() string { return fmt.Sprintf("[%d:%d)%s", r.Start, r.End, r.Attrs) }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
