package buffer

import (
	"fmt"

	"github.com/iw2rmb/richtext/style"
)

// Buffer is the attributed text: runes plus the style runs partitioning them.
//
// A Buffer is owned by one editing session and is not safe for concurrent
// use.
type Buffer struct {
	text []rune
	runs []Run

	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewText returns a buffer holding text as a single run carrying attrs.
func NewText(text string, attrs style.Attributes) *Buffer {
	b := &Buffer{text: []rune(text)}
	if len(b.text) > 0 {
		b.runs = []Run{{Start: 0, End: len(b.text), Attrs: attrs}}
	}
	return b
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the length of the text in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

// Runs returns a copy of the style runs.
func (b *Buffer) Runs() []Run {
	return append([]Run(nil), b.runs...)
}

// Clone returns a deep copy. Version and change history are not copied.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		text: append([]rune(nil), b.text...),
		runs: append([]Run(nil), b.runs...),
	}
}

// RuneAt returns the rune at off.
func (b *Buffer) RuneAt(off int) (rune, bool) {
	if off < 0 || off >= len(b.text) {
		return 0, false
	}
	return b.text[off], true
}

// Slice returns the text in r.
func (b *Buffer) Slice(r Range) (string, error) {
	if err := CheckRange("slice", r, len(b.text)); err != nil {
		return "", err
	}
	return string(b.text[r.Start:r.End]), nil
}

// AttributesAt returns the attributes of the run covering off. At off ==
// Len() it returns the attributes of the last run, so typing attributes can
// follow what was just typed. An empty buffer reports style.Plain.
func (b *Buffer) AttributesAt(off int) (style.Attributes, error) {
	if off < 0 || off > len(b.text) {
		return style.Plain, &RangeError{Op: "attributes", Start: off, End: off, Len: len(b.text)}
	}
	if len(b.runs) == 0 {
		return style.Plain, nil
	}
	if off == len(b.text) {
		return b.runs[len(b.runs)-1].Attrs, nil
	}
	return b.runs[b.runIndex(off)].Attrs, nil
}

// runIndex returns the index of the run covering off (0 <= off < Len()).
func (b *Buffer) runIndex(off int) int {
	lo, hi := 0, len(b.runs)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if b.runs[mid].End <= off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// LineAt returns the bounds of the line containing off and its text, without
// the terminating newline. A newline belongs to the line it terminates. off
// is clamped into [0, Len()].
func (b *Buffer) LineAt(off int) (start, end int, text string) {
	off = clampInt(off, 0, len(b.text))
	start = off
	for start > 0 && b.text[start-1] != '\n' {
		start--
	}
	end = off
	for end < len(b.text) && b.text[end] != '\n' {
		end++
	}
	return start, end, string(b.text[start:end])
}

// Validate checks the partition and coalescing invariants and returns an
// error describing the first violation.
func (b *Buffer) Validate() error {
	if len(b.text) == 0 {
		if len(b.runs) != 0 {
			return fmt.Errorf("empty text has %d runs", len(b.runs))
		}
		return nil
	}
	if len(b.runs) == 0 {
		return fmt.Errorf("text of length %d has no runs", len(b.text))
	}
	if b.runs[0].Start != 0 {
		return fmt.Errorf("first run starts at %d", b.runs[0].Start)
	}
	for i, r := range b.runs {
		if r.End <= r.Start {
			return fmt.Errorf("run %d %v is empty or inverted", i, r)
		}
		if !r.Attrs.Header.Valid() || !r.Attrs.Formats.Valid() {
			return fmt.Errorf("run %d %v has invalid attributes", i, r)
		}
		if i == 0 {
			continue
		}
		prev := b.runs[i-1]
		if r.Start != prev.End {
			return fmt.Errorf("run %d %v does not follow %v", i, r, prev)
		}
		if r.Attrs == prev.Attrs {
			return fmt.Errorf("runs %d and %d share attributes %v", i-1, i, r.Attrs)
		}
	}
	if last := b.runs[len(b.runs)-1]; last.End != len(b.text) {
		return fmt.Errorf("last run ends at %d, text length %d", last.End, len(b.text))
	}
	return nil
}
