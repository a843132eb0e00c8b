package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an offset or range outside the buffer bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidEncoding indicates a serialized buffer whose runs do not
	// partition its text.
	ErrInvalidEncoding = errors.New("invalid buffer encoding")
)

// RangeError reports an offset/range argument outside [0, Len]. The buffer
// is left unchanged when one is returned.
type RangeError struct {
	Op    string
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	if e.Start == e.End {
		return fmt.Sprintf("%s: offset %d out of range [0,%d]", e.Op, e.Start, e.Len)
	}
	return fmt.Sprintf("%s: range [%d:%d) out of range [0,%d]", e.Op, e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CheckRange returns a *RangeError unless 0 <= r.Start <= r.End <= length.
func CheckRange(op string, r Range, length int) error {
	if r.Start < 0 || r.End < r.Start || r.End > length {
		return &RangeError{Op: op, Start: r.Start, End: r.End, Len: length}
	}
	return nil
}
