package buffer

import "github.com/iw2rmb/richtext/style"

// Insert inserts text at off as a new run carrying attrs. The attributes are
// the caller's typing attributes; nothing is inherited from the neighbours.
func (b *Buffer) Insert(off int, text string, attrs style.Attributes) error {
	if err := CheckRange("insert", Point(off), len(b.text)); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	vb := b.version
	applied := b.replaceRange(Point(off), []rune(text), singleRun(text, attrs))
	b.version++
	b.commitChange(vb, ChangeText, applied)
	return nil
}

// Delete removes the text in r and shifts later runs left by r.Len().
func (b *Buffer) Delete(r Range) error {
	if err := CheckRange("delete", r, len(b.text)); err != nil {
		return err
	}
	if r.IsEmpty() {
		return nil
	}
	vb := b.version
	applied := b.replaceRange(r, nil, nil)
	b.version++
	b.commitChange(vb, ChangeText, applied)
	return nil
}

// Replace deletes r and inserts text carrying attrs in one step. The range
// is validated before anything changes.
func (b *Buffer) Replace(r Range, text string, attrs style.Attributes) error {
	if err := CheckRange("replace", r, len(b.text)); err != nil {
		return err
	}
	if r.IsEmpty() && text == "" {
		return nil
	}
	vb := b.version
	applied := b.replaceRange(r, []rune(text), singleRun(text, attrs))
	b.version++
	b.commitChange(vb, ChangeText, applied)
	return nil
}

// ReplaceWith deletes r and splices in the text of src together with its
// runs, as one change.
func (b *Buffer) ReplaceWith(r Range, src *Buffer) error {
	if err := CheckRange("replace", r, len(b.text)); err != nil {
		return err
	}
	if r.IsEmpty() && src.Len() == 0 {
		return nil
	}
	vb := b.version
	applied := b.replaceRange(r, src.text, src.runs)
	b.version++
	b.commitChange(vb, ChangeText, applied)
	return nil
}

// Sub returns a new buffer holding the text and runs in r, rebased to 0.
func (b *Buffer) Sub(r Range) (*Buffer, error) {
	if err := CheckRange("sub", r, len(b.text)); err != nil {
		return nil, err
	}
	out := &Buffer{text: append([]rune(nil), b.text[r.Start:r.End]...)}
	for _, run := range b.runs {
		start, end := max(run.Start, r.Start), min(run.End, r.End)
		if start >= end {
			continue
		}
		out.runs = append(out.runs, Run{Start: start - r.Start, End: end - r.Start, Attrs: run.Attrs})
	}
	return out, nil
}

func singleRun(text string, attrs style.Attributes) []Run {
	n := len([]rune(text))
	if n == 0 {
		return nil
	}
	return []Run{{Start: 0, End: n, Attrs: attrs}}
}

// SetAttributes stamps attrs over r, splitting and merging runs as needed.
func (b *Buffer) SetAttributes(r Range, attrs style.Attributes) error {
	return b.updateAttributes("set attributes", r, func(style.Attributes) style.Attributes { return attrs })
}

// UpdateAttributes replaces the attributes of every run piece inside r with
// fn applied to them.
func (b *Buffer) UpdateAttributes(r Range, fn func(style.Attributes) style.Attributes) error {
	return b.updateAttributes("update attributes", r, fn)
}

func (b *Buffer) updateAttributes(op string, r Range, fn func(style.Attributes) style.Attributes) error {
	if err := CheckRange(op, r, len(b.text)); err != nil {
		return err
	}
	if r.IsEmpty() || fn == nil {
		return nil
	}

	next := make([]Run, 0, len(b.runs)+2)
	for _, run := range b.runs {
		if run.End <= r.Start || run.Start >= r.End {
			next = append(next, run)
			continue
		}
		if run.Start < r.Start {
			next = append(next, Run{Start: run.Start, End: r.Start, Attrs: run.Attrs})
		}
		midStart := max(run.Start, r.Start)
		midEnd := min(run.End, r.End)
		next = append(next, Run{Start: midStart, End: midEnd, Attrs: fn(run.Attrs)})
		if run.End > r.End {
			next = append(next, Run{Start: r.End, End: run.End, Attrs: run.Attrs})
		}
	}
	next = coalesceRuns(next)
	if runsEqual(next, b.runs) {
		return nil
	}

	vb := b.version
	b.runs = next
	b.version++
	text := string(b.text[r.Start:r.End])
	b.commitChange(vb, ChangeAttributes, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  r,
		InsertText:  text,
		DeletedText: text,
	})
	return nil
}

// replaceRange splices ins into [r.Start, r.End) and rebuilds the runs.
// insRuns partition ins with offsets relative to it. The range must already
// be validated.
func (b *Buffer) replaceRange(r Range, ins []rune, insRuns []Run) AppliedEdit {
	deleted := string(b.text[r.Start:r.End])
	delta := len(ins) - r.Len()

	left := make([]Run, 0, len(b.runs)+2)
	right := make([]Run, 0, len(b.runs))
	for _, run := range b.runs {
		switch {
		case run.End <= r.Start:
			left = append(left, run)
		case run.Start >= r.End:
			right = append(right, Run{Start: run.Start + delta, End: run.End + delta, Attrs: run.Attrs})
		default:
			if run.Start < r.Start {
				left = append(left, Run{Start: run.Start, End: r.Start, Attrs: run.Attrs})
			}
			if run.End > r.End {
				right = append(right, Run{Start: r.End + delta, End: run.End + delta, Attrs: run.Attrs})
			}
		}
	}
	for _, run := range insRuns {
		left = append(left, Run{Start: r.Start + run.Start, End: r.Start + run.End, Attrs: run.Attrs})
	}

	text := make([]rune, 0, len(b.text)+delta)
	text = append(text, b.text[:r.Start]...)
	text = append(text, ins...)
	text = append(text, b.text[r.End:]...)

	b.text = text
	b.runs = coalesceRuns(append(left, right...))

	return AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: r.Start + len(ins)},
		InsertText:  string(ins),
		DeletedText: deleted,
	}
}

// coalesceRuns drops empty runs and merges neighbours with equal attributes.
func coalesceRuns(runs []Run) []Run {
	out := runs[:0]
	for _, run := range runs {
		if run.End <= run.Start {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Attrs == run.Attrs && out[n-1].End == run.Start {
			out[n-1].End = run.End
			continue
		}
		out = append(out, run)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func runsEqual(a, b []Run) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
