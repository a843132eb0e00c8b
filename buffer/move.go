package buffer

import "github.com/iw2rmb/richtext/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// MoveOffset returns the offset reached by applying m at off. Horizontal
// grapheme steps never land inside a cluster.
func (b *Buffer) MoveOffset(off int, m Move) int {
	off = clampInt(off, 0, len(b.text))
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

// PrevGrapheme returns the start of the cluster (or newline) before off.
func (b *Buffer) PrevGrapheme(off int) int {
	return b.moveGrapheme(clampInt(off, 0, len(b.text)), DirLeft)
}

// NextGrapheme returns the end of the cluster (or newline) after off.
func (b *Buffer) NextGrapheme(off int) int {
	return b.moveGrapheme(clampInt(off, 0, len(b.text)), DirRight)
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	start, end, line := b.LineAt(off)
	col := off - start

	switch dir {
	case DirLeft:
		if col > 0 {
			return start + grapheme.Prev(line, col)
		}
		if start > 0 {
			return start - 1
		}
		return off
	case DirRight:
		if off < end {
			return start + grapheme.Next(line, col)
		}
		if end < len(b.text) {
			return end + 1
		}
		return off
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	start, _, line := b.LineAt(off)
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)

	idx := 0
	for idx < len(clusters) && bounds[idx] < off-start {
		idx++
	}

	switch dir {
	case DirLeft:
		return start + bounds[prevWordBoundary(clusters, idx)]
	case DirRight:
		return start + bounds[nextWordBoundary(clusters, idx)]
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	start, end, _ := b.LineAt(off)
	col := off - start

	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return end
	case DirUp:
		if start == 0 {
			return off
		}
		ps, pe, prev := b.LineAt(start - 1)
		return ps + grapheme.Snap(prev, min(col, pe-ps))
	case DirDown:
		if end == len(b.text) {
			return off
		}
		ns, ne, next := b.LineAt(end + 1)
		return ns + grapheme.Snap(next, min(col, ne-ns))
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.text)
	default:
		return off
	}
}

// Word boundary rules (v0):
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
