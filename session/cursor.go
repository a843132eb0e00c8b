package session

// Lengther reports the current length of the text a cursor lives in.
type Lengther interface {
	Len() int
}

// CursorPolicy holds the cursor across a mutation. The host places the
// cursor where its own mutation API leaves it; the session then restores the
// position the engine asked for.
type CursorPolicy struct {
	src Lengther
	pos int
}

func NewCursorPolicy(src Lengther) CursorPolicy {
	return CursorPolicy{src: src}
}

// Capture returns the current cursor offset.
func (p *CursorPolicy) Capture() int { return p.pos }

// Restore moves the cursor to pos, clamped to [0, Len()].
func (p *CursorPolicy) Restore(pos int) {
	n := p.src.Len()
	if pos < 0 {
		pos = 0
	}
	if pos > n {
		pos = n
	}
	p.pos = pos
}
