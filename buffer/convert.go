package buffer

import "unicode/utf8"

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// LineCount returns the number of logical lines (newlines + 1).
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// PosFromOffset converts a rune offset into (row, col).
func (b *Buffer) PosFromOffset(off int, p ConvertPolicy) (Pos, bool) {
	off, ok := clampOffset(off, len(b.text), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	row, lineStart := 0, 0
	for i := 0; i < off; i++ {
		if b.text[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	return Pos{Row: row, Col: off - lineStart}, true
}

// OffsetFromPos converts (row, col) into a rune offset.
func (b *Buffer) OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	rows := b.LineCount()
	if p.ClampMode == OffsetError && (pos.Row < 0 || pos.Row >= rows) {
		return 0, false
	}
	if p.ClampMode != OffsetError && p.ClampMode != OffsetClamp {
		return 0, false
	}
	row := clampInt(pos.Row, 0, rows-1)

	start := 0
	for r := 0; r < row; r++ {
		for b.text[start] != '\n' {
			start++
		}
		start++
	}
	end := start
	for end < len(b.text) && b.text[end] != '\n' {
		end++
	}

	lineLen := end - start
	if p.ClampMode == OffsetError && (pos.Col < 0 || pos.Col > lineLen) {
		return 0, false
	}
	return start + clampInt(pos.Col, 0, lineLen), true
}

// OffsetFromByteOffset converts a UTF-8 byte offset of Text() into a rune
// offset. Offsets inside a multi-byte rune never convert.
func (b *Buffer) OffsetFromByteOffset(byteOff int, p ConvertPolicy) (int, bool) {
	byteLen := 0
	for _, r := range b.text {
		byteLen += utf8.RuneLen(r)
	}
	byteOff, ok := clampOffset(byteOff, byteLen, p.ClampMode)
	if !ok {
		return 0, false
	}
	cur := 0
	for i, r := range b.text {
		if cur == byteOff {
			return i, true
		}
		cur += utf8.RuneLen(r)
		if cur > byteOff {
			return 0, false
		}
	}
	return len(b.text), true
}

// ByteOffsetFromOffset converts a rune offset into a UTF-8 byte offset of
// Text().
func (b *Buffer) ByteOffsetFromOffset(off int, p ConvertPolicy) (int, bool) {
	off, ok := clampOffset(off, len(b.text), p.ClampMode)
	if !ok {
		return 0, false
	}
	n := 0
	for _, r := range b.text[:off] {
		n += utf8.RuneLen(r)
	}
	return n, true
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}
