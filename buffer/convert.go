package buffer

import "unicode/utf8"

// OffsetClampMode decides what conversions do with out-of-range input.
type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// PosFromOffset maps a rune offset to a row/column position.
func (b *Buffer) PosFromOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, len(b.text), mode)
	if !ok {
		return Pos{}, false
	}
	starts := b.lineStarts()
	row := rowOf(starts, off)
	return Pos{Row: row, Col: off - starts[row]}, true
}

// OffsetFromPos maps a row/column position to a rune offset.
func (b *Buffer) OffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	starts := b.lineStarts()
	row := clampInt(pos.Row, 0, len(starts)-1)
	start, end := b.lineBounds(starts, row)
	col := clampInt(pos.Col, 0, end-start)

	switch mode {
	case OffsetError:
		if row != pos.Row || col != pos.Col {
			return 0, false
		}
	case OffsetClamp:
	default:
		return 0, false
	}
	return start + col, true
}

// ByteOffset maps a rune offset to a byte offset into Text().
func (b *Buffer) ByteOffset(off int, mode OffsetClampMode) (int, bool) {
	off, ok := clampOffset(off, len(b.text), mode)
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
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}
