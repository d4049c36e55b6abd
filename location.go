package jsontok

import (
	"fmt"

	"go4.org/mem"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the number of bytes covered by s.
func (s Span) Len() int { return s.End - s.Pos }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColOf returns the line and column of the given offset in input.
// Offsets past the end of input are clamped to the end.
func lineColOf(input mem.RO, offset int) LineCol {
	offset = min(offset, input.Len())
	lc := LineCol{Line: 1}
	for i := 0; i < offset; i++ {
		if input.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}
