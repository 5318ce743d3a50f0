// Package board holds the position data model — bitboards, per-side
// occupancy, the piece map, and the FEN-like parser that fills them in —
// corresponding to spec components F and the "Bitboards" record of the
// data model. It is grounded on the teacher's internal/position and
// internal/types packages, adapted from FrankyGo's named-square/PieceType
// model to this module's variant-agnostic, plain-square-index model.
package board

import "math/bits"

// Bitboard is a 64-bit set of board squares; bit sq is set iff the square
// at rank sq/8, file sq%8 is occupied. Square 0 is a1, square 63 is h8.
type Bitboard uint64

// PushSquare sets bit sq of b.
func (b Bitboard) PushSquare(sq int) Bitboard {
	return b | (Bitboard(1) << uint(sq))
}

// PopSquare clears bit sq of b.
func (b Bitboard) PopSquare(sq int) Bitboard {
	return b &^ (Bitboard(1) << uint(sq))
}

// Has reports whether bit sq is set.
func (b Bitboard) Has(sq int) bool {
	return b&(Bitboard(1)<<uint(sq)) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the index of the least significant set bit, or 64 if b is
// empty (bits.TrailingZeros64's own convention for a zero input).
func (b Bitboard) Lsb() int {
	return bits.TrailingZeros64(uint64(b))
}

// PopLsb returns the least significant set square and clears it from *b.
func (b *Bitboard) PopLsb() int {
	sq := b.Lsb()
	*b &= *b - 1
	return sq
}

// Squares returns every set square of b, ascending, as a plain slice.
// Used wherever a move-set bitboard needs to become the JSON-facing
// "array of square indices" the CLI emits.
func (b Bitboard) Squares() []int {
	out := make([]int, 0, b.PopCount())
	for bb := b; bb != 0; {
		out = append(out, bb.PopLsb())
	}
	return out
}

// RankOf returns the rank (0-7) of square sq.
func RankOf(sq int) int { return sq / 8 }

// FileOf returns the file (0-7) of square sq.
func FileOf(sq int) int { return sq % 8 }

// SquareOf builds a square index from rank and file.
func SquareOf(rank, file int) int { return rank*8 + file }

// OnBoard reports whether rank and file are both within [0,8).
func OnBoard(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}
