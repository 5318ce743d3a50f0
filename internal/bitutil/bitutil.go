// Package bitutil provides the bit-twiddling primitives the rest of the
// engine builds on: population count, least-significant-bit index, and
// Carry-Rippler enumeration of the sub-masks of a bitboard.
package bitutil

import "math/bits"

// PopCount returns the number of set bits in b.
func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

// LsbIndex returns the index (0-63) of the least significant set bit of b.
// The result is undefined when b is zero; callers must check b != 0 first.
// bits.TrailingZeros64 reports 64 in that case, which LsbIndex passes
// through unchanged rather than special-casing it.
func LsbIndex(b uint64) int {
	return bits.TrailingZeros64(b)
}

// PopLsb returns the index of the least significant set bit of *b and
// clears that bit. Calling it on a zero bitboard is undefined, same as
// LsbIndex.
func PopLsb(b *uint64) int {
	sq := LsbIndex(*b)
	*b &= *b - 1
	return sq
}

// SubsetIter enumerates every sub-mask of mask exactly once, including the
// empty subset and mask itself, using the Carry-Rippler identity
// next = (cur - mask) & mask. It visits 2^PopCount(mask) subsets in
// ascending numeric order is not guaranteed, only exhaustiveness and
// uniqueness are.
type SubsetIter struct {
	mask uint64
	cur  uint64
	done bool
}

// NewSubsetIter creates an iterator over the sub-masks of mask.
func NewSubsetIter(mask uint64) *SubsetIter {
	return &SubsetIter{mask: mask}
}

// Next returns the next sub-mask and true, or (0, false) once every
// sub-mask (including the empty one) has been produced.
func (it *SubsetIter) Next() (uint64, bool) {
	if it.done {
		return 0, false
	}
	subset := it.cur
	it.cur = (it.cur - it.mask) & it.mask
	if it.cur == 0 {
		it.done = true
	}
	return subset, true
}

// Subsets materializes every sub-mask of mask into a slice, in the order
// SubsetIter produces them. Convenient for the magic-table builder, which
// needs the full enumerated sequence more than once per square.
func Subsets(mask uint64) []uint64 {
	out := make([]uint64, 0, 1<<PopCount(mask))
	it := NewSubsetIter(mask)
	for {
		s, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
