package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopCount(t *testing.T) {
	assert.EqualValues(t, 0, PopCount(0))
	assert.EqualValues(t, 1, PopCount(1))
	assert.EqualValues(t, 64, PopCount(^uint64(0)))
	assert.EqualValues(t, 3, PopCount(0b1011))
}

func TestLsbIndex(t *testing.T) {
	assert.EqualValues(t, 0, LsbIndex(1))
	assert.EqualValues(t, 3, LsbIndex(0b1000))
	assert.EqualValues(t, 63, LsbIndex(1<<63))
}

func TestPopLsb(t *testing.T) {
	b := uint64(0b10110)
	sq := PopLsb(&b)
	assert.EqualValues(t, 1, sq)
	assert.EqualValues(t, 0b10100, b)
}

func TestSubsetsExhaustiveAndUnique(t *testing.T) {
	mask := uint64(0b10110)
	subsets := Subsets(mask)
	assert.Len(t, subsets, 1<<PopCount(mask))

	seen := make(map[uint64]bool)
	for _, s := range subsets {
		assert.EqualValues(t, s, s&mask, "subset must be contained in mask")
		assert.False(t, seen[s], "subset must be visited exactly once")
		seen[s] = true
	}
	assert.True(t, seen[0], "empty subset must be included")
	assert.True(t, seen[mask], "full mask must be included as a subset")
}

func TestSubsetIterEmptyMask(t *testing.T) {
	it := NewSubsetIter(0)
	s, ok := it.Next()
	assert.True(t, ok)
	assert.EqualValues(t, 0, s)
	_, ok = it.Next()
	assert.False(t, ok)
}
