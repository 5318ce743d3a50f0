package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaresAscending(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(10).PushSquare(2).PushSquare(40)
	assert.EqualValues(t, []int{2, 10, 40}, b.Squares())
}

func TestRankFileRoundTrip(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		r, f := RankOf(sq), FileOf(sq)
		assert.True(t, OnBoard(r, f))
		assert.EqualValues(t, sq, SquareOf(r, f))
	}
}

func TestPushPopSquare(t *testing.T) {
	var b Bitboard
	b = b.PushSquare(5)
	assert.True(t, b.Has(5))
	b = b.PopSquare(5)
	assert.False(t, b.Has(5))
}
