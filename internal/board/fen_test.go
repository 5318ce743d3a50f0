package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmptyBoard(t *testing.T) {
	p, err := Parse("8/8/8/8/8/8/8/8")
	assert.NoError(t, err)
	assert.EqualValues(t, 0, p.Occupancy)
	assert.EqualValues(t, "", p.CheckInvariants())
}

func TestParseStartingPosition(t *testing.T) {
	p, err := Parse(StartFen)
	assert.NoError(t, err)
	assert.EqualValues(t, 32, p.Occupancy.PopCount())
	assert.True(t, p.WhiteToMove)
	assert.True(t, p.WKCastle && p.WQCastle && p.BKCastle && p.BQCastle)
	assert.EqualValues(t, "", p.CheckInvariants())

	// a1 is a white rook
	assert.True(t, p.PieceBoards['R'].Has(SquareOf(0, 0)))
	assert.True(t, p.WhiteOccupancy.Has(SquareOf(0, 0)))
	assert.False(t, p.BlackOccupancy.Has(SquareOf(0, 0)))
}

func TestParseNeutralDuck(t *testing.T) {
	p, err := Parse("8/8/8/3+D4/8/8/8/8")
	assert.NoError(t, err)
	d5 := SquareOf(4, 3)
	assert.True(t, p.PieceBoards['D'].Has(d5))
	assert.True(t, p.WhiteOccupancy.Has(d5))
	assert.True(t, p.BlackOccupancy.Has(d5))
	assert.EqualValues(t, "", p.CheckInvariants())
}

func TestParseMalformedRankOverflow(t *testing.T) {
	_, err := Parse("9/8/8/8/8/8/8/8")
	assert.Error(t, err)
}

func TestParseMalformedTooFewRanks(t *testing.T) {
	_, err := Parse("8/8/8")
	assert.Error(t, err)
}

func TestRoundTripNonNeutralPlacement(t *testing.T) {
	placement := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
	p, err := Parse(placement)
	assert.NoError(t, err)
	assert.EqualValues(t, placement, p.Serialize())
}

func TestParseEnPassant(t *testing.T) {
	p, err := Parse("8/8/8/8/8/8/8/8 w - e3 0 1")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, p.EnPassantSq.PopCount())
	assert.True(t, p.EnPassantSq.Has(SquareOf(2, 4)))
}
