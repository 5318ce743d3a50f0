package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopptools/variantmove/internal/board"
)

func TestHashIsOrderIndependent(t *testing.T) {
	keys := NewKeys()

	pos1 := board.NewPosition()
	pos1.PieceBoards['R'] = board.Bitboard(0).PushSquare(0)
	pos1.PieceBoards['N'] = board.Bitboard(0).PushSquare(1)
	pos1.PieceBoards['p'] = board.Bitboard(0).PushSquare(50)

	pos2 := board.NewPosition()
	pos2.PieceBoards['p'] = board.Bitboard(0).PushSquare(50)
	pos2.PieceBoards['N'] = board.Bitboard(0).PushSquare(1)
	pos2.PieceBoards['R'] = board.Bitboard(0).PushSquare(0)

	assert.EqualValues(t, hashWith(pos1, keys), hashWith(pos2, keys))
}

func TestHashDifferentiatesPositions(t *testing.T) {
	keys := NewKeys()

	pos1 := board.NewPosition()
	pos1.PieceBoards['R'] = board.Bitboard(0).PushSquare(0)

	pos2 := board.NewPosition()
	pos2.PieceBoards['R'] = board.Bitboard(0).PushSquare(1)

	assert.NotEqualValues(t, hashWith(pos1, keys), hashWith(pos2, keys))
}

func TestHashIncludesCastlingAndSideToMove(t *testing.T) {
	keys := NewKeys()

	base := board.NewPosition()
	base.PieceBoards['K'] = board.Bitboard(0).PushSquare(4)
	base.WhiteToMove = true

	withCastle := board.NewPosition()
	withCastle.PieceBoards['K'] = base.PieceBoards['K']
	withCastle.WhiteToMove = true
	withCastle.WKCastle = true

	blackToMove := board.NewPosition()
	blackToMove.PieceBoards['K'] = base.PieceBoards['K']
	blackToMove.WhiteToMove = false

	h := hashWith(base, keys)
	assert.NotEqualValues(t, h, hashWith(withCastle, keys))
	assert.NotEqualValues(t, h, hashWith(blackToMove, keys))
}

func TestHashSkipsUnknownPieceLetterWithoutPanicking(t *testing.T) {
	keys := NewKeys()
	pos := board.NewPosition()
	pos.PieceBoards[0xFF] = board.Bitboard(0).PushSquare(10)
	assert.NotPanics(t, func() { hashWith(pos, keys) })
}

func TestKeysFromSeedAreReproducible(t *testing.T) {
	a := newKeysFromSeed(424242)
	b := newKeysFromSeed(424242)

	pos := board.NewPosition()
	pos.PieceBoards['Q'] = board.Bitboard(0).PushSquare(27)
	pos.EnPassantSq = board.Bitboard(0).PushSquare(20)

	assert.EqualValues(t, hashWith(pos, a), hashWith(pos, b), "the same seed must reproduce identical keys")
}

func TestNewKeysAreIndependentAcrossCalls(t *testing.T) {
	a := NewKeys()
	b := NewKeys()

	pos := board.NewPosition()
	pos.PieceBoards['Q'] = board.Bitboard(0).PushSquare(27)

	// Clock-seeded, so two calls build genuinely different key sets; this
	// is what makes hashes differ across process runs (§3/scenario 6).
	assert.NotEqualValues(t, hashWith(pos, a), hashWith(pos, b))
}

func TestDefaultKeysIsStableWithinProcess(t *testing.T) {
	pos := board.NewPosition()
	pos.PieceBoards['B'] = board.Bitboard(0).PushSquare(5)
	assert.EqualValues(t, Hash(pos), Hash(pos))
}
