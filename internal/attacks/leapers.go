// Package attacks implements spec components B (leaper tables), C
// (sliding oracles), D (magic table builder), and E (magic table cache).
// It is grounded on the teacher's internal/types (bitboard.go, magic.go)
// and internal/attacks packages, adapted to this module's variant-driven,
// code-indexed dispatch instead of FrankyGo's PieceType-indexed one.
package attacks

import (
	"sync"

	"github.com/kopptools/variantmove/internal/board"
)

var (
	knightTable [64]board.Bitboard
	kingTable   [64]board.Bitboard
	pawnWhite   [64]board.Bitboard
	pawnBlack   [64]board.Bitboard

	leaperOnce sync.Once
)

// knightOffsets are the eight (d rank, d file) leaps of a knight.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// kingOffsets are the eight king-neighbour steps.
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func initLeapers() {
	for sq := 0; sq < 64; sq++ {
		r, f := board.RankOf(sq), board.FileOf(sq)

		var knight board.Bitboard
		for _, o := range knightOffsets {
			if nr, nf := r+o[0], f+o[1]; board.OnBoard(nr, nf) {
				knight = knight.PushSquare(board.SquareOf(nr, nf))
			}
		}
		knightTable[sq] = knight

		var king board.Bitboard
		for _, o := range kingOffsets {
			if nr, nf := r+o[0], f+o[1]; board.OnBoard(nr, nf) {
				king = king.PushSquare(board.SquareOf(nr, nf))
			}
		}
		kingTable[sq] = king

		// White pawn forward-diagonals: sq+7 (file>0), sq+9 (file<7);
		// rank 7 has no forward squares and so yields zero, matching
		// §4.2 ("Ranks 7/0 respectively yield zero").
		var wp board.Bitboard
		if r < 7 {
			if f > 0 {
				wp = wp.PushSquare(sq + 7)
			}
			if f < 7 {
				wp = wp.PushSquare(sq + 9)
			}
		}
		pawnWhite[sq] = wp

		var bp board.Bitboard
		if r > 0 {
			if f > 0 {
				bp = bp.PushSquare(sq - 9)
			}
			if f < 7 {
				bp = bp.PushSquare(sq - 7)
			}
		}
		pawnBlack[sq] = bp
	}
}

func ensureLeapers() {
	leaperOnce.Do(initLeapers)
}

// KnightAttacks returns the knight's fixed attack set for sq. The
// occupied argument is accepted for signature uniformity with the
// sliding-piece queries and ignored, per §4.2.
func KnightAttacks(sq int, _ board.Bitboard) board.Bitboard {
	ensureLeapers()
	return knightTable[sq]
}

// KingAttacks returns the king's fixed attack set for sq.
func KingAttacks(sq int, _ board.Bitboard) board.Bitboard {
	ensureLeapers()
	return kingTable[sq]
}

// WhitePawnAttacks returns the white pawn's forward-diagonal capture
// squares from sq.
func WhitePawnAttacks(sq int, _ board.Bitboard) board.Bitboard {
	ensureLeapers()
	return pawnWhite[sq]
}

// BlackPawnAttacks returns the black pawn's forward-diagonal capture
// squares from sq.
func BlackPawnAttacks(sq int, _ board.Bitboard) board.Bitboard {
	ensureLeapers()
	return pawnBlack[sq]
}
