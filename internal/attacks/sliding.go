package attacks

import "github.com/kopptools/variantmove/internal/board"

// direction is a (d rank, d file) step, matching the teacher's
// types.Direction used by slidingAttack in internal/types/magic.go.
type direction struct{ dr, df int }

var (
	rookDirections = [4]direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirections = [4]direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// slide walks one direction from sq until it runs off the board or hits
// an occupied square, adding that blocker square before stopping
// (captures are legal destinations from the move-generation viewpoint,
// per §4.3).
func slide(sq int, d direction, occupied board.Bitboard) board.Bitboard {
	var attack board.Bitboard
	r, f := board.RankOf(sq), board.FileOf(sq)
	for {
		r, f = r+d.dr, f+d.df
		if !board.OnBoard(r, f) {
			break
		}
		to := board.SquareOf(r, f)
		attack = attack.PushSquare(to)
		if occupied.Has(to) {
			break
		}
	}
	return attack
}

// RookAttacks generates the rook's on-the-fly attack set: the four
// orthogonal rays, each walked until a blocker (inclusive) or the edge.
func RookAttacks(sq int, occupied board.Bitboard) board.Bitboard {
	var attack board.Bitboard
	for _, d := range rookDirections {
		attack |= slide(sq, d, occupied)
	}
	return attack
}

// BishopAttacks generates the bishop's on-the-fly attack set along the
// four diagonal rays.
func BishopAttacks(sq int, occupied board.Bitboard) board.Bitboard {
	var attack board.Bitboard
	for _, d := range bishopDirections {
		attack |= slide(sq, d, occupied)
	}
	return attack
}

// DuckAttacks generates the duck's on-the-fly attack set per §4.3's
// indirect rule: for each diagonal direction,
//   - an off-board adjacent square contributes nothing;
//   - an empty adjacent square makes the duck slide like a bishop in that
//     direction (including the first blocker, same as BishopAttacks for
//     that single ray);
//   - an occupied adjacent square makes the duck jump: scan past that
//     blocker and add exactly the first empty square beyond it, or
//     nothing if the edge is reached first.
//
// This oracle, not a magic-table shape, is this implementation's query
// path for the duck (see the Open Question resolution in DESIGN.md): its
// attack set can depend on the occupancy of the edge square along each
// diagonal, which is outside the bishop-style interior relevant-occupancy
// mask, so a magic table built from that narrower mask cannot answer
// duck queries correctly in general.
func DuckAttacks(sq int, occupied board.Bitboard) board.Bitboard {
	var attack board.Bitboard
	r, f := board.RankOf(sq), board.FileOf(sq)
	for _, d := range bishopDirections {
		ar, af := r+d.dr, f+d.df
		if !board.OnBoard(ar, af) {
			continue
		}
		adjacent := board.SquareOf(ar, af)
		if !occupied.Has(adjacent) {
			attack |= slide(sq, d, occupied)
			continue
		}
		// Adjacent square is occupied: scan further along the same
		// diagonal for the first empty square beyond it.
		jr, jf := ar+d.dr, af+d.df
		for board.OnBoard(jr, jf) {
			jsq := board.SquareOf(jr, jf)
			if !occupied.Has(jsq) {
				attack = attack.PushSquare(jsq)
				break
			}
			jr, jf = jr+d.dr, jf+d.df
		}
	}
	return attack
}

// relevantMask returns the traditional "interior" relevant-occupancy mask
// for the given directions at sq: the full slide on an empty board, minus
// the edge square each ray ends on (the edge itself never changes the
// attack set for a rook or bishop, since any blocker there is the last
// square reachable anyway). Used by the magic-table builder (D) for rook
// and bishop, and, per the Open Question, NOT used as the duck's query
// path (DuckAttacks above is used directly instead).
func relevantMask(sq int, directions [4]direction) board.Bitboard {
	var mask board.Bitboard
	r, f := board.RankOf(sq), board.FileOf(sq)
	for _, d := range directions {
		cr, cf := r, f
		for {
			nr, nf := cr+d.dr, cf+d.df
			if !board.OnBoard(nr, nf) {
				break
			}
			// Stop one square short of the edge: a square with no
			// further neighbour in this direction is an edge square and
			// is excluded from the mask.
			if !board.OnBoard(nr+d.dr, nf+d.df) {
				break
			}
			mask = mask.PushSquare(board.SquareOf(nr, nf))
			cr, cf = nr, nf
		}
	}
	return mask
}

// RookMask returns the rook's relevant-occupancy mask at sq.
func RookMask(sq int) board.Bitboard { return relevantMask(sq, rookDirections) }

// BishopMask returns the bishop's relevant-occupancy mask at sq.
func BishopMask(sq int) board.Bitboard { return relevantMask(sq, bishopDirections) }
