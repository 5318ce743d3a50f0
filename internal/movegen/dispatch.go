// Package movegen implements spec component I: the move dispatcher that
// walks the occupied squares of a parsed Position, resolves each piece's
// move expression via the variant's configuration, and evaluates it
// against the attack tables to produce the final 64-entry array of
// destination bitboards.
package movegen

import (
	"github.com/kopptools/variantmove/internal/attacks"
	"github.com/kopptools/variantmove/internal/board"
	"github.com/kopptools/variantmove/internal/logging"
	"github.com/kopptools/variantmove/internal/variant"
)

var log = logging.GetLog("movegen")

// Generate implements §4.9 with the corrected blocker-set contract: every
// sliding-piece query uses pos.Occupancy (the full board) as the blocker
// set, and a side's own squares are excluded from the result only after
// the raw attack has been computed, by masking with ~side_occupancy. This
// is the corrected behaviour spec.md asks implementers writing correct
// chess to follow, rather than reproducing the source's side_occupancy-
// as-blocker-set under-count bug; see DESIGN.md's Open Question
// resolution.
//
// The three passes (white, black, neutral) partition the occupied
// squares disjointly, so the "combine via OR" step of §4.9 reduces to
// writing each pass's result into its own squares of the output array.
func Generate(pos *board.Position, v *variant.Variant, tables *attacks.Tables) [64]board.Bitboard {
	var moves [64]board.Bitboard

	neutral := pos.WhiteOccupancy & pos.BlackOccupancy
	white := pos.WhiteOccupancy &^ neutral
	black := pos.BlackOccupancy &^ neutral

	generatePass(&moves, pos, v, tables, white, pos.WhiteOccupancy, true)
	generatePass(&moves, pos, v, tables, black, pos.BlackOccupancy, true)
	generatePass(&moves, pos, v, tables, neutral, 0, false)

	return moves
}

// generatePass fills moves[sq] for every square set in squares. ownMask
// is subtracted from the raw attack set only when maskOwn is true (white
// and black passes); the neutral pass keeps the raw attack set unmodified
// per §4.9 ("Neutral moves are masked with nothing extra").
func generatePass(moves *[64]board.Bitboard, pos *board.Position, v *variant.Variant, tables *attacks.Tables, squares, ownMask board.Bitboard, maskOwn bool) {
	for bb := squares; bb != 0; {
		sq := bb.PopLsb()

		letter, found := pieceAt(pos, sq)
		if !found {
			continue
		}
		expr, found := v.Movesets[letter]
		if !found {
			log.Warningf("variant %q: no moveset entry for piece %q at square %d", v.GameMode, string(letter), sq)
			continue
		}
		codes, err := variant.ParseExpr(expr)
		if err != nil {
			log.Warningf("variant %q: malformed expression %q for piece %q: %v", v.GameMode, expr, string(letter), err)
			continue
		}

		result, skipped := variant.Evaluate(tables, codes, sq, pos.Occupancy)
		for _, c := range skipped {
			log.Warningf("variant %q: unknown attack code %d for piece %q at square %d", v.GameMode, c, string(letter), sq)
		}
		if maskOwn {
			result &^= ownMask
		}
		moves[sq] = result
	}
}

// pieceAt returns the piece letter occupying sq, and false if none does.
// §4.9 notes the iteration order over piece_boards is unspecified but
// stable; by invariant I2 at most one non-neutral piece occupies any
// square, so the first match found is unambiguous.
func pieceAt(pos *board.Position, sq int) (byte, bool) {
	for letter, bb := range pos.PieceBoards {
		if bb.Has(sq) {
			return letter, true
		}
	}
	return 0, false
}
