package variant

import (
	"strconv"
	"strings"

	"github.com/kopptools/variantmove/internal/attacks"
	"github.com/kopptools/variantmove/internal/board"
)

// ParseExpr parses a `+`-separated list of base-attack codes (§4.8) into
// a slice of ints, e.g. "1+2+3" -> [1, 2, 3].
func ParseExpr(expr string) ([]int, error) {
	parts := strings.Split(expr, "+")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Evaluate computes the symmetric difference (XOR, per §4.8) of every
// base-attack function named in codes, applied at (sq, occupied). An
// unrecognized code is the UnknownAttackCode error of §7: Evaluate skips
// that single reference rather than failing the whole expression, and
// reports which codes it skipped so the caller can log a diagnostic.
func Evaluate(tables *attacks.Tables, codes []int, sq int, occupied board.Bitboard) (board.Bitboard, []int) {
	var result board.Bitboard
	var skipped []int
	for _, c := range codes {
		fn, ok := tables.Resolve(attacks.Code(c))
		if !ok {
			skipped = append(skipped, c)
			continue
		}
		result ^= fn(sq, occupied)
	}
	return result, skipped
}
