package attacks

import "github.com/kopptools/variantmove/internal/board"

// Code is a base-attack code from §4.8's table.
type Code int

const (
	CodeRook       Code = 1
	CodeBishop     Code = 2
	CodeKnight     Code = 3
	CodeKing       Code = 16
	CodeWhitePawn  Code = 17
	CodeDuck       Code = 19
	CodeBlackPawn  Code = 20
)

// Func is the uniform attack-generator signature §9 asks for: a dense,
// integer-code-indexed table of function values rather than a
// string-keyed lookup on the hot path.
type Func func(sq int, occupied board.Bitboard) board.Bitboard

// Resolve returns the Func bound to t for a base-attack code, and false
// for an unrecognized code (component H's UnknownAttackCode, recovered
// per §7 by the caller skipping that reference).
func (t *Tables) Resolve(code Code) (Func, bool) {
	switch code {
	case CodeRook:
		return t.Rook, true
	case CodeBishop:
		return t.Bishop, true
	case CodeKnight:
		return t.Knight, true
	case CodeKing:
		return t.King, true
	case CodeWhitePawn:
		return t.WhitePawn, true
	case CodeDuck:
		return t.Duck, true
	case CodeBlackPawn:
		return t.BlackPawn, true
	default:
		return nil, false
	}
}
