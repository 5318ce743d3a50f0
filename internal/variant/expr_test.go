package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopptools/variantmove/internal/attacks"
	"github.com/kopptools/variantmove/internal/board"
)

func TestEvaluateXorCombinesDistinctFunctions(t *testing.T) {
	tables := attacks.NewTables(t.TempDir())
	a1 := board.SquareOf(0, 0)
	codes, err := ParseExpr("1+2+3")
	assert.NoError(t, err)
	result, skipped := Evaluate(tables, codes, a1, 0)
	assert.Empty(t, skipped)

	rook := tables.Rook(a1, 0)
	bishop := tables.Bishop(a1, 0)
	knight := tables.Knight(a1, 0)
	assert.EqualValues(t, rook^bishop^knight, result)
}

func TestEvaluateSkipsUnknownCode(t *testing.T) {
	tables := attacks.NewTables(t.TempDir())
	result, skipped := Evaluate(tables, []int{1, 999}, board.SquareOf(3, 3), 0)
	assert.EqualValues(t, []int{999}, skipped)
	assert.EqualValues(t, tables.Rook(board.SquareOf(3, 3), 0), result)
}
