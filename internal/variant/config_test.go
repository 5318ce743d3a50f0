package variant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleIni = `
[Flock-Chess]
Pieces  = KQRBNPD
Moveset = [16, 1+2+3, 1, 2, 3, 17, 19]
Effects = Flock, Quantum
Board   = 8x8
StdPos  = rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
Move_num  = 1
Board_num = 1

; a comment line
[Moveset-First]
Moveset = [1, 2]
Pieces  = RB
`

func TestParseVariantBasics(t *testing.T) {
	variants, err := Parse(strings.NewReader(sampleIni))
	assert.NoError(t, err)

	v, ok := variants["Flock-Chess"]
	assert.True(t, ok)
	assert.EqualValues(t, "KQRBNPD", string(v.Pieces))
	assert.EqualValues(t, "16", v.Movesets['K'])
	assert.EqualValues(t, "1+2+3", v.Movesets['Q'])
	assert.EqualValues(t, "19", v.Movesets['D'])
	assert.EqualValues(t, "8x8", v.Board)
	assert.EqualValues(t, 1, v.MoveNum)
	assert.EqualValues(t, 1, v.BoardNum)
}

func TestParseVariantMovesetBeforePieces(t *testing.T) {
	variants, err := Parse(strings.NewReader(sampleIni))
	assert.NoError(t, err)
	v, ok := variants["Moveset-First"]
	assert.True(t, ok)
	assert.EqualValues(t, "1", v.Movesets['R'])
	assert.EqualValues(t, "2", v.Movesets['B'])
}

func TestParseVariantLengthMismatch(t *testing.T) {
	ini := "[Bad]\nPieces = KQR\nMoveset = [1, 2]\n"
	variants, err := Parse(strings.NewReader(ini))
	assert.NoError(t, err)
	v, ok := variants["Bad"]
	assert.True(t, ok)
	assert.Empty(t, v.Movesets)
}

func TestParseExprSplitsOnPlus(t *testing.T) {
	codes, err := ParseExpr("1+2+3")
	assert.NoError(t, err)
	assert.EqualValues(t, []int{1, 2, 3}, codes)
}

func TestParseExprSingle(t *testing.T) {
	codes, err := ParseExpr("19")
	assert.NoError(t, err)
	assert.EqualValues(t, []int{19}, codes)
}

func TestRegistryUnknownVariant(t *testing.T) {
	r := &Registry{variants: map[string]*Variant{}}
	_, err := r.Get("foo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "foo")
}
