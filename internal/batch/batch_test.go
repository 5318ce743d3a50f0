package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopptools/variantmove/internal/attacks"
	"github.com/kopptools/variantmove/internal/variant"
)

const testVariantsIni = `
[Standard-Chess]
Pieces  = KQRBNP
Moveset = [16, 1+2, 1, 2, 3, 17]
Effects = None
Board   = 8x8
StdPos  = rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR
`

func testRegistry(t *testing.T) *variant.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "variants.ini")
	assert.NoError(t, os.WriteFile(path, []byte(testVariantsIni), 0o644))
	registry, err := variant.LoadRegistry(path)
	assert.NoError(t, err)
	return registry
}

// TestRunPreservesInputOrder is P9: results[i] always corresponds to
// queries[i], regardless of which goroutine finishes first. A small
// worker count relative to the query count forces real queuing, so a
// naive append-as-completed implementation would visibly reorder.
func TestRunPreservesInputOrder(t *testing.T) {
	registry := testRegistry(t)
	tables := attacks.NewTables(t.TempDir())

	var queries []Query
	for i := 0; i < 40; i++ {
		queries = append(queries, Query{
			Fen:     fmt.Sprintf("8/8/8/8/8/8/8/8 w - - %d 1", i),
			Variant: "Standard-Chess",
		})
	}

	results := Run(context.Background(), queries, tables, registry, 3)

	assert.Len(t, results, len(queries))
	for i, r := range results {
		assert.Equal(t, queries[i], r.Query)
	}
}

func TestRunReportsUnknownVariant(t *testing.T) {
	registry := testRegistry(t)
	tables := attacks.NewTables(t.TempDir())

	results := Run(context.Background(), []Query{{Fen: "8/8/8/8/8/8/8/8 w - - 0 1", Variant: "Nonesuch"}}, tables, registry, 2)

	assert.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestRunProducesMovesForValidQuery(t *testing.T) {
	registry := testRegistry(t)
	tables := attacks.NewTables(t.TempDir())

	results := Run(context.Background(), []Query{{Fen: "8/8/8/8/8/8/8/R7 w - - 0 1", Variant: "Standard-Chess"}}, tables, registry, 1)

	assert.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.NotZero(t, results[0].Moves[0])
}
